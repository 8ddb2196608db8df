// Package dashboard computes and renders the skill and productivity
// dashboard shown before and after a challenge.
package dashboard

import (
	"fmt"

	"github.com/taskgene/arena/internal/scoring"
)

// Gauge is one metric card.
type Gauge struct {
	Label string
	Icon  string
	Value int

	// HasDelta is false on the "before" dashboard.
	HasDelta bool
	// Change is after minus before.
	Change int
	// LowerIsBetter marks metrics where a drop is an improvement.
	LowerIsBetter bool
}

// Improved reports whether the change moved the metric the right way.
func (g Gauge) Improved() bool {
	if g.LowerIsBetter {
		return g.Change < 0
	}
	return g.Change > 0
}

// DeltaText formats the change as "+3%" or "-5%", or "" without a delta.
func (g Gauge) DeltaText() string {
	if !g.HasDelta {
		return ""
	}
	return fmt.Sprintf("%+d%%", g.Change)
}

// Gauges builds the three metric cards. When after is nil the before
// values are shown without deltas.
func Gauges(before scoring.MetricTriple, after *scoring.MetricTriple) []Gauge {
	gauges := []Gauge{
		{Label: "Monotony Score", Icon: "🧠", Value: before.Monotony, LowerIsBetter: true},
		{Label: "Productivity", Icon: "⚙️", Value: before.Productivity},
		{Label: "Skill Engagement", Icon: "📚", Value: before.SkillEngagement},
	}
	if after == nil {
		return gauges
	}

	d := after.Sub(before)
	values := []int{after.Monotony, after.Productivity, after.SkillEngagement}
	changes := []int{d.Monotony, d.Productivity, d.SkillEngagement}
	for i := range gauges {
		gauges[i].Value = values[i]
		gauges[i].Change = changes[i]
		gauges[i].HasDelta = true
	}
	return gauges
}

// Slice is one category of the skill tracker chart.
type Slice struct {
	Label string
	Value int
}

var baseBreakdown = []Slice{
	{Label: "Excel", Value: 70},
	{Label: "Visualization", Value: 50},
	{Label: "Automation", Value: 30},
	{Label: "Analysis", Value: 60},
}

// Breakdown returns the skill tracker categories. After a challenge every
// category moves by the skill engagement change.
func Breakdown(before scoring.MetricTriple, after *scoring.MetricTriple) []Slice {
	out := make([]Slice, len(baseBreakdown))
	copy(out, baseBreakdown)
	if after == nil {
		return out
	}
	boost := after.SkillEngagement - before.SkillEngagement
	for i := range out {
		out[i].Value += boost
	}
	return out
}

// Shares returns each slice's fraction of the total. A non-positive total
// yields all zeros.
func Shares(slices []Slice) []float64 {
	total := 0
	for _, s := range slices {
		total += max(s.Value, 0)
	}
	shares := make([]float64, len(slices))
	if total <= 0 {
		return shares
	}
	for i, s := range slices {
		shares[i] = float64(max(s.Value, 0)) / float64(total)
	}
	return shares
}
