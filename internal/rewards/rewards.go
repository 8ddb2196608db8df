// Package rewards turns a graded outcome into what the results screen
// celebrates: badges, a workflow suggestion and the progress timeline.
package rewards

import (
	"github.com/taskgene/arena/internal/learner"
	"github.com/taskgene/arena/internal/scoring"
)

// Badge is an achievement awarded for a High result.
type Badge struct {
	Name string
	Icon string
	New  bool
}

// TimelineEntry is one row of the progress timeline.
type TimelineEntry struct {
	When  string
	Icon  string
	Label string
}

// Summary is everything the results view shows beyond the score.
type Summary struct {
	Tier       scoring.Tier
	Badges     []Badge
	Suggestion string
	Celebrate  bool
	Timeline   []TimelineEntry
}

// Suggestion is offered after a High result.
const Suggestion = "Great job! Want to apply this to your quarterly report? TaskGene has reshuffled your tasks ✨"

// highBadges are awarded, in order, for a High result.
var highBadges = []Badge{
	{Name: "Data Viz Basics", Icon: "🧠", New: true},
	{Name: "Excel Expert", Icon: "📊"},
}

// TodayEntry closes every timeline.
var TodayEntry = TimelineEntry{When: "Today", Icon: "🚀", Label: "Completed micro-challenge"}

// For builds the reward summary for an outcome and learner.
func For(out scoring.Outcome, p learner.Profile) Summary {
	s := Summary{
		Tier:     out.Tier,
		Timeline: Timeline(p),
	}
	if out.Passed() {
		s.Badges = append([]Badge(nil), highBadges...)
		s.Suggestion = Suggestion
		s.Celebrate = true
	}
	return s
}

// Timeline lists the learner's history followed by today's challenge.
func Timeline(p learner.Profile) []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(p.History)+1)
	for _, a := range p.History {
		entries = append(entries, TimelineEntry{When: a.DisplayDate(), Icon: a.Icon, Label: a.Label})
	}
	return append(entries, TodayEntry)
}
