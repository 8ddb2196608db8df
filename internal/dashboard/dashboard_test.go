package dashboard

import (
	"math"
	"strings"
	"testing"

	"github.com/taskgene/arena/internal/scoring"
)

func TestGauges_Before(t *testing.T) {
	gs := Gauges(scoring.Baseline, nil)
	if len(gs) != 3 {
		t.Fatalf("len = %d", len(gs))
	}
	want := []int{75, 82, 68}
	for i, g := range gs {
		if g.Value != want[i] {
			t.Errorf("%s = %d, want %d", g.Label, g.Value, want[i])
		}
		if g.HasDelta || g.DeltaText() != "" {
			t.Errorf("%s should have no delta before the challenge", g.Label)
		}
	}
}

func TestGauges_After(t *testing.T) {
	after := scoring.Baseline.Apply(scoring.DeltasFor(scoring.TierHigh))
	gs := Gauges(scoring.Baseline, &after)

	tests := []struct {
		value int
		delta string
	}{
		{70, "-5%"},
		{85, "+3%"},
		{78, "+10%"},
	}
	for i, tt := range tests {
		g := gs[i]
		if g.Value != tt.value || g.DeltaText() != tt.delta {
			t.Errorf("%s = %d %s, want %d %s", g.Label, g.Value, g.DeltaText(), tt.value, tt.delta)
		}
		if !g.Improved() {
			t.Errorf("%s should count as improved", g.Label)
		}
	}
}

func TestGauge_Improved(t *testing.T) {
	worse := Gauge{HasDelta: true, Change: 4, LowerIsBetter: true}
	if worse.Improved() {
		t.Error("rising monotony is not an improvement")
	}
	flat := Gauge{HasDelta: true}
	if flat.Improved() || flat.DeltaText() != "+0%" {
		t.Errorf("flat gauge: improved=%v text=%q", flat.Improved(), flat.DeltaText())
	}
}

func TestBreakdown(t *testing.T) {
	before := Breakdown(scoring.Baseline, nil)
	if before[0].Value != 70 || before[3].Value != 60 {
		t.Errorf("before = %+v", before)
	}

	after := scoring.Baseline.Apply(scoring.DeltasFor(scoring.TierLow))
	got := Breakdown(scoring.Baseline, &after)
	want := []int{73, 53, 33, 63}
	for i, s := range got {
		if s.Value != want[i] {
			t.Errorf("%s = %d, want %d", s.Label, s.Value, want[i])
		}
	}

	// The base table is not modified.
	if Breakdown(scoring.Baseline, nil)[0].Value != 70 {
		t.Error("Breakdown mutated the base table")
	}
}

func TestShares(t *testing.T) {
	shares := Shares(Breakdown(scoring.Baseline, nil))
	sum := 0.0
	for _, s := range shares {
		sum += s
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("shares sum to %f", sum)
	}
	if math.Abs(shares[0]-70.0/210.0) > 1e-9 {
		t.Errorf("Excel share = %f", shares[0])
	}

	zero := Shares([]Slice{{"a", 0}, {"b", -3}})
	if zero[0] != 0 || zero[1] != 0 {
		t.Errorf("zero total shares = %v", zero)
	}
}

func TestRender(t *testing.T) {
	after := scoring.Baseline.Apply(scoring.DeltasFor(scoring.TierHigh))
	out := Render("After Test", scoring.Baseline, &after, 100)

	for _, want := range []string{"After Test", "Monotony Score", "70%", "-5%", "+10%", "Visual Skill Tracker", "Excel", "Automation"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	before := Render("Before Test", scoring.Baseline, nil, 60)
	if strings.Contains(before, "+3%") {
		t.Error("before render should not show deltas")
	}
}
