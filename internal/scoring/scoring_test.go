package scoring

import (
	"testing"

	"github.com/taskgene/arena/internal/challenge"
)

// answersWithCorrect answers the first n questions correctly and the rest
// with the first wrong option.
func answersWithCorrect(qs []challenge.Question, n int) challenge.AnswerSet {
	a := make(challenge.AnswerSet, len(qs))
	for i, q := range qs {
		if i < n {
			a[i] = q.Answer
			continue
		}
		for _, opt := range q.Options {
			if opt != q.Answer {
				a[i] = opt
				break
			}
		}
	}
	return a
}

func TestScore_CountsExactMatches(t *testing.T) {
	qs := challenge.ListQuestions()
	for n := 0; n <= len(qs); n++ {
		if got := Score(qs, answersWithCorrect(qs, n)); got != n {
			t.Errorf("Score with %d correct = %d", n, got)
		}
	}
}

func TestScore_ExactStringEquality(t *testing.T) {
	qs := challenge.ListQuestions()
	a := answersWithCorrect(qs, len(qs))
	a[0] = "b. vlookup"
	a[1] = "B. Joins text strings "
	if got := Score(qs, a); got != len(qs)-2 {
		t.Errorf("Score = %d, want %d", got, len(qs)-2)
	}
}

func TestScore_MissingAnswersCountAsWrong(t *testing.T) {
	qs := challenge.ListQuestions()
	a := challenge.AnswerSet{0: qs[0].Answer}
	if got := Score(qs, a); got != 1 {
		t.Errorf("Score = %d, want 1", got)
	}
}

func TestRewardTier_Boundary(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{0, TierLow}, {1, TierLow}, {2, TierLow}, {3, TierLow}, {4, TierLow},
		{5, TierHigh}, {6, TierHigh}, {7, TierHigh},
	}
	for _, tt := range tests {
		if got := RewardTier(tt.score, DefaultThreshold); got != tt.want {
			t.Errorf("RewardTier(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestThresholdFor(t *testing.T) {
	tests := []struct{ total, want int }{
		{7, 5}, {14, 10}, {10, 8}, {3, 3}, {1, 1}, {0, 0},
	}
	for _, tt := range tests {
		if got := ThresholdFor(tt.total); got != tt.want {
			t.Errorf("ThresholdFor(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestEvaluate_Scenarios(t *testing.T) {
	qs := challenge.ListQuestions()
	tests := []struct {
		name    string
		correct int
		tier    Tier
		after   MetricTriple
	}{
		{"all correct", 7, TierHigh, MetricTriple{70, 85, 78}},
		{"all wrong", 0, TierLow, MetricTriple{73, 83, 71}},
		{"threshold inclusive", 5, TierHigh, MetricTriple{70, 85, 78}},
		{"just below threshold", 4, TierLow, MetricTriple{73, 83, 71}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Evaluate(qs, answersWithCorrect(qs, tt.correct), Baseline, DefaultThreshold)
			if out.Score != tt.correct {
				t.Errorf("Score = %d, want %d", out.Score, tt.correct)
			}
			if out.Total != 7 {
				t.Errorf("Total = %d, want 7", out.Total)
			}
			if out.Tier != tt.tier {
				t.Errorf("Tier = %s, want %s", out.Tier, tt.tier)
			}
			if out.Before != Baseline {
				t.Errorf("Before = %+v, want %+v", out.Before, Baseline)
			}
			if out.After != tt.after {
				t.Errorf("After = %+v, want %+v", out.After, tt.after)
			}
		})
	}
}

func TestEvaluate_DefaultsThreshold(t *testing.T) {
	qs := challenge.ListQuestions()
	out := Evaluate(qs, answersWithCorrect(qs, 5), Baseline, 0)
	if out.Threshold != DefaultThreshold || out.Tier != TierHigh {
		t.Errorf("got threshold %d tier %s", out.Threshold, out.Tier)
	}
}

func TestApply_Clamps(t *testing.T) {
	m := MetricTriple{Monotony: 3, Productivity: 99, SkillEngagement: 95}
	got := m.Apply(DeltasFor(TierHigh))
	want := MetricTriple{Monotony: 0, Productivity: 100, SkillEngagement: 100}
	if got != want {
		t.Errorf("Apply = %+v, want %+v", got, want)
	}
}

func TestDeltasFor(t *testing.T) {
	if d := DeltasFor(TierHigh); d != (Deltas{-5, 3, 10}) {
		t.Errorf("high deltas = %+v", d)
	}
	if d := DeltasFor(TierLow); d != (Deltas{-2, 1, 3}) {
		t.Errorf("low deltas = %+v", d)
	}
	if d := DeltasFor(Tier("bogus")); d != (Deltas{}) {
		t.Errorf("unknown tier deltas = %+v", d)
	}
}

func TestSub(t *testing.T) {
	after := Baseline.Apply(DeltasFor(TierHigh))
	if d := after.Sub(Baseline); d != DeltasFor(TierHigh) {
		t.Errorf("Sub = %+v", d)
	}
}
