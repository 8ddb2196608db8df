// Package scoring grades a submitted answer set and derives the reward tier
// and the "after" dashboard metrics from it.
package scoring

import "github.com/taskgene/arena/internal/challenge"

// Outcome is the immutable result of grading one submission.
type Outcome struct {
	Score     int
	Total     int
	Threshold int
	Tier      Tier
	Before    MetricTriple
	After     MetricTriple
}

// Passed reports whether the outcome reached the High tier.
func (o Outcome) Passed() bool {
	return o.Tier == TierHigh
}

// Score counts the indices whose answer equals the question's answer
// exactly. Missing answers count as wrong.
func Score(questions []challenge.Question, answers challenge.AnswerSet) int {
	score := 0
	for i, q := range questions {
		if got, ok := answers[i]; ok && got == q.Answer {
			score++
		}
	}
	return score
}

// Evaluate grades answers and computes the after metrics from before.
// A non-positive threshold is replaced by ThresholdFor(len(questions)).
func Evaluate(questions []challenge.Question, answers challenge.AnswerSet, before MetricTriple, threshold int) Outcome {
	if threshold <= 0 {
		threshold = ThresholdFor(len(questions))
	}
	score := Score(questions, answers)
	tier := RewardTier(score, threshold)
	return Outcome{
		Score:     score,
		Total:     len(questions),
		Threshold: threshold,
		Tier:      tier,
		Before:    before,
		After:     before.Apply(DeltasFor(tier)),
	}
}
