package scoring

// MetricTriple holds the three engagement percentages shown on the dashboard.
type MetricTriple struct {
	Monotony        int
	Productivity    int
	SkillEngagement int
}

// Baseline is the "before" reading every session starts from.
var Baseline = MetricTriple{Monotony: 75, Productivity: 82, SkillEngagement: 68}

// Deltas is the signed change applied to each metric for a tier.
type Deltas struct {
	Monotony        int
	Productivity    int
	SkillEngagement int
}

var tierDeltas = map[Tier]Deltas{
	TierHigh: {Monotony: -5, Productivity: 3, SkillEngagement: 10},
	TierLow:  {Monotony: -2, Productivity: 1, SkillEngagement: 3},
}

// DeltasFor returns the metric change for a tier. Unknown tiers change nothing.
func DeltasFor(t Tier) Deltas {
	return tierDeltas[t]
}

// Apply returns m shifted by d with every metric clamped to [0, 100].
func (m MetricTriple) Apply(d Deltas) MetricTriple {
	return MetricTriple{
		Monotony:        clampPercent(m.Monotony + d.Monotony),
		Productivity:    clampPercent(m.Productivity + d.Productivity),
		SkillEngagement: clampPercent(m.SkillEngagement + d.SkillEngagement),
	}
}

// Sub returns the per-metric difference m - o.
func (m MetricTriple) Sub(o MetricTriple) Deltas {
	return Deltas{
		Monotony:        m.Monotony - o.Monotony,
		Productivity:    m.Productivity - o.Productivity,
		SkillEngagement: m.SkillEngagement - o.SkillEngagement,
	}
}

func clampPercent(v int) int {
	return min(max(v, 0), 100)
}
