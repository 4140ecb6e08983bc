package model

// GoalTier names one comparison level of the objective hierarchy (§4.5):
// tiers are compared in declaration order, most significant first.
type GoalTier struct {
	// Name identifies the tier for telemetry (e.g. "unassigned", "routes",
	// "cost").
	Name string

	// Threshold is the tier's satisfaction bound: a solution's value for
	// this tier is "satisfied" once it is <= Threshold. A nil Threshold
	// means the tier never contributes to GoalSatisfied termination.
	Threshold *float64
}

// Goal is the Problem-level objective hierarchy specification consumed by
// evolution.Objective and evolution's GoalSatisfied termination criterion
// (§6 "Objectives specification", §4.5).
type Goal struct {
	Tiers []GoalTier
}

// Satisfied reports whether every tier carrying a Threshold is met by
// values (values[i] corresponds to Tiers[i]; values shorter than Tiers are
// treated as unmet).
func (g Goal) Satisfied(values []float64) bool {
	for i, tier := range g.Tiers {
		if tier.Threshold == nil {
			continue
		}
		if i >= len(values) || values[i] > *tier.Threshold {
			return false
		}
	}

	return true
}
