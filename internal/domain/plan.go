package domain

// PhaseSegment is one entry of a fully expanded session plan
type PhaseSegment struct {
	Type            Phase
	DurationSeconds int
	SetNumber       int
}

// BuildPlan expands a session config into the ordered segment sequence the
// engine actually walks: N work segments interleaved with N-1 rests, no
// trailing rest. Used for display aggregation only; the engine keeps its
// own state.
func BuildPlan(cfg SessionConfig) []PhaseSegment {
	plan := make([]PhaseSegment, 0, 2*cfg.TotalSets-1)
	for set := 1; set <= cfg.TotalSets; set++ {
		plan = append(plan, PhaseSegment{
			Type:            PhaseWork,
			DurationSeconds: cfg.WorkSeconds,
			SetNumber:       set,
		})
		if set < cfg.TotalSets {
			plan = append(plan, PhaseSegment{
				Type:            PhaseRest,
				DurationSeconds: cfg.RestSeconds,
				SetNumber:       set,
			})
		}
	}
	return plan
}

// PlanDuration sums a plan's segment durations. This is the true running
// time of the session, unlike Aggregate which counts a trailing rest.
func PlanDuration(plan []PhaseSegment) int {
	total := 0
	for _, segment := range plan {
		total += segment.DurationSeconds
	}
	return total
}
