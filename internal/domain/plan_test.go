package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlan_SegmentOrder(t *testing.T) {
	plan := BuildPlan(SessionConfig{WorkSeconds: 20, RestSeconds: 10, TotalSets: 3})

	require.Len(t, plan, 5)
	expected := []PhaseSegment{
		{Type: PhaseWork, DurationSeconds: 20, SetNumber: 1},
		{Type: PhaseRest, DurationSeconds: 10, SetNumber: 1},
		{Type: PhaseWork, DurationSeconds: 20, SetNumber: 2},
		{Type: PhaseRest, DurationSeconds: 10, SetNumber: 2},
		{Type: PhaseWork, DurationSeconds: 20, SetNumber: 3},
	}
	assert.Equal(t, expected, plan)
}

func TestBuildPlan_SingleSetHasNoRest(t *testing.T) {
	plan := BuildPlan(SessionConfig{WorkSeconds: 20, RestSeconds: 10, TotalSets: 1})

	require.Len(t, plan, 1)
	assert.Equal(t, PhaseWork, plan[0].Type)
}

func TestBuildPlan_SegmentCount(t *testing.T) {
	for _, sets := range []int{1, 2, 8, 99} {
		t.Run(fmt.Sprintf("%d_sets", sets), func(t *testing.T) {
			plan := BuildPlan(SessionConfig{WorkSeconds: 5, RestSeconds: 5, TotalSets: sets})
			assert.Len(t, plan, 2*sets-1)
		})
	}
}

// The plan is a lazy unfolding of what the engine walks live: driving the
// engine must visit exactly the plan's segments in order.
func TestBuildPlan_MatchesEngineWalk(t *testing.T) {
	cfg := SessionConfig{WorkSeconds: 3, RestSeconds: 2, TotalSets: 4}
	plan := BuildPlan(cfg)

	state := Start(cfg)
	walked := []PhaseSegment{{Type: state.Phase, DurationSeconds: state.TimeRemaining, SetNumber: state.CurrentSet}}
	for state.Running {
		var events []Event
		state, events = Tick(state, cfg)
		for _, ev := range events {
			if ev.Kind == EventPhaseStarted {
				// a rest segment carries the set it follows, which is
				// exactly the engine's unchanged CurrentSet
				walked = append(walked, PhaseSegment{
					Type:            state.Phase,
					DurationSeconds: state.TimeRemaining,
					SetNumber:       state.CurrentSet,
				})
			}
		}
	}

	assert.Equal(t, plan, walked)
}
