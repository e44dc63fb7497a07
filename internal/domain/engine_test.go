package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(work, rest, sets int) SessionConfig {
	return SessionConfig{
		WorkSeconds: work,
		RestSeconds: rest,
		TotalSets:   sets,
		Title:       "Work",
	}
}

func TestStart_InitialState(t *testing.T) {
	state := Start(testConfig(45, 15, 8))

	assert.Equal(t, PhaseWork, state.Phase)
	assert.Equal(t, 45, state.TimeRemaining)
	assert.Equal(t, 1, state.CurrentSet)
	assert.True(t, state.Running)
	assert.False(t, state.Paused)
	assert.False(t, state.Finished())
}

func TestTick_DecrementsWithoutEvents(t *testing.T) {
	cfg := testConfig(45, 15, 3)
	state := Start(cfg)

	next, events := Tick(state, cfg)

	assert.Equal(t, 44, next.TimeRemaining)
	assert.Equal(t, PhaseWork, next.Phase)
	assert.Empty(t, events)
}

func TestTick_CountdownEventsInLastThreeSeconds(t *testing.T) {
	cfg := testConfig(10, 5, 2)
	state := Start(cfg)
	state.TimeRemaining = 4

	for _, expected := range []int{3, 2, 1} {
		var events []Event
		state, events = Tick(state, cfg)

		require.Len(t, events, 1)
		assert.Equal(t, EventCountdownTick, events[0].Kind)
		assert.Equal(t, expected, events[0].Value)
		assert.Equal(t, PhaseWork, events[0].Phase)
		assert.Equal(t, expected, state.TimeRemaining)
	}
}

func TestTick_WorkToRestTransition(t *testing.T) {
	cfg := testConfig(10, 5, 2)
	state := Start(cfg)
	state.TimeRemaining = 1

	next, events := Tick(state, cfg)

	assert.Equal(t, PhaseRest, next.Phase)
	assert.Equal(t, 5, next.TimeRemaining)
	assert.Equal(t, 1, next.CurrentSet, "set must not change on work→rest")
	assert.True(t, next.Running)

	require.Len(t, events, 2)
	assert.Equal(t, EventPhaseEnded, events[0].Kind)
	assert.Equal(t, PhaseWork, events[0].Phase)
	assert.Equal(t, EventPhaseStarted, events[1].Kind)
	assert.Equal(t, PhaseRest, events[1].Phase)
}

func TestTick_RestToWorkIncrementsSet(t *testing.T) {
	cfg := testConfig(10, 5, 3)
	state := TimerState{Phase: PhaseRest, TimeRemaining: 1, CurrentSet: 1, Running: true}

	next, events := Tick(state, cfg)

	assert.Equal(t, PhaseWork, next.Phase)
	assert.Equal(t, 10, next.TimeRemaining)
	assert.Equal(t, 2, next.CurrentSet)

	require.Len(t, events, 2)
	assert.Equal(t, EventPhaseEnded, events[0].Kind)
	assert.Equal(t, PhaseRest, events[0].Phase)
	assert.Equal(t, EventPhaseStarted, events[1].Kind)
	assert.Equal(t, PhaseWork, events[1].Phase)
}

func TestTick_LastWorkPhaseFinishesWorkout(t *testing.T) {
	cfg := testConfig(10, 5, 2)
	state := TimerState{Phase: PhaseWork, TimeRemaining: 1, CurrentSet: 2, Running: true}

	next, events := Tick(state, cfg)

	assert.False(t, next.Running)
	assert.True(t, next.Finished())
	assert.Equal(t, 0, next.TimeRemaining)

	require.Len(t, events, 2)
	assert.Equal(t, EventPhaseEnded, events[0].Kind, "phase end must precede finish")
	assert.Equal(t, EventWorkoutFinished, events[1].Kind)
}

func TestTick_NoOpWhenPausedOrFinished(t *testing.T) {
	cfg := testConfig(10, 5, 2)

	paused := Pause(Start(cfg))
	next, events := Tick(paused, cfg)
	assert.Equal(t, paused, next)
	assert.Empty(t, events)

	finished := TimerState{Phase: PhaseWork, TimeRemaining: 0, CurrentSet: 2, Running: false}
	next, events = Tick(finished, cfg)
	assert.Equal(t, finished, next)
	assert.Empty(t, events)
}

// Driving the engine for the full planned duration must finish on the final
// tick and no earlier: (work+rest)*(sets-1) + work ticks in total.
func TestTick_FinishesAfterExactTickCount(t *testing.T) {
	tests := []struct {
		work, rest, sets int
	}{
		{work: 1, rest: 1, sets: 1},
		{work: 10, rest: 5, sets: 1},
		{work: 20, rest: 10, sets: 8},
		{work: 45, rest: 15, sets: 8},
		{work: 3, rest: 2, sets: 99},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dw_%dr_%dsets", tt.work, tt.rest, tt.sets), func(t *testing.T) {
			cfg := testConfig(tt.work, tt.rest, tt.sets)
			state := Start(cfg)
			totalTicks := (tt.work+tt.rest)*(tt.sets-1) + tt.work

			var events []Event
			for i := 1; i <= totalTicks; i++ {
				state, events = Tick(state, cfg)

				assert.GreaterOrEqual(t, state.TimeRemaining, 0)
				if i < totalTicks {
					require.True(t, state.Running, "finished early at tick %d", i)
					if state.Running {
						assert.Positive(t, state.TimeRemaining,
							"zero remaining must resolve within the same tick")
					}
				}
			}

			assert.True(t, state.Finished())
			require.NotEmpty(t, events)
			assert.Equal(t, EventWorkoutFinished, events[len(events)-1].Kind)
		})
	}
}

// Set numbers must increase by exactly one per rest→work transition and
// never change otherwise.
func TestTick_SetMonotonicity(t *testing.T) {
	cfg := testConfig(4, 3, 5)
	state := Start(cfg)

	previousSet := state.CurrentSet
	for state.Running {
		var events []Event
		state, events = Tick(state, cfg)

		restEnded := false
		for _, ev := range events {
			if ev.Kind == EventPhaseEnded && ev.Phase == PhaseRest {
				restEnded = true
			}
		}

		if restEnded {
			assert.Equal(t, previousSet+1, state.CurrentSet)
		} else {
			assert.Equal(t, previousSet, state.CurrentSet)
		}
		previousSet = state.CurrentSet
	}

	assert.Equal(t, 5, previousSet)
}

func TestTick_SingleSetNeverRests(t *testing.T) {
	cfg := testConfig(10, 5, 1)
	state := Start(cfg)

	for state.Running {
		var events []Event
		state, events = Tick(state, cfg)
		for _, ev := range events {
			assert.NotEqual(t, PhaseRest, ev.Phase, "sets=1 must not produce rest events")
		}
		assert.NotEqual(t, PhaseRest, state.Phase)
	}
}

// The 45s work / 15s rest / 8 sets scenario: display total is 480s but the
// live engine finishes after 45 + (15+45)*7 = 465 ticks.
func TestTick_FortyFiveFifteenByEightScenario(t *testing.T) {
	cfg := testConfig(45, 15, 8)

	totals := Aggregate(FromSeconds(45), FromSeconds(15), 8)
	assert.Equal(t, 480, totals.TotalSeconds)
	assert.Equal(t, "08:00", FormatClock(totals.TotalSeconds))

	state := Start(cfg)
	ticks := 0
	for state.Running {
		state, _ = Tick(state, cfg)
		ticks++
	}
	assert.Equal(t, 465, ticks)
}

func TestSkip_AdvancesPhaseImmediately(t *testing.T) {
	cfg := testConfig(45, 15, 3)
	state := Start(cfg)

	next, events := Skip(state, cfg)

	assert.Equal(t, PhaseRest, next.Phase)
	assert.Equal(t, 15, next.TimeRemaining)
	require.Len(t, events, 2)
	assert.Equal(t, EventPhaseEnded, events[0].Kind)
	assert.Equal(t, EventPhaseStarted, events[1].Kind)
}

func TestSkip_ResumesPausedSession(t *testing.T) {
	cfg := testConfig(45, 15, 3)
	state := Pause(Start(cfg))

	next, _ := Skip(state, cfg)

	assert.False(t, next.Paused)
	assert.True(t, next.Running)
}

func TestSkip_ReachesFinishAfterTwoNMinusOneCalls(t *testing.T) {
	for _, sets := range []int{1, 2, 8, 99} {
		t.Run(fmt.Sprintf("%d_sets", sets), func(t *testing.T) {
			cfg := testConfig(30, 10, sets)
			state := Start(cfg)

			calls := 0
			for state.Running {
				state, _ = Skip(state, cfg)
				calls++
			}

			assert.Equal(t, 2*sets-1, calls)
		})
	}
}

func TestSkip_NoOpWhenFinished(t *testing.T) {
	cfg := testConfig(10, 5, 1)
	state := TimerState{Phase: PhaseWork, TimeRemaining: 0, CurrentSet: 1, Running: false}

	next, events := Skip(state, cfg)

	assert.Equal(t, state, next)
	assert.Empty(t, events)
}

func TestPause_Idempotent(t *testing.T) {
	cfg := testConfig(10, 5, 2)
	once := Pause(Start(cfg))
	twice := Pause(once)

	assert.Equal(t, once, twice)
	assert.True(t, twice.Paused)

	resumed := Resume(Resume(twice))
	assert.False(t, resumed.Paused)
	assert.Equal(t, once.TimeRemaining, resumed.TimeRemaining)
}

func TestReset_ReturnsToFirstSegment(t *testing.T) {
	cfg := testConfig(20, 10, 5)

	// Advance into the middle of the session, then pause
	state := Start(cfg)
	for i := 0; i < 50; i++ {
		state, _ = Tick(state, cfg)
	}
	state = Pause(state)

	reset := Reset(cfg)

	assert.Equal(t, PhaseWork, reset.Phase)
	assert.Equal(t, 20, reset.TimeRemaining)
	assert.Equal(t, 1, reset.CurrentSet)
	assert.True(t, reset.Running)
	assert.False(t, reset.Paused)
}

func TestPhaseDuration(t *testing.T) {
	cfg := testConfig(45, 15, 3)

	assert.Equal(t, 45, PhaseDuration(TimerState{Phase: PhaseWork}, cfg))
	assert.Equal(t, 15, PhaseDuration(TimerState{Phase: PhaseRest}, cfg))
}
