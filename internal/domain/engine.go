package domain

// TimerState is the live state of a countdown session. It is advanced one
// second at a time by Tick; the caller owns the clock. Pausing is an
// orthogonal flag: it suspends ticking but preserves phase and remaining
// time. Running turns false exactly once, when the last work phase ends.
type TimerState struct {
	Phase         Phase
	TimeRemaining int
	CurrentSet    int
	Running       bool
	Paused        bool
}

// Finished reports whether the session reached its terminal state
func (s TimerState) Finished() bool {
	return !s.Running
}

// Start returns the initial state for a session: first work phase, set 1.
// The config must already be validated.
func Start(cfg SessionConfig) TimerState {
	return TimerState{
		Phase:         PhaseWork,
		TimeRemaining: cfg.WorkSeconds,
		CurrentSet:    1,
		Running:       true,
		Paused:        false,
	}
}

// Tick advances the countdown by one second and returns the next state plus
// the transition events this second produced. It must be called exactly once
// per elapsed second while the state is running and not paused; calls in any
// other state are no-ops.
//
// A remaining time of zero is never left standing: the same tick that
// decrements to zero also resolves the phase boundary, so observers never
// see zero on a still-running phase.
func Tick(state TimerState, cfg SessionConfig) (TimerState, []Event) {
	if !state.Running || state.Paused {
		return state, nil
	}

	remaining := state.TimeRemaining - 1
	if remaining == 0 {
		return advance(state, cfg)
	}

	state.TimeRemaining = remaining
	if remaining >= 1 && remaining <= 3 {
		return state, []Event{countdownTick(state.Phase, remaining)}
	}
	return state, nil
}

// Skip forces an immediate phase boundary without waiting for the countdown
// to reach zero, applying the same transition rule as Tick's zero branch.
// Skipping also resumes a paused session.
func Skip(state TimerState, cfg SessionConfig) (TimerState, []Event) {
	if !state.Running {
		return state, nil
	}

	state.Paused = false
	return advance(state, cfg)
}

// advance resolves the boundary at the end of the current phase
func advance(state TimerState, cfg SessionConfig) (TimerState, []Event) {
	switch {
	case state.Phase == PhaseWork && state.CurrentSet < cfg.TotalSets:
		state.Phase = PhaseRest
		state.TimeRemaining = cfg.RestSeconds
		return state, []Event{phaseEnded(PhaseWork), phaseStarted(PhaseRest)}

	case state.Phase == PhaseWork:
		// Last set done, the session is over. No trailing rest.
		state.Running = false
		state.TimeRemaining = 0
		return state, []Event{phaseEnded(PhaseWork), workoutFinished()}

	default: // rest ended, next set begins
		state.Phase = PhaseWork
		state.TimeRemaining = cfg.WorkSeconds
		state.CurrentSet++
		return state, []Event{phaseEnded(PhaseRest), phaseStarted(PhaseWork)}
	}
}

// Pause suspends ticking. Idempotent.
func Pause(state TimerState) TimerState {
	state.Paused = true
	return state
}

// Resume clears the paused flag. Idempotent.
func Resume(state TimerState) TimerState {
	state.Paused = false
	return state
}

// Reset returns to the very first work segment regardless of the current
// position. Destructive; callers confirm with the user first.
func Reset(cfg SessionConfig) TimerState {
	return Start(cfg)
}

// PhaseDuration returns the full duration of the current phase, for
// progress display
func PhaseDuration(state TimerState, cfg SessionConfig) int {
	if state.Phase == PhaseRest {
		return cfg.RestSeconds
	}
	return cfg.WorkSeconds
}
