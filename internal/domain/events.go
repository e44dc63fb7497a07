package domain

// Phase is one of the two alternating countdown modes
type Phase string

const (
	PhaseWork Phase = "work"
	PhaseRest Phase = "rest"
)

// EventKind identifies a transition event emitted by the engine
type EventKind string

const (
	EventPhaseEnded      EventKind = "phase_ended"
	EventPhaseStarted    EventKind = "phase_started"
	EventCountdownTick   EventKind = "countdown_tick"
	EventWorkoutFinished EventKind = "workout_finished"
)

// Event describes a phase boundary or countdown milestone. Events are
// returned synchronously from Tick and Skip so consumers observe them in
// exactly the order they occurred: within one tick a PhaseEnded always
// precedes the PhaseStarted or WorkoutFinished it caused.
type Event struct {
	Kind  EventKind
	Phase Phase // phase that ended/started; countdown ticks carry the current phase
	Value int   // remaining seconds for EventCountdownTick (3, 2 or 1)
}

func phaseEnded(p Phase) Event   { return Event{Kind: EventPhaseEnded, Phase: p} }
func phaseStarted(p Phase) Event { return Event{Kind: EventPhaseStarted, Phase: p} }

func countdownTick(p Phase, remaining int) Event {
	return Event{Kind: EventCountdownTick, Phase: p, Value: remaining}
}

func workoutFinished() Event { return Event{Kind: EventWorkoutFinished, Phase: PhaseWork} }
