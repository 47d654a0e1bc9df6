package playback

// State is the lifecycle state of an inline playback session.
//
//	Uninitialized ─load─▶ Preparing ─prepared─▶ Ready ─autoplay/play─▶ Playing ⇄ Paused
//	                          │                   │                      │         │
//	                          └──────errored──────┴────────┬─────────────┴─────────┘
//	                                                       ▼
//	                                  Error ◀──errored── ... ──completed──▶ Completed
//
// Completed and Error accept load again. Stop returns any state to
// Uninitialized.
type State int

const (
	StateUninitialized State = iota
	StatePreparing
	StateReady
	StatePlaying
	StatePaused
	StateCompleted
	StateError
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StatePreparing:
		return "Preparing"
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateCompleted:
		return "Completed"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// IsActive returns true while a source is loading or loaded and not finished.
func (s State) IsActive() bool {
	switch s {
	case StatePreparing, StateReady, StatePlaying, StatePaused:
		return true
	default:
		return false
	}
}

// CanLoad returns true if load may be issued from this state.
func (s State) CanLoad() bool {
	return s == StateUninitialized || s == StateCompleted || s == StateError
}

// canComplete lists the states a completion applies to. Error is included
// so an acknowledged error converges like a normal completion.
func (s State) canComplete() bool {
	switch s {
	case StateReady, StatePlaying, StatePaused, StateError:
		return true
	default:
		return false
	}
}
