package player

// State is the engine-side state of a media source.
//
//	┌──────┐ Prepare ┌───────────┐ probe ok ┌──────────┐ Start ┌─────────┐
//	│ Idle │────────▶│ Preparing │─────────▶│ Prepared │──────▶│ Started │
//	└──────┘         └───────────┘          └──────────┘       └─────────┘
//	    ▲                  │ probe failed                 Pause │ ▲   │ end
//	    │                  ▼                                    ▼ │   ▼
//	    │              ┌───────┐                         ┌────────┐ ┌───────────┐
//	    └──────────────│ Error │                         │ Paused │ │ Completed │
//	       Release     └───────┘                         └────────┘ └───────────┘
//
// Release returns any state to Idle. Start from Completed plays again from
// the current position (SeekTo(0) rewinds first).
type State int

const (
	Idle State = iota
	Preparing
	Prepared
	Started
	Paused
	Completed
	Errored
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Preparing:
		return "Preparing"
	case Prepared:
		return "Prepared"
	case Started:
		return "Started"
	case Paused:
		return "Paused"
	case Completed:
		return "Completed"
	case Errored:
		return "Error"
	default:
		return "Unknown"
	}
}

// IsPrepared reports whether the source is loaded and seekable.
func (s State) IsPrepared() bool {
	return s == Prepared || s == Started || s == Paused || s == Completed
}

// CanStart returns true if Start has an effect.
func (s State) CanStart() bool {
	return s == Prepared || s == Paused || s == Completed
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Started
}
