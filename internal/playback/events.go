package playback

// StateChange is emitted when the lifecycle state changes.
type StateChange struct {
	Previous State
	Current  State
}

// ErrorEvent is emitted when the engine reports a playback error.
type ErrorEvent struct {
	Path  string
	Code  int
	Extra int
}
