// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit    Action = "quit"
	ActionHelp    Action = "help"
	ActionSuspend Action = "suspend"

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionStop        Action = "stop"
	ActionReload      Action = "reload"
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"
	ActionSeekStart   Action = "seek_start"
	ActionFullscreen  Action = "fullscreen"

	// File commands
	ActionShare          Action = "share"
	ActionSend           Action = "send"
	ActionOpenWith       Action = "open_with"
	ActionSync           Action = "sync"
	ActionToggleFavorite Action = "toggle_favorite"
	ActionDetails        Action = "details"
	ActionDelete         Action = "delete"
)
