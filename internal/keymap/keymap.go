package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "file"
}

// Bindings contains all key bindings, in help order.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionSuspend, []string{"ctrl+z"}, "Suspend", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionStop, []string{"x"}, "Stop", "playback"},
	{ActionReload, []string{"r"}, "Reload", "playback"},
	{ActionSeekBack, []string{"left", "shift+left"}, "Seek -5s", "playback"},
	{ActionSeekForward, []string{"right", "shift+right"}, "Seek +5s", "playback"},
	{ActionSeekStart, []string{"home", "0"}, "Back to start", "playback"},
	{ActionFullscreen, []string{"f", "enter"}, "Full screen", "playback"},

	// File commands
	{ActionShare, []string{"y"}, "Share link", "file"},
	{ActionSend, []string{"e"}, "Send", "file"},
	{ActionOpenWith, []string{"o"}, "Open with", "file"},
	{ActionSync, []string{"s"}, "Sync", "file"},
	{ActionToggleFavorite, []string{"F"}, "Favorite", "file"},
	{ActionDetails, []string{"i"}, "Details", "file"},
	{ActionDelete, []string{"d", "delete"}, "Remove", "file"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
