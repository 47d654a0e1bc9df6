// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Preview lifecycle
	OpPreviewOpen    Op = "open preview"
	OpPreviewRestore Op = "restore preview"
	OpPreviewSave    Op = "save preview state"

	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackPause Op = "pause playback"
	OpPlaybackLoad  Op = "load video"

	// Full-screen handoff
	OpFullscreen Op = "play full screen"

	// Sync progress
	OpProgressListen Op = "watch sync progress"

	// File operations
	OpFileShare      Op = "share file"
	OpFileSend       Op = "send file"
	OpFileOpenWith   Op = "open file"
	OpFileSync       Op = "sync file"
	OpFavoriteToggle Op = "update favorites"
	OpFileDetails    Op = "show file details"
	OpFileDelete     Op = "delete file"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
