//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpFileDelete,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpFileDelete,
			err:      errors.New("file not found"),
			expected: "Failed to delete file: file not found",
		},
		{
			name:     "sync operation",
			op:       OpFileSync,
			err:      errors.New("permission denied"),
			expected: "Failed to sync file: permission denied",
		},
		{
			name:     "fullscreen operation",
			op:       OpFullscreen,
			err:      errors.New("no candidate players found"),
			expected: "Failed to play full screen: no candidate players found",
		},
		{
			name:     "preview operation",
			op:       OpPreviewOpen,
			err:      errors.New("not a video file"),
			expected: "Failed to open preview: not a video file",
		},
		{
			name:     "playback operation",
			op:       OpPlaybackStart,
			err:      errors.New("no video stream"),
			expected: "Failed to start playback: no video stream",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpFileDelete,
			context:  "clip.mp4",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpFileDelete,
			context:  "clip.mp4",
			err:      errors.New("permission denied"),
			expected: "Failed to delete file 'clip.mp4': permission denied",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpFileDelete,
			context:  "",
			err:      errors.New("permission denied"),
			expected: "Failed to delete file: permission denied",
		},
		{
			name:     "open with path context",
			op:       OpFileOpenWith,
			context:  "/home/user/videos/clip.mp4",
			err:      errors.New("no application registered"),
			expected: "Failed to open file '/home/user/videos/clip.mp4': no application registered",
		},
		{
			name:     "share with filename context",
			op:       OpFileShare,
			context:  "clip.mp4",
			err:      errors.New("clipboard unavailable"),
			expected: "Failed to share file 'clip.mp4': clipboard unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	// Verify that Op constants are non-empty and produce valid messages
	ops := []Op{
		OpPreviewOpen, OpPreviewRestore, OpPreviewSave,
		OpPlaybackStart, OpPlaybackPause, OpPlaybackLoad,
		OpFullscreen, OpProgressListen,
		OpFileShare, OpFileSend, OpFileOpenWith, OpFileSync,
		OpFavoriteToggle, OpFileDetails, OpFileDelete,
		OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			result := Format(op, testErr)
			if result == "" {
				t.Error("Format should return non-empty string for non-nil error")
			}

			// Verify the format includes the operation
			expected := "Failed to " + string(op) + ": test error"
			if result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
