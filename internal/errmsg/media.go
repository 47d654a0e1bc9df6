package errmsg

import "github.com/llehouerou/vidpeek/internal/player"

// MediaError returns the message shown for an engine error pair. The
// detail code refines generic and server errors; a progressive-playback
// error is reported as such whatever the detail.
func MediaError(code, extra int) string {
	if code == player.CodeNotValidForProgressive {
		return "This video cannot be played while it is still being received."
	}

	switch extra {
	case player.ExtraUnsupported:
		return "This video format is not supported."
	case player.ExtraIO:
		return "The video file could not be read."
	case player.ExtraMalformed:
		return "The video file is damaged or not a valid video."
	case player.ExtraTimedOut:
		return "Opening the video timed out."
	}

	if code == player.CodeServerDied {
		return "The video player stopped unexpectedly."
	}
	return "This video cannot be played."
}
