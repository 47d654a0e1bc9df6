package handoff

import (
	"context"
	"errors"
)

// FullscreenRequestID keys the response of a full-screen handoff.
const FullscreenRequestID = "fullscreen-preview"

// ErrCanceled is returned by a Viewer closed without a result.
var ErrCanceled = errors.New("handoff canceled")

// Request is passed to the viewer when entering full screen.
type Request struct {
	PositionMillis int
	Autoplay       bool
}

// Result is returned by the viewer when leaving full screen.
type Result struct {
	PositionMillis int
	IsPlaying      bool
}

// Outcome is how a handoff ended.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeCanceled
	OutcomeFailed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeCanceled:
		return "canceled"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Launch is everything a viewer needs to take over playback.
type Launch struct {
	ID      string
	Path    string
	Account string
	Request Request
}

// Response is delivered back to the preview. Result is only meaningful
// for OutcomeOK.
type Response struct {
	RequestID string
	LaunchID  string
	Outcome   Outcome
	Result    Result
	Err       error
}

// Viewer shows a file full screen and blocks until the user leaves.
type Viewer interface {
	Open(ctx context.Context, l Launch) (Result, error)
}

func responseFor(l Launch, res Result, err error) Response {
	resp := Response{RequestID: FullscreenRequestID, LaunchID: l.ID, Err: err}
	switch {
	case err == nil:
		resp.Outcome = OutcomeOK
		resp.Result = res
	case errors.Is(err, ErrCanceled), errors.Is(err, context.Canceled):
		resp.Outcome = OutcomeCanceled
	default:
		resp.Outcome = OutcomeFailed
	}
	return resp
}
