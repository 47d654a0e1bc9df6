// Package handoff moves playback between the inline preview and a
// full-screen viewer, carrying only an explicit position/playing pair
// across the boundary.
package handoff

// EdgeMarginDP is the width, in density-independent units, of the left
// strip reserved for the edge-swipe gesture.
const EdgeMarginDP = 24.0

// PointerAction is the phase of a pointer event.
type PointerAction int

const (
	PointerDown PointerAction = iota
	PointerMove
	PointerUp
	PointerCancel
)

// PointerEvent is a pointer event on the preview surface. X is in pixels;
// Density is pixels per density-independent unit.
type PointerEvent struct {
	Action  PointerAction
	X       float64
	Density float64
}

// XDP returns X in density-independent units. A non-positive density is
// treated as 1.
func (e PointerEvent) XDP() float64 {
	if e.Density <= 0 {
		return e.X
	}
	return e.X / e.Density
}

// Triggers reports whether e starts a handoff.
func (e PointerEvent) Triggers() bool {
	return e.Action == PointerDown && e.XDP() > EdgeMarginDP
}
