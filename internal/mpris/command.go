// Package mpris exposes the inline preview session on the MPRIS D-Bus
// interface. Reads go straight to the session; commands are queued for
// the UI loop, which owns every mutation.
package mpris

import (
	"github.com/llehouerou/vidpeek/internal/playback"
)

// CommandKind identifies a remote control request.
type CommandKind int

const (
	CommandPlay CommandKind = iota
	CommandPause
	CommandToggle
	CommandStop
	CommandSeek        // relative, OffsetMillis
	CommandSetPosition // absolute, PositionMillis
)

func (k CommandKind) String() string {
	switch k {
	case CommandPlay:
		return "play"
	case CommandPause:
		return "pause"
	case CommandToggle:
		return "toggle"
	case CommandStop:
		return "stop"
	case CommandSeek:
		return "seek"
	case CommandSetPosition:
		return "set-position"
	}
	return "unknown"
}

// Command is a remote control request to apply on the UI loop.
type Command struct {
	Kind           CommandKind
	OffsetMillis   int
	PositionMillis int
}

// Source is the read side of the previewed session. Implementations must
// be safe to call from the D-Bus goroutine.
type Source interface {
	State() playback.State
	Path() string
	Position() int
	Duration() int
	Subscribe() *playback.Subscription
	Unsubscribe(sub *playback.Subscription)
}

const commandBuffer = 8

// queue forwards commands without blocking the D-Bus goroutine.
type queue chan Command

func (q queue) push(c Command) bool {
	select {
	case q <- c:
		return true
	default:
		return false
	}
}

// statusOf maps the preview lifecycle onto MPRIS playback statuses.
func statusOf(s playback.State) string {
	switch s {
	case playback.StatePlaying:
		return "Playing"
	case playback.StateReady, playback.StatePaused, playback.StateCompleted:
		return "Paused"
	case playback.StateUninitialized, playback.StatePreparing, playback.StateError:
		return "Stopped"
	}
	return "Stopped"
}
