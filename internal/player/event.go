package player

import (
	"errors"
	"fmt"
)

// EventKind tags an engine notification.
type EventKind int

const (
	EventPrepared EventKind = iota + 1
	EventCompleted
	EventError
)

// String returns the kind name.
func (k EventKind) String() string {
	switch k {
	case EventPrepared:
		return "prepared"
	case EventCompleted:
		return "completed"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is the single notification type an engine emits. Code and Extra
// are only set for EventError.
type Event struct {
	Token uint64
	Kind  EventKind
	Code  int
	Extra int
}

// PreparedEvent, CompletedEvent and ErrorEvent build events for token.
func PreparedEvent(token uint64) Event  { return Event{Token: token, Kind: EventPrepared} }
func CompletedEvent(token uint64) Event { return Event{Token: token, Kind: EventCompleted} }
func ErrorEvent(token uint64, code, extra int) Event {
	return Event{Token: token, Kind: EventError, Code: code, Extra: extra}
}

// Error codes reported in Event.Code.
const (
	CodeUnknown                = 1
	CodeServerDied             = 100
	CodeNotValidForProgressive = 200
)

// Detail codes reported in Event.Extra.
const (
	ExtraNone        = 0
	ExtraIO          = -1004
	ExtraMalformed   = -1007
	ExtraUnsupported = -1010
	ExtraTimedOut    = -110
)

// MediaError is returned by a Prober when a source cannot be played.
type MediaError struct {
	Code  int
	Extra int
	Err   error
}

func (e *MediaError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("media error %d/%d", e.Code, e.Extra)
	}
	return fmt.Sprintf("media error %d/%d: %v", e.Code, e.Extra, e.Err)
}

func (e *MediaError) Unwrap() error { return e.Err }

// Codes extracts the (code, extra) pair carried by err.
func Codes(err error) (code, extra int) {
	var me *MediaError
	if errors.As(err, &me) {
		return me.Code, me.Extra
	}
	return CodeUnknown, ExtraNone
}
