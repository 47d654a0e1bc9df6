// Package progress shows whether a previewed file is being synced, by
// listening to the transfer subsystem while the preview is active.
package progress

import "fmt"

// Status is the sync state of a file.
type Status int

const (
	StatusIdle Status = iota
	StatusInProgress
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusInProgress:
		return "in progress"
	default:
		return "unknown"
	}
}

// Key identifies the file a listener is bound to.
type Key struct {
	Account string
	Path    string
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s", k.Account, k.Path)
}

// Source delivers sync status changes for a file. sink may be called from
// any goroutine until stop returns.
type Source interface {
	Listen(key Key, sink func(Status)) (stop func(), err error)
}
