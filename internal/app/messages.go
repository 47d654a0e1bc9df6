// internal/app/messages.go
package app

import (
	"time"

	"github.com/llehouerou/vidpeek/internal/filewatch"
	"github.com/llehouerou/vidpeek/internal/handoff"
	"github.com/llehouerou/vidpeek/internal/mpris"
	"github.com/llehouerou/vidpeek/internal/player"
	"github.com/llehouerou/vidpeek/internal/progress"
)

// ActivateMsg makes the preview active once the program runs.
type ActivateMsg struct{}

// EngineEventMsg carries an engine notification onto the loop.
type EngineEventMsg struct {
	Event player.Event
}

// ProgressMsg carries a sync status update.
type ProgressMsg struct {
	Update progress.Update
}

// HandoffMsg carries the response of a full-screen viewer.
type HandoffMsg struct {
	Response handoff.Response
}

// RemoteMsg carries an MPRIS command.
type RemoteMsg struct {
	Command mpris.Command
}

// FileChangeMsg reports a change of the previewed file.
type FileChangeMsg struct {
	Change filewatch.Change
}

// TickMsg refreshes the position display while playing.
type TickMsg time.Time
