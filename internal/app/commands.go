// internal/app/commands.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vidpeek/internal/filewatch"
	"github.com/llehouerou/vidpeek/internal/handoff"
	"github.com/llehouerou/vidpeek/internal/mpris"
	"github.com/llehouerou/vidpeek/internal/player"
	"github.com/llehouerou/vidpeek/internal/progress"
)

const tickInterval = 500 * time.Millisecond

// TickCmd returns a command that sends TickMsg after tickInterval.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// The watchers below are re-armed by Update after each message. A closed
// channel yields nil, which ends the watch.

func (m Model) watchEngine() tea.Cmd {
	return waitForChannel(m.Preview.Events(), func(e player.Event, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return EngineEventMsg{Event: e}
	})
}

func (m Model) watchProgress() tea.Cmd {
	return waitForChannel(m.Preview.Updates(), func(u progress.Update, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return ProgressMsg{Update: u}
	})
}

func (m Model) watchHandoff() tea.Cmd {
	return waitForChannel(m.Preview.Responses(), func(r handoff.Response, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return HandoffMsg{Response: r}
	})
}

func (m Model) watchRemote() tea.Cmd {
	return waitForChannel(m.remote, func(c mpris.Command, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return RemoteMsg{Command: c}
	})
}

func (m Model) watchFile() tea.Cmd {
	return waitForChannel(m.changes, func(c filewatch.Change, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return FileChangeMsg{Change: c}
	})
}
