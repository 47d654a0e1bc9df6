// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vidpeek/internal/errmsg"
	"github.com/llehouerou/vidpeek/internal/filewatch"
	"github.com/llehouerou/vidpeek/internal/handoff"
	"github.com/llehouerou/vidpeek/internal/mpris"
	"github.com/llehouerou/vidpeek/internal/ui/action"
	"github.com/llehouerou/vidpeek/internal/ui/confirm"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ActivateMsg:
		m.report(errmsg.OpPlaybackLoad, m.Preview.Activate())
		return m.syncHost()

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.Dialog.SetSize(msg.Width, msg.Height)
		return m, nil

	case EngineEventMsg:
		m.Preview.HandleEvent(msg.Event)
		var cmd tea.Cmd
		m, cmd = m.syncHost()
		return m, tea.Batch(cmd, m.watchEngine())

	case ProgressMsg:
		m.Preview.ApplyProgress(msg.Update)
		return m, m.watchProgress()

	case HandoffMsg:
		return m.handleHandoff(msg.Response)

	case RemoteMsg:
		if m.Dialog.Active() {
			m.logger.Debug().Stringer("command", msg.Command.Kind).Msg("remote command ignored, dialog open")
			return m, m.watchRemote()
		}
		m.handleRemote(msg.Command)
		var cmd tea.Cmd
		m, cmd = m.syncHost()
		return m, tea.Batch(cmd, m.watchRemote())

	case FileChangeMsg:
		return m.handleFileChange(msg.Change)

	case TickMsg:
		m.ticking = false
		cmd := m.startTicking()
		return m, cmd

	case action.Msg:
		if res, ok := msg.Action.(confirm.Result); ok {
			return m.handleDialogResult(res)
		}
		return m, nil

	case tea.ResumeMsg:
		m.host.attached = true
		m.report(errmsg.OpPlaybackLoad, m.Preview.Activate())
		return m.syncHost()

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.Dialog.Active() {
			_, cmd := m.Dialog.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleHandoff(resp handoff.Response) (tea.Model, tea.Cmd) {
	applied, err := m.Preview.OnHandoffResponse(resp)
	switch {
	case resp.Outcome == handoff.OutcomeFailed:
		m.report(errmsg.OpFullscreen, resp.Err)
	case applied:
		m.StatusMsg = "Back from full screen"
	}
	m.report(errmsg.OpPlaybackLoad, err)
	var cmd tea.Cmd
	m, cmd = m.syncHost()
	return m, tea.Batch(cmd, m.watchHandoff())
}

func (m *Model) handleRemote(c mpris.Command) {
	ctrl := m.Preview.Controller()
	var err error
	switch c.Kind {
	case mpris.CommandPlay:
		err = m.playOrLoad()
	case mpris.CommandPause:
		ctrl.Suspend()
	case mpris.CommandToggle:
		err = m.togglePlayback()
	case mpris.CommandStop:
		ctrl.Stop()
	case mpris.CommandSeek:
		err = m.seekBy(c.OffsetMillis)
	case mpris.CommandSetPosition:
		err = m.seekTo(c.PositionMillis)
	}
	m.logger.Debug().Stringer("command", c.Kind).Msg("remote command")
	m.report(errmsg.OpPlaybackStart, err)
}

func (m Model) handleFileChange(c filewatch.Change) (tea.Model, tea.Cmd) {
	switch c.Kind {
	case filewatch.ContentChanged:
		m.refreshItem()
		m.report(errmsg.OpPlaybackLoad, m.Preview.OnFileContentChanged())
		m.StatusMsg = "File changed, reloaded"
	case filewatch.MetadataChanged:
		m.refreshItem()
	case filewatch.Removed:
		m.logger.Info().Str("path", c.Path).Msg("previewed file removed")
		m.quitting = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m, cmd = m.syncHost()
	return m, tea.Batch(cmd, m.watchFile())
}

// refreshItem re-reads the file metadata and hands it to the preview.
func (m *Model) refreshItem() {
	if m.refresh == nil {
		m.Preview.OnFileMetadataChanged(nil)
		return
	}
	item, err := m.refresh(m.Preview.Item())
	if err != nil {
		m.logger.Warn().Err(err).Msg("cannot refresh file metadata")
		m.Preview.OnFileMetadataChanged(nil)
		return
	}
	m.Preview.OnFileMetadataChanged(&item)
}

func (m Model) handleDialogResult(res confirm.Result) (tea.Model, tea.Cmd) {
	m.Dialog.Reset()
	if fn, ok := res.Context.(func()); ok && res.Confirmed {
		fn()
	}
	return m.syncHost()
}
