// internal/app/keys.go
package app

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vidpeek/internal/errmsg"
	"github.com/llehouerou/vidpeek/internal/keymap"
	"github.com/llehouerou/vidpeek/internal/playback"
	"github.com/llehouerou/vidpeek/internal/preview"
)

const seekStepMillis = 5000

// fileActions maps file command keys to preview actions. Favorite is
// resolved against the current item.
var fileActions = map[keymap.Action]preview.Action{
	keymap.ActionShare:    preview.ActionShare,
	keymap.ActionSend:     preview.ActionSend,
	keymap.ActionOpenWith: preview.ActionOpenWith,
	keymap.ActionSync:     preview.ActionSync,
	keymap.ActionDetails:  preview.ActionDetails,
	keymap.ActionDelete:   preview.ActionRemove,
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	act := m.keys.Resolve(msg.String())
	if act == "" {
		return m, nil
	}
	m.ErrorMsg = ""

	c := m.Preview.Controller()
	switch act {
	case keymap.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case keymap.ActionSuspend:
		m.Preview.Deactivate()
		if _, err := m.Preview.SaveState(); err != nil {
			m.logger.Warn().Err(err).Msg("cannot save preview state")
		}
		m.host.attached = false
		return m, tea.Suspend

	case keymap.ActionHelp:
		m.host.ShowText("Keys", m.helpText())

	case keymap.ActionPlayPause:
		m.report(errmsg.OpPlaybackStart, m.togglePlayback())

	case keymap.ActionStop:
		if s := c.Session(); s.IsPrepared {
			c.SetDesired(s.PositionMillis, false)
		}
		c.Stop()
		m.StatusMsg = "Stopped"

	case keymap.ActionReload:
		if s := c.Session(); s.IsPrepared {
			c.SetDesired(s.PositionMillis, s.IsPlaying)
		}
		c.Stop()
		m.report(errmsg.OpPlaybackLoad, m.Preview.Reload())

	case keymap.ActionSeekForward:
		m.report(errmsg.OpPlaybackStart, m.seekBy(seekStepMillis))

	case keymap.ActionSeekBack:
		m.report(errmsg.OpPlaybackStart, m.seekBy(-seekStepMillis))

	case keymap.ActionSeekStart:
		m.report(errmsg.OpPlaybackStart, m.seekTo(0))

	case keymap.ActionFullscreen:
		if m.Preview.Active() {
			m.Preview.EnterFullscreen()
			m.StatusMsg = "Playing full screen"
		}

	case keymap.ActionToggleFavorite:
		m.execute(m.favoriteAction())

	default:
		if a, ok := fileActions[act]; ok {
			m.execute(a)
		}
	}
	return m.syncHost()
}

// execute runs a menu command if the menu offers it.
func (m *Model) execute(a preview.Action) {
	if !m.menu.Available(a) {
		m.StatusMsg = "Not available for this file"
		return
	}
	if err := m.Preview.Execute(a); err != nil {
		if errors.Is(err, preview.ErrUnavailable) {
			m.StatusMsg = "Not available for this file"
			return
		}
		m.report(errmsg.OpPreviewOpen, err)
		return
	}

	switch a {
	case preview.ActionFavorite, preview.ActionUnfavorite:
		item := m.Preview.Item()
		item.Favorite = a == preview.ActionFavorite
		m.Preview.OnFileMetadataChanged(&item)
		if item.Favorite {
			m.StatusMsg = "Added to favorites"
		} else {
			m.StatusMsg = "Removed from favorites"
		}
	case preview.ActionSync:
		// A new transfer is polled right away.
		if err := m.Preview.OnTransferServiceConnected(); err != nil {
			m.report(errmsg.OpProgressListen, err)
		}
		m.StatusMsg = "Sync queued"
	case preview.ActionShare:
		m.StatusMsg = "Link copied"
	default:
	}
}

func (m Model) favoriteAction() preview.Action {
	if m.Preview.Item().Favorite {
		return preview.ActionUnfavorite
	}
	return preview.ActionFavorite
}

// playOrLoad starts playback, preparing the video again when it is not
// loaded.
func (m *Model) playOrLoad() error {
	c := m.Preview.Controller()
	switch c.State() {
	case playback.StateUninitialized, playback.StateError:
		pos, _ := c.Desired()
		c.SetDesired(pos, true)
		return m.Preview.Reload()
	case playback.StatePreparing:
		pos, _ := c.Desired()
		c.SetDesired(pos, true)
		return nil
	default:
		return c.Play()
	}
}

func (m *Model) togglePlayback() error {
	c := m.Preview.Controller()
	switch c.State() {
	case playback.StateUninitialized, playback.StateError, playback.StatePreparing:
		return m.playOrLoad()
	default:
		return c.Toggle()
	}
}

func (m *Model) seekBy(offsetMillis int) error {
	c := m.Preview.Controller()
	if !c.Session().IsPrepared {
		pos, _ := c.Desired()
		return m.seekTo(pos + offsetMillis)
	}
	return m.seekTo(c.Position() + offsetMillis)
}

// seekTo moves a prepared source, or the position the next prepared cycle
// starts from.
func (m *Model) seekTo(positionMillis int) error {
	c := m.Preview.Controller()
	if !c.Session().IsPrepared {
		_, autoplay := c.Desired()
		c.SetDesired(positionMillis, autoplay)
		return nil
	}
	return c.SeekTo(positionMillis)
}

func (m Model) helpText() string {
	var b strings.Builder
	for i, ctx := range []string{"playback", "file", "global"} {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, kb := range keymap.ByContext(ctx) {
			b.WriteString(m.keys.Hint(kb.Action))
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
