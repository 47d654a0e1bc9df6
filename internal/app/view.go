// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/vidpeek/internal/icons"
	"github.com/llehouerou/vidpeek/internal/keymap"
	"github.com/llehouerou/vidpeek/internal/playback"
	"github.com/llehouerou/vidpeek/internal/preview"
	"github.com/llehouerou/vidpeek/internal/ui"
	"github.com/llehouerou/vidpeek/internal/ui/playerbar"
	"github.com/llehouerou/vidpeek/internal/ui/popup"
	"github.com/llehouerou/vidpeek/internal/ui/render"
	"github.com/llehouerou/vidpeek/internal/ui/styles"
)

// menuKeys maps menu actions back to the key actions shown as hints.
var menuKeys = map[preview.Action]keymap.Action{
	preview.ActionShare:      keymap.ActionShare,
	preview.ActionSend:       keymap.ActionSend,
	preview.ActionOpenWith:   keymap.ActionOpenWith,
	preview.ActionSync:       keymap.ActionSync,
	preview.ActionFavorite:   keymap.ActionToggleFavorite,
	preview.ActionUnfavorite: keymap.ActionToggleFavorite,
	preview.ActionDetails:    keymap.ActionDetails,
	preview.ActionRemove:     keymap.ActionDelete,
}

var stateLabels = map[playback.State]string{
	playback.StateUninitialized: "Stopped",
	playback.StatePreparing:     "Loading…",
	playback.StateReady:         "Ready",
	playback.StatePlaying:       "Playing",
	playback.StatePaused:        "Paused",
	playback.StateCompleted:     "Finished",
	playback.StateError:         "Cannot play this video",
}

// View renders the application UI.
func (m Model) View() string {
	if m.quitting || m.Width == 0 || m.Height == 0 {
		return ""
	}

	c := m.Preview.Controller()
	bar := playerbar.NewState(
		m.Preview.Item().Name(),
		c.State(),
		c.Session(),
		c.Duration(),
		m.Preview.SyncVisible(),
	)

	view := strings.Join([]string{
		m.renderHeader(),
		m.renderSurface(),
		playerbar.Render(bar, m.Width),
		m.renderHints(),
		m.renderStatus(),
	}, "\n")

	if m.Dialog.Active() {
		box := popup.Center(popup.Frame(m.Dialog.View(), m.Width), m.Width, m.Height)
		view = popup.Compose(view, box, m.Width)
	}
	return view
}

func (m Model) surfaceHeight() int {
	h := m.Height - ui.HeaderHeight - playerbar.Height - ui.FooterHeight
	return max(h, ui.MinSurfaceHeight)
}

func (m Model) renderHeader() string {
	s := styles.T().S()
	t := styles.T()
	title := styles.Gradient("vidpeek", t.Primary, t.Secondary)

	right := icons.FormatAccount(m.Preview.Account().Name)
	if m.Preview.Item().Favorite {
		right = s.Playing.Render(icons.Favorite()) + " " + s.Muted.Render(right)
	} else {
		right = s.Muted.Render(right)
	}
	name := icons.FormatVideo(m.Preview.Item().Name())
	name = render.Truncate(name, max(m.Width-lipgloss.Width(right)-12, 1))
	return render.Row(title+"  "+s.Title.Render(name), right, m.Width)
}

func (m Model) renderSurface() string {
	s := styles.T().S()
	c := m.Preview.Controller()
	state := c.State()

	label := stateLabels[state]
	symbol := playerbar.Symbol(state)
	var lines []string
	switch state {
	case playback.StateError:
		lines = append(lines, s.Error.Bold(true).Render(symbol+"  "+label))
	case playback.StatePlaying:
		lines = append(lines, s.Playing.Render(symbol+"  "+label))
	default:
		lines = append(lines, s.Title.Render(symbol+"  "+label))
	}
	if m.Preview.SyncVisible() {
		lines = append(lines, "", s.Sync.Render(icons.Sync()+" Syncing with the server"))
	}
	if m.Preview.Coordinator().InFlight() > 0 {
		lines = append(lines, "", s.Muted.Render("Playing in the full-screen viewer"))
	} else {
		lines = append(lines, "", s.Subtle.Render("Click the video to play it full screen"))
	}

	inner := m.surfaceHeight() - ui.BorderHeight
	width := max(m.Width-2, 1)
	body := lipgloss.Place(width, inner, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
	return styles.T().Surface(m.Preview.Active()).Width(width).Height(inner).Render(body)
}

func (m Model) renderHints() string {
	s := styles.T().S()
	hints := []string{m.keys.Hint(keymap.ActionPlayPause), m.keys.Hint(keymap.ActionFullscreen)}
	seen := map[keymap.Action]bool{}
	for _, a := range m.menu.Visible() {
		k, ok := menuKeys[a]
		if !ok || seen[k] {
			continue
		}
		seen[k] = true
		hint := m.keys.Hint(k)
		if a == preview.ActionUnfavorite {
			hint = strings.Replace(hint, "Favorite", "Unfavorite", 1)
		}
		hints = append(hints, hint)
	}
	hints = append(hints, m.keys.Hint(keymap.ActionHelp))
	return s.Subtle.Render(render.Truncate(strings.Join(hints, " · "), m.Width))
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	switch {
	case m.ErrorMsg != "":
		return s.Error.Render(render.Truncate(m.ErrorMsg, m.Width))
	case m.StatusMsg != "":
		return s.Muted.Render(render.Truncate(m.StatusMsg, m.Width))
	}
	return ""
}
