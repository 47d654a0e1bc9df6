// internal/app/mouse.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vidpeek/internal/handoff"
	"github.com/llehouerou/vidpeek/internal/ui"
)

// handleMouse turns left-button events on the video surface into pointer
// events. Terminal columns are the pixels, one column being cellWidthDP dp.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.Dialog.Active() || !m.inSurface(msg.X, msg.Y) {
		return m, nil
	}
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	var phase handoff.PointerAction
	switch msg.Action {
	case tea.MouseActionPress:
		phase = handoff.PointerDown
	case tea.MouseActionMotion:
		phase = handoff.PointerMove
	case tea.MouseActionRelease:
		phase = handoff.PointerUp
	default:
		return m, nil
	}

	ev := handoff.PointerEvent{
		Action:  phase,
		X:       float64(msg.X),
		Density: 1 / m.cellWidthDP,
	}
	inFlight := m.Preview.Coordinator().InFlight()
	if !m.Preview.HandlePointer(ev) {
		return m, nil
	}
	if m.Preview.Coordinator().InFlight() > inFlight {
		m.StatusMsg = "Playing full screen"
	}
	return m.syncHost()
}

// inSurface reports whether a cell lies on the video surface.
func (m Model) inSurface(x, y int) bool {
	top := ui.HeaderHeight
	return x >= 0 && x < m.Width && y >= top && y < top+m.surfaceHeight()
}
