package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component drawn over the preview.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View renders the content without frame or centering.
	View() string
	SetSize(width, height int)
}
