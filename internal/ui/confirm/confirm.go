// Package confirm provides the modal dialogs of the preview: a
// non-cancelable alert, a yes/no confirmation and a dismissible text panel.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/vidpeek/internal/ui"
	"github.com/llehouerou/vidpeek/internal/ui/popup"
	"github.com/llehouerou/vidpeek/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Kind selects the dialog behavior.
type Kind int

const (
	// KindAlert has a single acknowledgement and cannot be dismissed.
	KindAlert Kind = iota
	// KindConfirm asks yes or no.
	KindConfirm
	// KindInfo shows text until dismissed.
	KindInfo
)

// Model is a modal dialog.
type Model struct {
	ui.Base
	kind    Kind
	title   string
	message string
	context any
	active  bool
}

// New creates an inactive dialog.
func New() Model {
	return Model{}
}

// Show opens a dialog of the given kind.
func (m *Model) Show(kind Kind, title, message string, context any, width, height int) {
	m.kind = kind
	m.title = title
	m.message = message
	m.context = context
	m.SetSize(width, height)
	m.active = true
}

// Reset closes the dialog without emitting a result.
func (m *Model) Reset() {
	*m = Model{Base: m.Base}
}

// Active reports whether the dialog is shown.
func (m Model) Active() bool {
	return m.active
}

// Kind returns the kind of the current dialog.
func (m Model) Kind() Kind {
	return m.kind
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !m.active || !ok {
		return m, nil
	}

	switch m.kind {
	case KindAlert:
		if key.String() == "enter" {
			return m, m.close(true)
		}
	case KindConfirm:
		switch key.String() {
		case "enter", "y", "Y":
			return m, m.close(true)
		case "esc", "n", "N":
			return m, m.close(false)
		}
	case KindInfo:
		switch key.String() {
		case "enter", "esc", "q":
			return m, m.close(true)
		}
	}
	return m, nil
}

func (m *Model) close(confirmed bool) tea.Cmd {
	result := Result{Kind: m.kind, Confirmed: confirmed, Context: m.context}
	m.active = false
	return func() tea.Msg { return ActionMsg(result) }
}

var hints = map[Kind]string{
	KindAlert:   "Enter: OK",
	KindConfirm: "Enter/Y: confirm, Esc/N: cancel",
	KindInfo:    "Enter/Esc: close",
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()
	title := s.Title.Render(m.title)
	if m.kind == KindAlert {
		title = s.Error.Bold(true).Render(m.title)
	}
	message := s.Base.Width(min(lipgloss.Width(m.message), max(m.Width()-8, 10))).Render(m.message)
	return title + "\n\n" + message + "\n\n" + s.Subtle.Render(hints[m.kind])
}
