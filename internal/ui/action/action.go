// Package action carries results from dialogs back to the preview host.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a result produced by a component. ActionType names it in logs.
type Action interface {
	ActionType() string
}

// Msg is the tea message a component emits for an Action.
type Msg struct {
	Source string // emitting component, e.g. "confirm"
	Action Action
}

var _ tea.Msg = Msg{}
