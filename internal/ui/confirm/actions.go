package confirm

import (
	"github.com/llehouerou/vidpeek/internal/ui/action"
)

// Result is emitted when a dialog closes.
type Result struct {
	Kind      Kind
	Confirmed bool // acknowledged alert, yes on confirm
	Context   any  // passed through from Show
}

// ActionType implements action.Action.
func (Result) ActionType() string { return "confirm.result" }

// ActionMsg wraps a result for the app.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "confirm", Action: a}
}
