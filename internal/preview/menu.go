package preview

import (
	"errors"

	"github.com/llehouerou/vidpeek/internal/media"
)

// ErrUnavailable is returned for actions this preview never offers.
var ErrUnavailable = errors.New("action not available in preview")

// MenuItem is the visibility of one action.
type MenuItem struct {
	Visible bool
	Enabled bool
}

// Menu maps actions to their visibility.
type Menu map[Action]MenuItem

// Show makes a visible and enabled.
func (m Menu) Show(a Action) { m[a] = MenuItem{Visible: true, Enabled: true} }

// Hide makes a hidden and disabled.
func (m Menu) Hide(a Action) { m[a] = MenuItem{} }

// Available reports whether a is visible and enabled.
func (m Menu) Available(a Action) bool {
	it := m[a]
	return it.Visible && it.Enabled
}

// Visible returns the available actions in display order.
func (m Menu) Visible() []Action {
	var out []Action
	for _, a := range Actions {
		if m.Available(a) {
			out = append(out, a)
		}
	}
	return out
}

// MenuPolicy is the general per-file action policy.
type MenuPolicy interface {
	Filter(menu Menu, item media.Item, account media.Account)
}

// previewOnly are never offered while previewing, whatever the policy.
var previewOnly = []Action{ActionRename, ActionMove, ActionCopy}

// PrepareMenu builds the menu: every action starts available, policy
// filters it, then rename, move and copy are forced off.
func (p *Preview) PrepareMenu(policy MenuPolicy) Menu {
	menu := make(Menu, len(Actions))
	for _, a := range Actions {
		menu.Show(a)
	}
	if policy != nil {
		policy.Filter(menu, p.item, p.account)
	}
	for _, a := range previewOnly {
		menu.Hide(a)
	}
	return menu
}
