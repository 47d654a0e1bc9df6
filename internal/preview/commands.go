package preview

import (
	"fmt"

	"github.com/llehouerou/vidpeek/internal/errmsg"
	"github.com/llehouerou/vidpeek/internal/media"
)

// Action is a file command offered by the preview menu.
type Action int

const (
	ActionShare Action = iota
	ActionSend
	ActionOpenWith
	ActionSync
	ActionFavorite
	ActionUnfavorite
	ActionDetails
	ActionRemove
	ActionRename
	ActionMove
	ActionCopy
)

// Actions lists every menu action in display order.
var Actions = []Action{
	ActionShare, ActionSend, ActionOpenWith, ActionSync,
	ActionFavorite, ActionUnfavorite, ActionDetails, ActionRemove,
	ActionRename, ActionMove, ActionCopy,
}

func (a Action) String() string {
	switch a {
	case ActionShare:
		return "share"
	case ActionSend:
		return "send"
	case ActionOpenWith:
		return "open-with"
	case ActionSync:
		return "sync"
	case ActionFavorite:
		return "favorite"
	case ActionUnfavorite:
		return "unfavorite"
	case ActionDetails:
		return "details"
	case ActionRemove:
		return "remove"
	case ActionRename:
		return "rename"
	case ActionMove:
		return "move"
	case ActionCopy:
		return "copy"
	}
	return "unknown"
}

// Execute runs a menu command. Inline playback is paused first; the
// command is then handed to the file operations unchanged. Remove asks for
// confirmation and open-with closes the preview.
func (p *Preview) Execute(a Action) error {
	p.controller.Suspend()
	p.logger.Debug().Stringer("action", a).Msg("file command")

	item, account := p.item, p.account
	switch a {
	case ActionShare:
		return wrap(errmsg.OpFileShare, p.files.Share(item, account))
	case ActionSend:
		return wrap(errmsg.OpFileSend, p.files.Send(item, account))
	case ActionOpenWith:
		return p.openWith()
	case ActionSync:
		return wrap(errmsg.OpFileSync, p.files.Sync(item, account))
	case ActionFavorite:
		return wrap(errmsg.OpFavoriteToggle, p.files.SetFavorite(item, account, true))
	case ActionUnfavorite:
		return wrap(errmsg.OpFavoriteToggle, p.files.SetFavorite(item, account, false))
	case ActionDetails:
		return wrap(errmsg.OpFileDetails, p.files.ShowDetails(item, account))
	case ActionRemove:
		p.dialogs.Confirm(removeMessage(item), func() {
			if err := p.files.Remove(item, account); err != nil {
				p.host.Report(errmsg.OpFileDelete, err)
			}
		})
		return nil
	case ActionRename, ActionMove, ActionCopy:
		return fmt.Errorf("%v: %w", a, ErrUnavailable)
	}
	return fmt.Errorf("action %d: %w", int(a), ErrUnavailable)
}

func (p *Preview) openWith() error {
	p.controller.Stop()
	if err := p.files.OpenWith(p.item, p.account); err != nil {
		return wrap(errmsg.OpFileOpenWith, err)
	}
	p.host.Finish()
	return nil
}

func removeMessage(item media.Item) string {
	return fmt.Sprintf("Do you really want to remove %s?", item.Name())
}

// OpError carries the operation a command failed in.
type OpError struct {
	Op  errmsg.Op
	Err error
}

func (e *OpError) Error() string { return errmsg.Format(e.Op, e.Err) }

func (e *OpError) Unwrap() error { return e.Err }

func wrap(op errmsg.Op, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err}
}
