package media

import "errors"

// ErrInvalidState is matched by every *InvalidStateError.
var ErrInvalidState = errors.New("invalid state")

// InvalidStateError reports an item/account pair a preview cannot be built on.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return "cannot preview: " + e.Reason
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// CanBePreviewed reports whether item is a locally available video.
func CanBePreviewed(item *Item) bool {
	return item != nil && item.Downloaded && item.Kind == KindVideo
}

// Validate checks the pair a preview is constructed with.
func Validate(item *Item, account *Account) error {
	switch {
	case item == nil:
		return &InvalidStateError{Reason: "no file given"}
	case account == nil || account.IsZero():
		return &InvalidStateError{Reason: "no account given"}
	case !item.Downloaded:
		return &InvalidStateError{Reason: "no local file to preview"}
	case item.Kind != KindVideo:
		return &InvalidStateError{Reason: "not a video file"}
	}
	return nil
}
