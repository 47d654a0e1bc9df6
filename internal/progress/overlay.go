package progress

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/llehouerou/vidpeek/internal/media"
)

// Update is a status change tagged with the activation it belongs to.
type Update struct {
	Key    Key
	Status Status
	Epoch  uint64
}

// Overlay binds at most one listener to a Source and tracks the visibility
// of the sync indicator. Activate, Deactivate and Apply are called from the
// owner goroutine; updates produced by the source are handed over through
// Updates.
type Overlay struct {
	source Source
	logger zerolog.Logger

	active  bool
	key     Key
	epoch   uint64
	stop    func()
	done    chan struct{}
	visible bool

	updates chan Update
}

// NewOverlay creates an inactive overlay on source.
func NewOverlay(source Source, logger zerolog.Logger) *Overlay {
	return &Overlay{
		source:  source,
		logger:  logger,
		updates: make(chan Update),
	}
}

// Updates returns the channel carrying source updates. The owner reads it
// and passes each value to Apply.
func (o *Overlay) Updates() <-chan Update {
	return o.updates
}

// Activate starts listening for item. It is a no-op while active.
func (o *Overlay) Activate(item media.Item, account media.Account) error {
	if o.active {
		return nil
	}
	return o.bind(Key{Account: account.Name, Path: item.Path})
}

// Rebind replaces the listener of an active overlay, for when the transfer
// service reconnects. Inactive overlays are left alone.
func (o *Overlay) Rebind() error {
	if !o.active {
		return nil
	}
	key := o.key
	o.unbind()
	return o.bind(key)
}

// Deactivate stops listening and hides the indicator. It is a no-op while
// inactive. Updates produced before Deactivate are dropped by Apply.
func (o *Overlay) Deactivate() {
	if !o.active {
		return
	}
	o.unbind()
	o.visible = false
	o.logger.Debug().Stringer("key", o.key).Msg("progress listener unbound")
}

func (o *Overlay) bind(key Key) error {
	o.epoch++
	epoch := o.epoch
	done := make(chan struct{})
	updates := o.updates

	var once sync.Once
	sink := func(s Status) {
		select {
		case updates <- Update{Key: key, Status: s, Epoch: epoch}:
		case <-done:
		}
	}

	stop, err := o.source.Listen(key, sink)
	if err != nil {
		return err
	}

	o.active = true
	o.key = key
	o.done = done
	o.stop = func() {
		once.Do(func() {
			close(done)
			stop()
		})
	}
	o.logger.Debug().Stringer("key", key).Uint64("epoch", epoch).Msg("progress listener bound")
	return nil
}

func (o *Overlay) unbind() {
	if o.stop != nil {
		o.stop()
	}
	o.stop = nil
	o.done = nil
	o.active = false
}

// Apply toggles the indicator for an update from the current activation.
// It reports whether the update was applied.
func (o *Overlay) Apply(u Update) bool {
	if !o.active || u.Epoch != o.epoch || u.Key != o.key {
		return false
	}
	o.visible = u.Status == StatusInProgress
	return true
}

// Active reports whether a listener is bound.
func (o *Overlay) Active() bool { return o.active }

// Visible reports whether the sync indicator is shown.
func (o *Overlay) Visible() bool { return o.visible }

// Key returns the key of the current or last binding.
func (o *Overlay) Key() Key { return o.key }
