package preview

import (
	"time"

	"github.com/rs/zerolog"

	vlog "github.com/llehouerou/vidpeek/internal/log"
	"github.com/llehouerou/vidpeek/internal/notify"
)

// PlaybackError is an engine error seen by the presenter.
type PlaybackError struct {
	Code      int
	Extra     int
	Message   string
	Presented bool // a modal was shown
	At        time.Time
}

type presenterConfig struct {
	dialogs  Dialogs
	resolve  MessageResolver
	attached func() bool
	current  func() uint64 // generation the error belongs to
	ack      func(generation uint64)
	notifier notify.Notifier
	path     func() string
	logger   zerolog.Logger
}

// ErrorPresenter shows playback errors. While the view is attached it
// opens a non-cancelable alert whose acknowledgement completes playback;
// otherwise the error is only recorded and sent as a desktop notification.
type ErrorPresenter struct {
	cfg    presenterConfig
	errors []PlaybackError
	now    func() time.Time
}

func newErrorPresenter(cfg presenterConfig) *ErrorPresenter {
	return &ErrorPresenter{cfg: cfg, now: time.Now}
}

// Present handles an engine error pair.
func (e *ErrorPresenter) Present(code, extra int) {
	message := e.cfg.resolve(code, extra)
	attached := e.cfg.attached()

	e.errors = append(e.errors, PlaybackError{
		Code:      code,
		Extra:     extra,
		Message:   message,
		Presented: attached,
		At:        e.now(),
	})
	e.cfg.logger.Error().
		Int(vlog.FieldCode, code).
		Int(vlog.FieldExtra, extra).
		Bool("attached", attached).
		Msg(message)

	if !attached {
		if _, err := e.cfg.notifier.Notify(notify.PlaybackError(e.cfg.path(), message)); err != nil {
			e.cfg.logger.Debug().Err(err).Msg("error notification failed")
		}
		return
	}
	gen := e.cfg.current()
	e.cfg.dialogs.Alert(message, func() { e.cfg.ack(gen) })
}

// Errors returns the errors seen so far, oldest first.
func (e *ErrorPresenter) Errors() []PlaybackError {
	return append([]PlaybackError(nil), e.errors...)
}
