// Package preview ties an inline video preview together: validation at
// construction, the playback controller, the sync indicator, the
// full-screen handoff and error presentation. The host calls every method
// from its UI goroutine and forwards the Events, Updates and Responses
// channels back into it.
package preview

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/llehouerou/vidpeek/internal/errmsg"
	"github.com/llehouerou/vidpeek/internal/handoff"
	vlog "github.com/llehouerou/vidpeek/internal/log"
	"github.com/llehouerou/vidpeek/internal/media"
	"github.com/llehouerou/vidpeek/internal/notify"
	"github.com/llehouerou/vidpeek/internal/playback"
	"github.com/llehouerou/vidpeek/internal/player"
	"github.com/llehouerou/vidpeek/internal/progress"
	"github.com/llehouerou/vidpeek/internal/snapshot"
)

// Args are the construction arguments of a preview. Nil Item or Account
// means absent.
type Args struct {
	Item           *media.Item
	Account        *media.Account
	PositionMillis int
	Autoplay       bool
}

// ArgsFromSnapshot rebuilds construction arguments from a saved snapshot.
func ArgsFromSnapshot(s snapshot.Snapshot) Args {
	item, account := s.Item, s.Account
	session := snapshot.Restore(s)
	return Args{
		Item:           &item,
		Account:        &account,
		PositionMillis: session.PositionMillis,
		Autoplay:       session.Autoplay,
	}
}

// FileOperations performs the file commands offered by the preview.
type FileOperations interface {
	Share(item media.Item, account media.Account) error
	Send(item media.Item, account media.Account) error
	OpenWith(item media.Item, account media.Account) error
	Sync(item media.Item, account media.Account) error
	SetFavorite(item media.Item, account media.Account, favorite bool) error
	ShowDetails(item media.Item, account media.Account) error
	Remove(item media.Item, account media.Account) error
}

// Dialogs shows modal dialogs.
type Dialogs interface {
	// Alert shows a non-cancelable message with a single acknowledgement.
	Alert(message string, onAck func())
	// Confirm asks before a destructive command; onConfirm runs only on yes.
	Confirm(message string, onConfirm func())
}

// Host is the environment the preview lives in.
type Host interface {
	// Finish closes the preview.
	Finish()
	// InvalidateMenu asks for the menu to be prepared again.
	InvalidateMenu()
	// Attached reports whether the view is currently shown.
	Attached() bool
	// Report shows a failed operation to the user.
	Report(op errmsg.Op, err error)
}

// AudioStopper stops other playback when a preview becomes active.
type AudioStopper interface {
	StopAudio()
}

// MessageResolver turns an engine error pair into a user-facing message.
type MessageResolver func(code, extra int) string

// Deps are the collaborators of a preview. Snapshots, Audio, Notifier and
// Messages are optional.
type Deps struct {
	Engine    player.Interface
	Controls  playback.Controls
	Source    progress.Source
	Viewer    handoff.Viewer
	Files     FileOperations
	Dialogs   Dialogs
	Host      Host
	Snapshots *snapshot.Manager
	Audio     AudioStopper
	Notifier  notify.Notifier
	Messages  MessageResolver
	Logger    zerolog.Logger
}

// Preview is an inline preview of one local video.
type Preview struct {
	id      string
	item    media.Item
	account media.Account

	controller  *playback.Controller
	overlay     *progress.Overlay
	coordinator *handoff.Coordinator
	presenter   *ErrorPresenter

	engine    player.Interface
	files     FileOperations
	dialogs   Dialogs
	host      Host
	snapshots *snapshot.Manager
	audio     AudioStopper
	logger    zerolog.Logger

	active bool
}

// New validates args and builds a preview. It fails with a
// *media.InvalidStateError before anything else is created.
func New(args Args, deps Deps) (*Preview, error) {
	if err := media.Validate(args.Item, args.Account); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	logger := deps.Logger.With().
		Str(vlog.FieldSessionID, id).
		Str(vlog.FieldPath, args.Item.Path).
		Logger()

	p := &Preview{
		id:        id,
		item:      *args.Item,
		account:   *args.Account,
		engine:    deps.Engine,
		files:     deps.Files,
		dialogs:   deps.Dialogs,
		host:      deps.Host,
		snapshots: deps.Snapshots,
		audio:     deps.Audio,
		logger:    logger,
	}

	p.controller = playback.New(deps.Engine, deps.Controls, logger.With().Str(vlog.FieldComponent, "playback").Logger())
	p.controller.Restore(playback.Session{
		PositionMillis: args.PositionMillis,
		Autoplay:       args.Autoplay,
	})

	resolve := deps.Messages
	if resolve == nil {
		resolve = errmsg.MediaError
	}
	notifier := deps.Notifier
	if notifier == nil {
		notifier = notify.Disabled()
	}
	p.presenter = newErrorPresenter(presenterConfig{
		dialogs:  deps.Dialogs,
		resolve:  resolve,
		attached: deps.Host.Attached,
		current:  p.controller.Generation,
		ack:      func(gen uint64) { p.controller.Complete(gen) },
		notifier: notifier,
		path:     func() string { return p.item.Path },
		logger:   logger.With().Str(vlog.FieldComponent, "errors").Logger(),
	})
	p.controller.SetErrorHandler(p.presenter)

	p.overlay = progress.NewOverlay(deps.Source, logger.With().Str(vlog.FieldComponent, "progress").Logger())
	p.coordinator = handoff.NewCoordinator(deps.Viewer, handoffTarget{p}, logger.With().Str(vlog.FieldComponent, "handoff").Logger())

	logger.Debug().
		Int(vlog.FieldPosition, args.PositionMillis).
		Bool("autoplay", args.Autoplay).
		Msg("preview created")
	return p, nil
}

// ID identifies this preview instance in logs.
func (p *Preview) ID() string { return p.id }

// Item returns the previewed file.
func (p *Preview) Item() media.Item { return p.item }

// Account returns the account owning the file.
func (p *Preview) Account() media.Account { return p.account }

// Controller returns the playback controller.
func (p *Preview) Controller() *playback.Controller { return p.controller }

// Overlay returns the sync indicator subscription.
func (p *Preview) Overlay() *progress.Overlay { return p.overlay }

// Coordinator returns the full-screen handoff coordinator.
func (p *Preview) Coordinator() *handoff.Coordinator { return p.coordinator }

// Presenter returns the error presenter.
func (p *Preview) Presenter() *ErrorPresenter { return p.presenter }

// Active reports whether the preview is between Activate and Deactivate.
func (p *Preview) Active() bool { return p.active }

// Events returns the engine notifications to pass to HandleEvent.
func (p *Preview) Events() <-chan player.Event { return p.engine.Events() }

// Updates returns the sync status updates to pass to ApplyProgress.
func (p *Preview) Updates() <-chan progress.Update { return p.overlay.Updates() }

// Responses returns the handoff responses to pass to OnHandoffResponse.
func (p *Preview) Responses() <-chan handoff.Response { return p.coordinator.Responses() }

// HandleEvent applies an engine notification.
func (p *Preview) HandleEvent(e player.Event) bool {
	return p.controller.Dispatch(e)
}

// ApplyProgress applies a sync status update.
func (p *Preview) ApplyProgress(u progress.Update) bool {
	return p.overlay.Apply(u)
}

// SyncVisible reports whether the sync indicator is shown.
func (p *Preview) SyncVisible() bool { return p.overlay.Visible() }
