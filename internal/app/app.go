// internal/app/app.go
package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/vidpeek/internal/errmsg"
	"github.com/llehouerou/vidpeek/internal/filewatch"
	"github.com/llehouerou/vidpeek/internal/keymap"
	"github.com/llehouerou/vidpeek/internal/media"
	"github.com/llehouerou/vidpeek/internal/mpris"
	"github.com/llehouerou/vidpeek/internal/preview"
	"github.com/llehouerou/vidpeek/internal/ui/confirm"
)

// Options configures the terminal host of a preview.
type Options struct {
	Preview *preview.Preview
	Host    *Host
	Policy  preview.MenuPolicy

	// Remote and Changes are optional sources of remote control commands
	// and file changes.
	Remote  <-chan mpris.Command
	Changes <-chan filewatch.Change

	// Refresh re-reads the metadata of the previewed file after a change.
	Refresh func(media.Item) (media.Item, error)

	// CellWidthDP is the width of one terminal column in dp.
	CellWidthDP float64

	Logger zerolog.Logger
}

// Model is the bubbletea model hosting one preview.
type Model struct {
	Preview *preview.Preview
	host    *Host
	keys    *keymap.Resolver
	policy  preview.MenuPolicy
	menu    preview.Menu

	remote  <-chan mpris.Command
	changes <-chan filewatch.Change
	refresh func(media.Item) (media.Item, error)

	cellWidthDP float64
	logger      zerolog.Logger

	Dialog      confirm.Model
	StatusMsg   string
	ErrorMsg    string
	errorSerial int

	Width, Height int
	ticking       bool
	quitting      bool
}

// New creates the model. The preview is activated by Init.
func New(opts Options) Model {
	cell := opts.CellWidthDP
	if cell <= 0 {
		cell = 1
	}
	return Model{
		Preview:     opts.Preview,
		host:        opts.Host,
		keys:        keymap.NewResolver(keymap.Bindings),
		policy:      opts.Policy,
		remote:      opts.Remote,
		changes:     opts.Changes,
		refresh:     opts.Refresh,
		cellWidthDP: cell,
		logger:      opts.Logger,
		Dialog:      confirm.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return ActivateMsg{} },
		m.watchEngine(),
		m.watchProgress(),
		m.watchHandoff(),
		m.watchRemote(),
		m.watchFile(),
	)
}

// Menu returns the menu as last prepared.
func (m Model) Menu() preview.Menu { return m.menu }

// Quitting reports whether the program is shutting down.
func (m Model) Quitting() bool { return m.quitting }

// syncHost applies what the preview asked of the host during the last
// call: closing, dialogs, reported errors and the menu.
func (m Model) syncHost() (Model, tea.Cmd) {
	if m.host.menuDirty || m.menu == nil {
		m.menu = m.Preview.PrepareMenu(m.policy)
		m.host.menuDirty = false
	}
	if m.host.errorSerial != m.errorSerial {
		m.errorSerial = m.host.errorSerial
		m.ErrorMsg = m.host.lastError
	}
	if m.host.finished && !m.quitting {
		m.quitting = true
		return m, tea.Quit
	}
	if !m.Dialog.Active() {
		if req, ok := m.host.next(); ok {
			var ctx any
			if req.onYes != nil {
				ctx = req.onYes
			}
			m.Dialog.Show(req.kind, req.title, req.message, ctx, m.Width, m.Height)
		}
	}
	cmd := m.startTicking()
	return m, cmd
}

// startTicking arms the position refresh while playing.
func (m *Model) startTicking() tea.Cmd {
	if m.ticking || !m.Preview.Controller().IsPlaying() {
		return nil
	}
	m.ticking = true
	return TickCmd()
}

// report shows err in the status line. Errors from preview commands carry
// their operation; others are attributed to op.
func (m *Model) report(op errmsg.Op, err error) {
	if err == nil {
		return
	}
	var opErr *preview.OpError
	if errors.As(err, &opErr) {
		m.ErrorMsg = opErr.Error()
	} else {
		m.ErrorMsg = errmsg.Format(op, err)
	}
	m.StatusMsg = ""
	m.logger.Warn().Err(err).Str("op", string(op)).Msg("operation failed")
}
