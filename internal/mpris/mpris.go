//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"path/filepath"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/rs/zerolog"

	"github.com/llehouerou/vidpeek/internal/media"
	"github.com/llehouerou/vidpeek/internal/playback"
)

// Adapter connects the preview session to MPRIS over D-Bus.
type Adapter struct {
	server   *server.Server
	source   Source
	sub      *playback.Subscription
	commands queue
}

// New creates and starts a new MPRIS adapter. State changes of source are
// announced to clients until Close.
func New(source Source, logger zerolog.Logger) (*Adapter, error) {
	a := &Adapter{source: source, commands: make(queue, commandBuffer)}

	rootAdapter := &rootAdapter{}
	playerAdapter := &playerAdapter{source: source, commands: a.commands, logger: logger}

	a.server = server.NewServer("vidpeek", rootAdapter, playerAdapter)
	handler := events.NewEventHandler(a.server)

	go func() {
		if err := a.server.Listen(); err != nil {
			logger.Debug().Err(err).Msg("mpris server stopped")
		}
	}()

	a.sub = source.Subscribe()
	go forward(a.sub, handler.Player, logger)

	return a, nil
}

// Commands returns the remote control requests to apply on the UI loop.
func (a *Adapter) Commands() <-chan Command {
	return a.commands
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	a.source.Unsubscribe(a.sub)
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Vidpeek", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return media.VideoMimeTypes(), nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	source   Source
	commands queue
	logger   zerolog.Logger
}

func (p *playerAdapter) send(c Command) error {
	if !p.commands.push(c) {
		p.logger.Warn().Stringer("command", c.Kind).Msg("mpris command dropped, queue full")
	}
	return nil
}

func (p *playerAdapter) Next() error {
	return nil // single item
}

func (p *playerAdapter) Previous() error {
	return nil // single item
}

func (p *playerAdapter) Pause() error {
	return p.send(Command{Kind: CommandPause})
}

func (p *playerAdapter) PlayPause() error {
	return p.send(Command{Kind: CommandToggle})
}

func (p *playerAdapter) Stop() error {
	return p.send(Command{Kind: CommandStop})
}

func (p *playerAdapter) Play() error {
	return p.send(Command{Kind: CommandPlay})
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.send(Command{Kind: CommandSeek, OffsetMillis: int(int64(offset) / 1000)})
}

func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	// Stale track IDs must be ignored.
	if trackID != formatTrackID(p.source.Path()) {
		return nil
	}
	return p.send(Command{Kind: CommandSetPosition, PositionMillis: int(int64(position) / 1000)})
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return types.PlaybackStatus(statusOf(p.source.State())), nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	path := p.source.Path()
	if path == "" || p.source.State() == playback.StateUninitialized {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(path)),
		Length:  types.Microseconds(int64(p.source.Duration()) * 1000),
		Title:   filepath.Base(path),
	}
	if thumb := FindThumbnail(path); thumb != "" {
		meta.ArtUrl = "file://" + thumb
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	return int64(p.source.Position()) * 1000, nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	switch p.source.State() {
	case playback.StateReady, playback.StatePaused, playback.StateCompleted, playback.StatePlaying:
		return true, nil
	}
	return false, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.source.State() == playback.StatePlaying, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.source.Duration() > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
