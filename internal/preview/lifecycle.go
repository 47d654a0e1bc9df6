package preview

import (
	"errors"

	"github.com/llehouerou/vidpeek/internal/media"
	"github.com/llehouerou/vidpeek/internal/playback"
	"github.com/llehouerou/vidpeek/internal/snapshot"
)

// Activate is called when the view becomes visible. It stops other audio,
// starts listening for sync progress and loads the video. Calling it again
// while active does nothing.
func (p *Preview) Activate() error {
	if p.active {
		return nil
	}
	p.active = true

	if p.audio != nil {
		p.audio.StopAudio()
	}
	if err := p.overlay.Activate(p.item, p.account); err != nil {
		// Playback works without the indicator.
		p.logger.Warn().Err(err).Msg("cannot listen for sync progress")
	}
	return p.load()
}

// Deactivate is called when the view is hidden. The progress listener is
// released before the playback session. The live position and playing
// state are kept for the next activation.
func (p *Preview) Deactivate() {
	if !p.active {
		return
	}
	p.active = false

	p.overlay.Deactivate()
	p.keepPosition()
	p.controller.Stop()
}

// Destroy releases everything. Open full-screen viewers are canceled.
func (p *Preview) Destroy() error {
	p.Deactivate()
	p.coordinator.Close()
	return p.controller.Close()
}

// SaveState captures the state needed to rebuild the preview and stores
// it when a snapshot manager is configured.
func (p *Preview) SaveState() (snapshot.Snapshot, error) {
	var s snapshot.Snapshot
	if p.controller.Session().IsPrepared {
		s = snapshot.Capture(p.engine, p.item, p.account)
	} else {
		pos, autoplay := p.controller.Desired()
		s = snapshot.Snapshot{Item: p.item, Account: p.account, PositionMillis: pos, Autoplay: autoplay}
	}

	if p.snapshots != nil {
		if err := p.snapshots.Save(s); err != nil {
			return s, err
		}
	}
	return s, nil
}

// OnFileMetadataChanged replaces the item with a fresh copy of its
// metadata. A nil item keeps the current one. The menu is rebuilt either
// way.
func (p *Preview) OnFileMetadataChanged(updated *media.Item) {
	if updated != nil {
		p.item = *updated
		p.logger.Debug().Bool("favorite", updated.Favorite).Msg("file metadata changed")
	}
	p.host.InvalidateMenu()
}

// OnFileContentChanged reloads the video after the local copy changed.
func (p *Preview) OnFileContentChanged() error {
	if !p.active {
		return nil
	}
	p.controller.Stop()
	return p.load()
}

// OnTransferServiceConnected listens for sync progress again.
func (p *Preview) OnTransferServiceConnected() error {
	return p.overlay.Rebind()
}

// Reload prepares the video again after it was stopped, completed or
// failed.
func (p *Preview) Reload() error {
	if !p.active {
		return nil
	}
	return p.load()
}

func (p *Preview) load() error {
	if !p.controller.State().CanLoad() {
		return nil
	}
	err := p.controller.Load(p.item.Path)
	if errors.Is(err, playback.ErrInvalidTransition) {
		return nil
	}
	return err
}

// keepPosition stores the live engine position as the position the next
// prepared cycle seeks to.
func (p *Preview) keepPosition() {
	s := p.controller.Session()
	if s.IsPrepared {
		p.controller.SetDesired(s.PositionMillis, s.IsPlaying)
	}
}
