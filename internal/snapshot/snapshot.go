// Package snapshot saves and restores the minimal state a preview needs to
// be rebuilt after an involuntary teardown.
package snapshot

import (
	"fmt"

	"github.com/llehouerou/vidpeek/internal/media"
	"github.com/llehouerou/vidpeek/internal/playback"
)

// Field keys of a serialized snapshot.
const (
	FieldFile     = "FILE"
	FieldAccount  = "ACCOUNT"
	FieldPosition = "PLAY_POSITION"
	FieldPlaying  = "PLAYING"
)

// Snapshot is the saved state of a preview.
type Snapshot struct {
	Item           media.Item
	Account        media.Account
	PositionMillis int
	Autoplay       bool
}

// Equal compares item identity, account, position and autoplay.
func (s Snapshot) Equal(other Snapshot) bool {
	return s.Item.SameFile(other.Item) &&
		s.Account == other.Account &&
		s.PositionMillis == other.PositionMillis &&
		s.Autoplay == other.Autoplay
}

// Key identifies the preview a snapshot belongs to.
func (s Snapshot) Key() string {
	return s.Account.Name + ":" + s.Item.Path
}

// Fields serializes the snapshot into its field map.
func (s Snapshot) Fields() map[string]any {
	return map[string]any{
		FieldFile:     s.Item.Path,
		FieldAccount:  s.Account.Name,
		FieldPosition: s.PositionMillis,
		FieldPlaying:  s.Autoplay,
	}
}

// FromFields rebuilds a snapshot from Fields output. The item is resolved
// with lookup so that its attributes reflect the file as it is now.
func FromFields(fields map[string]any, lookup func(path string) (media.Item, error)) (Snapshot, error) {
	path, ok := fields[FieldFile].(string)
	if !ok || path == "" {
		return Snapshot{}, fmt.Errorf("snapshot: missing %s", FieldFile)
	}
	account, ok := fields[FieldAccount].(string)
	if !ok {
		return Snapshot{}, fmt.Errorf("snapshot: missing %s", FieldAccount)
	}
	pos, ok := fields[FieldPosition].(int)
	if !ok {
		return Snapshot{}, fmt.Errorf("snapshot: missing %s", FieldPosition)
	}
	playing, ok := fields[FieldPlaying].(bool)
	if !ok {
		return Snapshot{}, fmt.Errorf("snapshot: missing %s", FieldPlaying)
	}

	item, err := lookup(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: %w", err)
	}

	return Snapshot{
		Item:           item,
		Account:        media.Account{Name: account},
		PositionMillis: pos,
		Autoplay:       playing,
	}, nil
}

// Probe is the live engine a snapshot is captured from.
type Probe interface {
	CurrentPosition() int
	IsPlaying() bool
}

// Capture reads position and playing state from the engine at call time.
func Capture(probe Probe, item media.Item, account media.Account) Snapshot {
	return Snapshot{
		Item:           item,
		Account:        account,
		PositionMillis: probe.CurrentPosition(),
		Autoplay:       probe.IsPlaying(),
	}
}

// Restore returns the session a snapshot describes. It must be applied
// before the session loads so that the prepared cycle seeks to it.
func Restore(s Snapshot) playback.Session {
	return playback.Session{
		PositionMillis: s.PositionMillis,
		Autoplay:       s.Autoplay,
	}
}
