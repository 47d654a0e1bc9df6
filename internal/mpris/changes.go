package mpris

import (
	"github.com/rs/zerolog"

	"github.com/llehouerou/vidpeek/internal/playback"
)

// emitter publishes PropertiesChanged for the player interface.
type emitter interface {
	OnPlayPause() error // PlaybackStatus
	OnTitle() error     // Metadata
}

// forward relays the state changes of sub to clients until sub is done.
func forward(sub *playback.Subscription, emit emitter, logger zerolog.Logger) {
	for {
		select {
		case <-sub.Done:
			return
		case change := <-sub.StateChanged:
			if err := emit.OnPlayPause(); err != nil {
				logger.Debug().Err(err).Msg("mpris status signal failed")
			}
			if metadataChanged(change) {
				if err := emit.OnTitle(); err != nil {
					logger.Debug().Err(err).Msg("mpris metadata signal failed")
				}
			}
		case <-sub.Error:
			// The transition to StateError already went out as a status change.
		}
	}
}

// metadataChanged reports whether change alters what Metadata returns:
// it is empty while uninitialized and the length is known once ready.
func metadataChanged(change playback.StateChange) bool {
	return change.Previous == playback.StateUninitialized ||
		change.Current == playback.StateUninitialized ||
		change.Current == playback.StateReady
}
