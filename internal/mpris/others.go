//go:build linux

package mpris

import (
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"
)

const (
	busPrefix   = "org.mpris.MediaPlayer2."
	ownBusName  = busPrefix + "vidpeek"
	playerPath  = "/org/mpris/MediaPlayer2"
	pauseMethod = "org.mpris.MediaPlayer2.Player.Pause"
)

// AudioStopper pauses the other MPRIS players of the session, so that a
// preview does not play over music.
type AudioStopper struct {
	logger zerolog.Logger
}

// NewAudioStopper creates a stopper logging to logger.
func NewAudioStopper(logger zerolog.Logger) *AudioStopper {
	return &AudioStopper{logger: logger}
}

// StopAudio pauses every player but ours. Failures are logged only.
func (s *AudioStopper) StopAudio() {
	conn, err := dbus.SessionBus()
	if err != nil {
		s.logger.Debug().Err(err).Msg("no session bus, other players left alone")
		return
	}

	var names []string
	if err := conn.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names); err != nil {
		s.logger.Debug().Err(err).Msg("list bus names")
		return
	}
	for _, name := range otherPlayers(names) {
		call := conn.Object(name, playerPath).Call(pauseMethod, 0)
		if call.Err != nil {
			s.logger.Debug().Err(call.Err).Str("player", name).Msg("pause failed")
			continue
		}
		s.logger.Debug().Str("player", name).Msg("paused other player")
	}
}

func otherPlayers(names []string) []string {
	var out []string
	for _, n := range names {
		if strings.HasPrefix(n, busPrefix) && n != ownBusName && !strings.HasPrefix(n, ownBusName+".") {
			out = append(out, n)
		}
	}
	return out
}
