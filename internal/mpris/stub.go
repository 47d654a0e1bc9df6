//go:build !linux

package mpris

import "github.com/rs/zerolog"

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ Source, _ zerolog.Logger) (*Adapter, error) {
	return &Adapter{}, nil
}

// Commands returns nil; no remote control exists.
func (a *Adapter) Commands() <-chan Command {
	return nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}

// AudioStopper does nothing on non-Linux platforms.
type AudioStopper struct{}

// NewAudioStopper returns a no-op stopper.
func NewAudioStopper(_ zerolog.Logger) *AudioStopper {
	return &AudioStopper{}
}

// StopAudio does nothing.
func (s *AudioStopper) StopAudio() {}
