// Package playback drives the lifecycle of an inline playback session from
// the notifications of a player engine.
package playback

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/llehouerou/vidpeek/internal/player"
)

// ErrInvalidTransition is returned when an operation is not allowed from
// the current state.
var ErrInvalidTransition = errors.New("invalid transition")

// Controller owns the state machine of one session. Mutating methods must
// be called from a single goroutine; State and Session may be read from
// any goroutine.
type Controller struct {
	mu sync.RWMutex

	engine   player.Interface
	controls Controls
	errors   ErrorHandler
	logger   zerolog.Logger

	state      State
	session    Session
	generation uint64
	path       string

	subs   []*Subscription
	subsMu sync.RWMutex
	closed bool
}

// New creates a controller driving engine. controls may be nil.
func New(engine player.Interface, controls Controls, logger zerolog.Logger) *Controller {
	if controls == nil {
		controls = nopControls{}
	}
	return &Controller{
		engine:   engine,
		controls: controls,
		logger:   logger,
		state:    StateUninitialized,
	}
}

// SetErrorHandler registers the handler errored events are delegated to.
func (c *Controller) SetErrorHandler(h ErrorHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = h
}

// Restore seeds the session from saved state. It must run before Load so
// that the prepared cycle seeks to the restored position.
func (c *Controller) Restore(s Session) {
	c.SetDesired(s.PositionMillis, s.Autoplay)
}

// SetDesired records the position and autoplay flag the next prepared
// cycle applies. The current engine is left untouched.
func (c *Controller) SetDesired(positionMillis int, autoplay bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.PositionMillis = max(positionMillis, 0)
	c.session.Autoplay = autoplay
}

// Load asks the engine to prepare path.
func (c *Controller) Load(path string) error {
	c.mu.Lock()
	if !c.state.CanLoad() {
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("load from %v: %w", state, ErrInvalidTransition)
	}
	c.generation++
	c.path = path
	c.session.IsPrepared = false
	c.session.IsPlaying = false
	gen := c.generation
	change := c.setStateLocked(StatePreparing)
	c.engine.Prepare(path, gen)
	c.mu.Unlock()

	c.logger.Debug().Str("path", path).Uint64("generation", gen).Msg("loading")
	c.notify(change)
	return nil
}

// Dispatch applies an engine event. Events from a previous generation, or
// arriving after Stop, are dropped. It reports whether the event applied.
func (c *Controller) Dispatch(e player.Event) bool {
	c.mu.RLock()
	stale := c.state == StateUninitialized || e.Token != c.generation
	c.mu.RUnlock()

	if stale {
		c.logger.Debug().
			Stringer("kind", e.Kind).
			Uint64("token", e.Token).
			Msg("dropping stale playback event")
		return false
	}

	switch e.Kind {
	case player.EventPrepared:
		return c.prepared()
	case player.EventCompleted:
		return c.completed()
	case player.EventError:
		return c.errored(e.Code, e.Extra)
	default:
		c.logger.Warn().Int("kind", int(e.Kind)).Msg("unknown playback event")
		return false
	}
}

// Complete synthesizes a completion for generation. It is dropped like
// any engine event once another source was loaded or the engine stopped.
func (c *Controller) Complete(generation uint64) bool {
	return c.Dispatch(player.CompletedEvent(generation))
}

func (c *Controller) prepared() bool {
	c.mu.Lock()
	if c.state != StatePreparing {
		state := c.state
		c.mu.Unlock()
		c.logger.Debug().Stringer("state", state).Msg("ignoring prepared")
		return false
	}

	changes := []StateChange{c.setStateLocked(StateReady)}
	c.engine.SeekTo(c.session.PositionMillis)
	if c.session.Autoplay {
		c.engine.Start()
		changes = append(changes, c.setStateLocked(StatePlaying))
	}
	c.session.IsPrepared = true
	c.session.IsPlaying = c.session.Autoplay
	playing := c.session.IsPlaying
	pos := c.session.PositionMillis
	c.mu.Unlock()

	c.logger.Debug().Int("position", pos).Bool("autoplay", playing).Msg("prepared")
	c.controls.SetEnabled(true)
	c.controls.Refresh(playing)
	c.notify(changes...)
	return true
}

func (c *Controller) completed() bool {
	c.mu.Lock()
	if c.state == StateCompleted {
		c.mu.Unlock()
		c.controls.Refresh(false)
		return true
	}
	if !c.state.canComplete() {
		state := c.state
		c.mu.Unlock()
		c.logger.Debug().Stringer("state", state).Msg("ignoring completed")
		return false
	}

	if c.engine.IsPlaying() {
		c.engine.Pause()
	}
	c.engine.SeekTo(0)
	c.session.PositionMillis = 0
	c.session.IsPlaying = false
	change := c.setStateLocked(StateCompleted)
	c.mu.Unlock()

	c.logger.Debug().Msg("completed")
	c.controls.Refresh(false)
	c.notify(change)
	return true
}

func (c *Controller) errored(code, extra int) bool {
	c.mu.Lock()
	if !c.state.IsActive() {
		state := c.state
		c.mu.Unlock()
		c.logger.Debug().Stringer("state", state).Int("code", code).Msg("ignoring error")
		return false
	}
	c.session.IsPlaying = false
	change := c.setStateLocked(StateError)
	handler := c.errors
	path := c.path
	c.mu.Unlock()

	c.logger.Error().Str("path", path).Int("code", code).Int("extra", extra).Msg("playback error")
	c.notify(change)
	c.broadcastError(ErrorEvent{Path: path, Code: code, Extra: extra})
	if handler != nil {
		handler.Present(code, extra)
	}
	return true
}

// Stop releases the engine and returns to StateUninitialized. Any event
// still in flight for the released source is dropped.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.state == StateUninitialized {
		c.mu.Unlock()
		return
	}
	c.engine.Release()
	c.generation++
	c.session.IsPrepared = false
	c.session.IsPlaying = false
	change := c.setStateLocked(StateUninitialized)
	c.mu.Unlock()

	c.controls.SetEnabled(false)
	c.notify(change)
}

// Play starts or resumes a prepared source.
func (c *Controller) Play() error {
	c.mu.Lock()
	switch c.state {
	case StateReady, StatePaused, StateCompleted:
	default:
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("play from %v: %w", state, ErrInvalidTransition)
	}
	c.engine.Start()
	change := c.setStateLocked(StatePlaying)
	c.mu.Unlock()

	c.controls.Refresh(true)
	c.notify(change)
	return nil
}

// Pause pauses a playing source.
func (c *Controller) Pause() error {
	c.mu.Lock()
	if c.state != StatePlaying {
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("pause from %v: %w", state, ErrInvalidTransition)
	}
	c.engine.Pause()
	change := c.setStateLocked(StatePaused)
	c.mu.Unlock()

	c.controls.Refresh(false)
	c.notify(change)
	return nil
}

// SeekTo moves a prepared source to positionMillis, clamped to the
// duration. Seeking a completed source leaves it paused there.
func (c *Controller) SeekTo(positionMillis int) error {
	c.mu.Lock()
	var changes []StateChange
	switch c.state {
	case StateReady, StatePlaying, StatePaused:
	case StateCompleted:
		changes = append(changes, c.setStateLocked(StatePaused))
	default:
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("seek from %v: %w", state, ErrInvalidTransition)
	}
	pos := max(positionMillis, 0)
	if d := c.engine.Duration(); d > 0 {
		pos = min(pos, d)
	}
	c.engine.SeekTo(pos)
	c.mu.Unlock()

	c.notify(changes...)
	return nil
}

// Toggle switches between playing and paused.
func (c *Controller) Toggle() error {
	if c.State() == StatePlaying {
		return c.Pause()
	}
	return c.Play()
}

// Suspend pauses playback if it is running. The engine keeps its source.
func (c *Controller) Suspend() {
	if c.State() == StatePlaying {
		_ = c.Pause()
	}
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Generation returns the token of the current source.
func (c *Controller) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// Path returns the path of the last loaded source.
func (c *Controller) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.path
}

// Session returns the session. Once prepared, position and playing flag
// are read from the engine.
func (c *Controller) Session() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.session
	if s.IsPrepared {
		s.PositionMillis = c.engine.CurrentPosition()
		s.IsPlaying = c.engine.IsPlaying()
	}
	return s
}

// Desired returns the position and autoplay flag the next prepared cycle
// will apply.
func (c *Controller) Desired() (positionMillis int, autoplay bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session.PositionMillis, c.session.Autoplay
}

// Position returns the engine position in milliseconds.
func (c *Controller) Position() int {
	return c.engine.CurrentPosition()
}

// Duration returns the engine duration in milliseconds.
func (c *Controller) Duration() int {
	return c.engine.Duration()
}

// IsPlaying reports whether the engine is playing.
func (c *Controller) IsPlaying() bool {
	return c.engine.IsPlaying()
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	if c.closed {
		sub.close()
		return sub
	}
	c.subs = append(c.subs, sub)
	return sub
}

// Unsubscribe removes sub and closes its Done channel. Unknown or already
// removed subscriptions are ignored.
func (c *Controller) Unsubscribe(sub *Subscription) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			sub.close()
			return
		}
	}
}

// Close releases the engine and closes all subscriptions.
func (c *Controller) Close() error {
	c.Stop()

	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	return nil
}

func (c *Controller) setStateLocked(next State) StateChange {
	change := StateChange{Previous: c.state, Current: next}
	c.state = next
	return change
}

func (c *Controller) notify(changes ...StateChange) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, change := range changes {
		if change.Previous == change.Current {
			continue
		}
		for _, sub := range c.subs {
			sub.sendState(change)
		}
	}
}

func (c *Controller) broadcastError(e ErrorEvent) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendError(e)
	}
}
