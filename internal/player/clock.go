package player

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const eventBufferSize = 16

// Prober reports the playable duration of a media file.
type Prober interface {
	Probe(ctx context.Context, path string) (time.Duration, error)
}

// Clock is an engine that keeps the playback position of a probed source
// against wall time. It does not render frames; it provides the timing
// and notifications the preview lifecycle reacts to.
type Clock struct {
	mu sync.Mutex

	prober Prober
	logger zerolog.Logger

	state    State
	token    uint64
	path     string
	duration time.Duration

	offset    time.Duration // position at startedAt, or current position when not running
	startedAt time.Time
	timer     *time.Timer
	cancel    context.CancelFunc

	events chan Event
}

// NewClock creates an engine that probes sources with prober.
func NewClock(prober Prober, logger zerolog.Logger) *Clock {
	return &Clock{
		prober: prober,
		logger: logger,
		state:  Idle,
		events: make(chan Event, eventBufferSize),
	}
}

// Events returns the notification channel. It is never closed.
func (c *Clock) Events() <-chan Event {
	return c.events
}

// Prepare discards the current source and starts probing path.
func (c *Clock) Prepare(path string, token uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetLocked()
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.state = Preparing
	c.token = token
	c.path = path

	go c.probe(ctx, path, token)
}

func (c *Clock) probe(ctx context.Context, path string, token uint64) {
	d, err := c.prober.Probe(ctx, path)

	c.mu.Lock()
	defer c.mu.Unlock()

	if ctx.Err() != nil || c.token != token || c.state != Preparing {
		return
	}
	if err != nil {
		code, extra := Codes(err)
		c.logger.Error().Err(err).Str("path", path).Msg("prepare failed")
		c.state = Errored
		c.emitLocked(ErrorEvent(token, code, extra))
		return
	}

	c.duration = d
	c.state = Prepared
	c.logger.Debug().Str("path", path).Dur("duration", d).Msg("prepared")
	c.emitLocked(PreparedEvent(token))
}

// Start begins or resumes playback.
func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.CanStart() {
		return
	}
	if c.offset >= c.duration {
		c.offset = 0
	}
	c.state = Started
	c.startedAt = time.Now()
	c.armLocked()
}

// Pause freezes the position.
func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.CanPause() {
		return
	}
	c.offset = c.positionLocked()
	c.stopTimerLocked()
	c.state = Paused
}

// SeekTo moves to positionMillis, clamped to the source duration.
func (c *Clock) SeekTo(positionMillis int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.IsPrepared() {
		return
	}
	pos := max(time.Duration(positionMillis)*time.Millisecond, 0)
	c.offset = min(pos, c.duration)
	if c.state == Started {
		c.startedAt = time.Now()
		c.armLocked()
	}
}

// CurrentPosition returns the position in milliseconds.
func (c *Clock) CurrentPosition() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int(c.positionLocked().Milliseconds())
}

// Duration returns the probed duration in milliseconds.
func (c *Clock) Duration() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int(c.duration.Milliseconds())
}

// IsPlaying reports whether the position is advancing.
func (c *Clock) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == Started
}

// State returns the engine state.
func (c *Clock) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Release drops the source. Pending probes and completions are discarded.
func (c *Clock) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

func (c *Clock) resetLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.stopTimerLocked()
	c.state = Idle
	c.path = ""
	c.duration = 0
	c.offset = 0
}

func (c *Clock) positionLocked() time.Duration {
	if c.state != Started {
		return c.offset
	}
	return min(c.offset+time.Since(c.startedAt), c.duration)
}

func (c *Clock) armLocked() {
	c.stopTimerLocked()
	token := c.token
	c.timer = time.AfterFunc(c.duration-c.offset, func() {
		c.finish(token)
	})
}

func (c *Clock) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Clock) finish(token uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != token || c.state != Started {
		return
	}
	c.offset = c.duration
	c.timer = nil
	c.state = Completed
	c.emitLocked(CompletedEvent(token))
}

func (c *Clock) emitLocked(e Event) {
	select {
	case c.events <- e:
	default:
		c.logger.Warn().Stringer("kind", e.Kind).Msg("event buffer full, dropping")
	}
}
