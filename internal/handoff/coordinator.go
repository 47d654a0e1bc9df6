package handoff

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/llehouerou/vidpeek/internal/media"
)

// Target is the inline playback side of a handoff.
type Target interface {
	Position() int
	IsPlaying() bool
	Suspend()
	SetDesired(positionMillis int, autoplay bool)
}

// Coordinator starts full-screen handoffs from pointer events and merges
// their results back. Triggers are not debounced: two qualifying
// pointer-downs in a row open two viewers. InFlight exposes the overlap.
type Coordinator struct {
	viewer Viewer
	target Target
	logger zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	responses chan Response
	inFlight  atomic.Int32
}

// NewCoordinator creates a coordinator handing target over to viewer.
func NewCoordinator(viewer Viewer, target Target, logger zerolog.Logger) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		viewer:    viewer,
		target:    target,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		responses: make(chan Response),
	}
}

// Responses carries viewer results. The owner reads it and passes each
// value to Complete.
func (c *Coordinator) Responses() <-chan Response {
	return c.responses
}

// HandlePointer starts a handoff for a pointer-down beyond the edge margin.
// It consumes every pointer-down and ignores other phases.
func (c *Coordinator) HandlePointer(ev PointerEvent, item media.Item, account media.Account) bool {
	if ev.Action != PointerDown {
		return false
	}
	if ev.Triggers() {
		c.Start(item, account)
	}
	return true
}

// Start suspends inline playback and opens the viewer with the live
// position and playing state.
func (c *Coordinator) Start(item media.Item, account media.Account) Request {
	req := Request{
		PositionMillis: c.target.Position(),
		Autoplay:       c.target.IsPlaying(),
	}
	c.target.Suspend()

	l := Launch{
		ID:      uuid.NewString(),
		Path:    item.Path,
		Account: account.Name,
		Request: req,
	}

	if n := c.inFlight.Add(1); n > 1 {
		c.logger.Warn().Int32("in_flight", n).Str("launch", l.ID).Msg("overlapping full-screen handoff")
	}
	c.logger.Info().
		Str("launch", l.ID).
		Str("path", l.Path).
		Int("position", req.PositionMillis).
		Bool("autoplay", req.Autoplay).
		Msg("entering full screen")

	c.wg.Add(1)
	go c.run(l)
	return req
}

func (c *Coordinator) run(l Launch) {
	defer c.wg.Done()

	res, err := c.viewer.Open(c.ctx, l)
	resp := responseFor(l, res, err)
	// The viewer is closed once its response is readable.
	c.inFlight.Add(-1)

	select {
	case c.responses <- resp:
	case <-c.ctx.Done():
	}
}

// Complete merges a response. Only a successful full-screen response
// updates the state used by the next prepared cycle; playback is not
// resumed here. It reports whether the state was updated.
func (c *Coordinator) Complete(resp Response) bool {
	log := c.logger.Info().Str("launch", resp.LaunchID).Stringer("outcome", resp.Outcome)
	if resp.Err != nil {
		log = c.logger.Warn().Err(resp.Err).Str("launch", resp.LaunchID).Stringer("outcome", resp.Outcome)
	}
	log.Msg("left full screen")

	if resp.RequestID != FullscreenRequestID || resp.Outcome != OutcomeOK {
		return false
	}
	c.target.SetDesired(resp.Result.PositionMillis, resp.Result.IsPlaying)
	return true
}

// InFlight returns the number of viewers still open.
func (c *Coordinator) InFlight() int {
	return int(c.inFlight.Load())
}

// Close cancels open viewers and waits for them to return.
func (c *Coordinator) Close() {
	c.cancel()
	c.wg.Wait()
}
