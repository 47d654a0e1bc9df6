package handoff

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/vidpeek/internal/media"
)

type fakeTarget struct {
	position   int
	playing    bool
	suspends   int
	desiredPos int
	desiredAP  bool
	setCalls   int
}

func (f *fakeTarget) Position() int   { return f.position }
func (f *fakeTarget) IsPlaying() bool { return f.playing }
func (f *fakeTarget) Suspend() {
	f.suspends++
	f.playing = false
}

func (f *fakeTarget) SetDesired(pos int, autoplay bool) {
	f.setCalls++
	f.desiredPos = pos
	f.desiredAP = autoplay
}

// echoViewer returns the request it was launched with, after release is
// closed when set.
type echoViewer struct {
	launches chan Launch
	release  chan struct{}
	err      error
}

func newEchoViewer() *echoViewer {
	return &echoViewer{launches: make(chan Launch, 8)}
}

func (v *echoViewer) Open(ctx context.Context, l Launch) (Result, error) {
	v.launches <- l
	if v.release != nil {
		select {
		case <-v.release:
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}
	if v.err != nil {
		return Result{}, v.err
	}
	return Result{PositionMillis: l.Request.PositionMillis, IsPlaying: l.Request.Autoplay}, nil
}

var (
	clip  = media.Item{Path: "/data/clip.mp4", Downloaded: true, Kind: media.KindVideo}
	alice = media.Account{Name: "alice"}
)

func TestCoordinator_HandlePointer_BelowMarginConsumedWithoutHandoff(t *testing.T) {
	target := &fakeTarget{position: 1000, playing: true}
	viewer := newEchoViewer()
	c := NewCoordinator(viewer, target, zerolog.Nop())
	defer c.Close()

	consumed := c.HandlePointer(PointerEvent{Action: PointerDown, X: 20, Density: 1}, clip, alice)

	assert.True(t, consumed)
	assert.Equal(t, 0, target.suspends)
	assert.Equal(t, 0, c.InFlight())
	assert.Empty(t, viewer.launches)
}

func TestCoordinator_HandlePointer_IgnoresOtherPhases(t *testing.T) {
	target := &fakeTarget{}
	c := NewCoordinator(newEchoViewer(), target, zerolog.Nop())
	defer c.Close()

	for _, a := range []PointerAction{PointerMove, PointerUp, PointerCancel} {
		assert.False(t, c.HandlePointer(PointerEvent{Action: a, X: 500, Density: 1}, clip, alice))
	}
	assert.Equal(t, 0, target.suspends)
}

func TestCoordinator_TriggerOncePerPointerDown(t *testing.T) {
	target := &fakeTarget{position: 4200, playing: true}
	viewer := newEchoViewer()
	c := NewCoordinator(viewer, target, zerolog.Nop())
	defer c.Close()

	consumed := c.HandlePointer(PointerEvent{Action: PointerDown, X: 100, Density: 2}, clip, alice)
	require.True(t, consumed)

	l := <-viewer.launches
	assert.Equal(t, Request{PositionMillis: 4200, Autoplay: true}, l.Request)
	assert.Equal(t, "/data/clip.mp4", l.Path)
	assert.Equal(t, "alice", l.Account)
	assert.NotEmpty(t, l.ID)
	assert.Equal(t, 1, target.suspends)

	resp := <-c.Responses()
	assert.Empty(t, viewer.launches, "one pointer-down must open one viewer")
	assert.Equal(t, OutcomeOK, resp.Outcome)
	assert.Equal(t, FullscreenRequestID, resp.RequestID)
	assert.Equal(t, l.ID, resp.LaunchID)
}

func TestCoordinator_RoundTripPreservesState(t *testing.T) {
	for _, playing := range []bool{true, false} {
		target := &fakeTarget{position: 31_337, playing: playing}
		c := NewCoordinator(newEchoViewer(), target, zerolog.Nop())

		req := c.Start(clip, alice)
		resp := <-c.Responses()

		require.True(t, c.Complete(resp))
		assert.Equal(t, req.PositionMillis, target.desiredPos)
		assert.Equal(t, req.Autoplay, target.desiredAP)
		c.Close()
	}
}

func TestCoordinator_Complete_OnlySuccessUpdates(t *testing.T) {
	tests := []struct {
		name string
		resp Response
	}{
		{"canceled", Response{RequestID: FullscreenRequestID, Outcome: OutcomeCanceled, Result: Result{PositionMillis: 9}}},
		{"failed", Response{RequestID: FullscreenRequestID, Outcome: OutcomeFailed, Err: errors.New("exit status 2")}},
		{"other request", Response{RequestID: "share", Outcome: OutcomeOK, Result: Result{PositionMillis: 9}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &fakeTarget{}
			c := NewCoordinator(newEchoViewer(), target, zerolog.Nop())
			defer c.Close()

			assert.False(t, c.Complete(tt.resp))
			assert.Equal(t, 0, target.setCalls)
		})
	}
}

func TestCoordinator_Complete_DoesNotResume(t *testing.T) {
	target := &fakeTarget{position: 500, playing: true}
	c := NewCoordinator(newEchoViewer(), target, zerolog.Nop())
	defer c.Close()

	c.Start(clip, alice)
	c.Complete(<-c.Responses())

	assert.False(t, target.playing, "inline playback must stay suspended")
	assert.True(t, target.desiredAP)
}

func TestCoordinator_ViewerErrors(t *testing.T) {
	tests := []struct {
		err  error
		want Outcome
	}{
		{ErrCanceled, OutcomeCanceled},
		{context.Canceled, OutcomeCanceled},
		{errors.New("no candidate players found"), OutcomeFailed},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			viewer := newEchoViewer()
			viewer.err = tt.err
			c := NewCoordinator(viewer, &fakeTarget{}, zerolog.Nop())
			defer c.Close()

			c.Start(clip, alice)
			resp := <-c.Responses()

			assert.Equal(t, tt.want, resp.Outcome)
			assert.ErrorIs(t, resp.Err, tt.err)
		})
	}
}

func TestCoordinator_NoDebounce_OverlappingHandoffs(t *testing.T) {
	viewer := newEchoViewer()
	viewer.release = make(chan struct{})
	c := NewCoordinator(viewer, &fakeTarget{position: 10, playing: true}, zerolog.Nop())
	defer c.Close()

	down := PointerEvent{Action: PointerDown, X: 200, Density: 1}
	c.HandlePointer(down, clip, alice)
	c.HandlePointer(down, clip, alice)

	first := <-viewer.launches
	second := <-viewer.launches
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, c.InFlight())

	close(viewer.release)
	<-c.Responses()
	<-c.Responses()
	assert.Equal(t, 0, c.InFlight(), "in-flight count drops before the response is delivered")
}

func TestCoordinator_CloseCancelsOpenViewer(t *testing.T) {
	viewer := newEchoViewer()
	viewer.release = make(chan struct{})
	c := NewCoordinator(viewer, &fakeTarget{}, zerolog.Nop())

	c.Start(clip, alice)
	<-viewer.launches

	c.Close()

	assert.Equal(t, 0, c.InFlight())
}
