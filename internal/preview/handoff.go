package preview

import (
	"github.com/llehouerou/vidpeek/internal/handoff"
)

// handoffTarget exposes the playback side to the coordinator.
type handoffTarget struct{ p *Preview }

// Position is the live engine position once prepared, else the position
// the next prepared cycle would seek to.
func (t handoffTarget) Position() int {
	c := t.p.controller
	if c.Session().IsPrepared {
		return c.Position()
	}
	pos, _ := c.Desired()
	return pos
}

func (t handoffTarget) IsPlaying() bool {
	return t.p.controller.IsPlaying()
}

// Suspend hands the source over: the inline engine is released while the
// full-screen viewer plays.
func (t handoffTarget) Suspend() {
	t.p.controller.Stop()
}

func (t handoffTarget) SetDesired(positionMillis int, autoplay bool) {
	t.p.controller.SetDesired(positionMillis, autoplay)
}

// HandlePointer routes a pointer event of the video surface. Every
// pointer-down is consumed; one right of the edge margin enters full
// screen.
func (p *Preview) HandlePointer(ev handoff.PointerEvent) bool {
	return p.coordinator.HandlePointer(ev, p.item, p.account)
}

// EnterFullscreen starts a handoff without a pointer event.
func (p *Preview) EnterFullscreen() handoff.Request {
	return p.coordinator.Start(p.item, p.account)
}

// OnHandoffResponse merges a full-screen response and, once no viewer is
// left open, loads the video again. Playback only resumes if the response
// asked for it through autoplay. It reports whether the response updated
// the session.
func (p *Preview) OnHandoffResponse(resp handoff.Response) (bool, error) {
	applied := p.coordinator.Complete(resp)
	if p.coordinator.InFlight() > 0 {
		return applied, nil
	}
	return applied, p.Reload()
}
