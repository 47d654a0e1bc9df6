package playback

// Session is the playback state of one inline preview. PositionMillis and
// Autoplay are the values the next prepared cycle applies; once prepared,
// Controller.Session reports what the engine observes.
type Session struct {
	PositionMillis int
	IsPlaying      bool
	IsPrepared     bool
	Autoplay       bool
}

// Controls is the on-screen playback control surface.
type Controls interface {
	SetEnabled(enabled bool)
	Refresh(playing bool)
}

// ErrorHandler is told about engine errors once the session has moved to
// StateError.
type ErrorHandler interface {
	Present(code, extra int)
}

type nopControls struct{}

func (nopControls) SetEnabled(bool) {}
func (nopControls) Refresh(bool)    {}
