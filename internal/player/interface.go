package player

// Interface is the playback engine a preview drives. Prepare is
// asynchronous: its outcome arrives on Events tagged with the token passed
// in, so callers can drop notifications from sources they no longer own.
type Interface interface {
	Prepare(path string, token uint64)
	Start()
	Pause()
	SeekTo(positionMillis int)
	CurrentPosition() int
	Duration() int
	IsPlaying() bool
	State() State
	Release()
	Events() <-chan Event
}

// Verify Clock implements Interface at compile time.
var _ Interface = (*Clock)(nil)
