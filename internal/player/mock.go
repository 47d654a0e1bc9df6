package player

// Mock is a test double for an engine. Prepare never completes on its own;
// tests drive it with SimulatePrepared, SimulateCompleted and SimulateError.
type Mock struct {
	state     State
	position  int
	duration  int
	token     uint64
	path      string
	events    chan Event
	prepares  []string
	seekCalls []int
	starts    int
	pauses    int
	releases  int
}

// NewMock creates a new mock engine for testing.
func NewMock() *Mock {
	return &Mock{
		state:    Idle,
		duration: 60_000,
		events:   make(chan Event, eventBufferSize),
	}
}

func (m *Mock) Prepare(path string, token uint64) {
	m.prepares = append(m.prepares, path)
	m.path = path
	m.token = token
	m.position = 0
	m.state = Preparing
}

func (m *Mock) Start() {
	m.starts++
	if m.state.CanStart() {
		m.state = Started
	}
}

func (m *Mock) Pause() {
	m.pauses++
	if m.state == Started {
		m.state = Paused
	}
}

func (m *Mock) SeekTo(positionMillis int) {
	m.seekCalls = append(m.seekCalls, positionMillis)
	m.position = min(max(positionMillis, 0), m.duration)
}

func (m *Mock) CurrentPosition() int { return m.position }

func (m *Mock) Duration() int { return m.duration }

func (m *Mock) IsPlaying() bool { return m.state == Started }

func (m *Mock) State() State { return m.state }

func (m *Mock) Release() {
	m.releases++
	m.state = Idle
	m.position = 0
	m.path = ""
}

func (m *Mock) Events() <-chan Event { return m.events }

// Test helpers

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetPosition(ms int) { m.position = ms }

func (m *Mock) SetDuration(ms int) { m.duration = ms }

func (m *Mock) Token() uint64 { return m.token }

func (m *Mock) Path() string { return m.path }

func (m *Mock) PrepareCalls() []string { return m.prepares }

func (m *Mock) SeekCalls() []int { return m.seekCalls }

func (m *Mock) StartCalls() int { return m.starts }

func (m *Mock) PauseCalls() int { return m.pauses }

func (m *Mock) ReleaseCalls() int { return m.releases }

// SimulatePrepared marks the source prepared and returns the event the
// engine would have emitted.
func (m *Mock) SimulatePrepared() Event {
	m.state = Prepared
	return m.emit(PreparedEvent(m.token))
}

// SimulateCompleted moves to the end of the source.
func (m *Mock) SimulateCompleted() Event {
	m.state = Completed
	m.position = m.duration
	return m.emit(CompletedEvent(m.token))
}

// SimulateError fails the source with (code, extra).
func (m *Mock) SimulateError(code, extra int) Event {
	m.state = Errored
	return m.emit(ErrorEvent(m.token, code, extra))
}

func (m *Mock) emit(e Event) Event {
	select {
	case m.events <- e:
	default:
	}
	return e
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
