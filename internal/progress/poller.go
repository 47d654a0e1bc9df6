package progress

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultPollInterval is used when a Poller is created with a zero interval.
const DefaultPollInterval = time.Second

// ErrClosed is returned by Listen after Close.
var ErrClosed = errors.New("poller closed")

// Checker answers whether a file of an account is being transferred.
type Checker interface {
	InProgress(account, path string) (bool, error)
}

// Poller is a Source that polls a Checker for each listener and reports
// status changes. The first poll always reports.
type Poller struct {
	checker  Checker
	interval time.Duration
	logger   zerolog.Logger

	mu     sync.Mutex
	stops  map[uint64]chan struct{}
	nextID uint64
	closed bool
	wg     sync.WaitGroup
}

// NewPoller creates a poller on checker.
func NewPoller(checker Checker, interval time.Duration, logger zerolog.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		checker:  checker,
		interval: interval,
		logger:   logger,
		stops:    make(map[uint64]chan struct{}),
	}
}

// Listen starts polling key until stop is called.
func (p *Poller) Listen(key Key, sink func(Status)) (func(), error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrClosed
	}

	p.nextID++
	id := p.nextID
	quit := make(chan struct{})
	p.stops[id] = quit

	p.wg.Add(1)
	go p.run(key, sink, quit)

	return func() { p.remove(id) }, nil
}

// Listeners returns the number of running listeners.
func (p *Poller) Listeners() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.stops)
}

func (p *Poller) remove(id uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if quit, ok := p.stops[id]; ok {
		close(quit)
		delete(p.stops, id)
	}
}

func (p *Poller) run(key Key, sink func(Status), quit <-chan struct{}) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	last := Status(-1)
	for {
		busy, err := p.checker.InProgress(key.Account, key.Path)
		if err != nil {
			p.logger.Warn().Err(err).Stringer("key", key).Msg("transfer status poll failed")
		} else {
			status := StatusIdle
			if busy {
				status = StatusInProgress
			}
			if status != last {
				last = status
				sink(status)
			}
		}

		select {
		case <-quit:
			return
		case <-ticker.C:
		}
	}
}

// Close stops every listener and waits for them to exit.
func (p *Poller) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	for id, quit := range p.stops {
		close(quit)
		delete(p.stops, id)
	}
	p.mu.Unlock()

	p.wg.Wait()
	return nil
}
