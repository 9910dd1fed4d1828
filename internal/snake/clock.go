package snake

import (
	"sync"
	"time"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// playClock measures active play time. Spans between pause and resume are
// not counted.
type playClock struct {
	clock   Clock
	resumed time.Time // Start of the current running span
	played  time.Duration
	running bool
}

func (p *playClock) start() {
	p.played = 0
	p.resumed = p.clock.Now()
	p.running = true
}

func (p *playClock) pause() {
	if !p.running {
		return
	}
	p.played += p.clock.Now().Sub(p.resumed)
	p.running = false
}

func (p *playClock) resume() {
	if p.running {
		return
	}
	p.resumed = p.clock.Now()
	p.running = true
}

func (p *playClock) elapsed() time.Duration {
	d := p.played
	if p.running {
		d += p.clock.Now().Sub(p.resumed)
	}
	return d
}

// Scheduler runs a single callback after a delay.
// Arm replaces whatever callback is pending; Stop cancels it.
type Scheduler interface {
	Arm(d time.Duration, fn func())
	Stop()
}

// timerScheduler is a Scheduler backed by one re-armable time.AfterFunc.
// A callback that has already started cannot be recalled, so callers must
// still guard against late invocations.
type timerScheduler struct {
	mu    sync.Mutex
	timer *time.Timer
}

// NewTimerScheduler returns the wall-clock Scheduler used by default.
func NewTimerScheduler() Scheduler {
	return &timerScheduler{}
}

func (s *timerScheduler) Arm(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(d, fn)
}

func (s *timerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
