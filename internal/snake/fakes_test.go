package snake

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// fakeClock is a Clock that only moves when told to.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// manualScheduler records the armed callback and runs it on demand.
type manualScheduler struct {
	mu       sync.Mutex
	fn       func()
	interval time.Duration
	arms     int
	stops    int
}

func (s *manualScheduler) Arm(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fn = fn
	s.interval = d
	s.arms++
}

func (s *manualScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fn = nil
	s.stops++
}

func (s *manualScheduler) Armed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fn != nil
}

func (s *manualScheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// Fire runs the pending callback, if any, and reports whether one ran.
func (s *manualScheduler) Fire() bool {
	s.mu.Lock()
	fn := s.fn
	s.fn = nil
	s.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// fixedRand always picks the same index, clamped to the range.
type fixedRand int

func (r fixedRand) Intn(n int) int {
	return min(int(r), n-1)
}

// recordingReporter stores every result it receives and returns err.
type recordingReporter struct {
	mu      sync.Mutex
	results []Result
	err     error
}

func (r *recordingReporter) Report(_ context.Context, res Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
	return r.err
}

func (r *recordingReporter) Results() []Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Result(nil), r.results...)
}

// sequentialIDs returns game-1, game-2, ...
func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return "game-" + strconv.Itoa(n)
	}
}
