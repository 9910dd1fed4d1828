package snake

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// defaultDrainTimeout bounds how long Close waits for an in-flight report
// before cancelling it.
const defaultDrainTimeout = 5 * time.Second

// Controller owns a game session and its lifecycle:
//
//	ready -> playing        Start
//	game over -> playing    Start (full reset)
//	playing <-> paused      TogglePause
//	playing -> game over    collision during a tick
//
// Every other call is a no-op. Ticks, input and lifecycle calls are
// serialised by one mutex, so at most one step is ever in flight.
type Controller struct {
	cfg      Config
	rng      Rand
	clock    Clock
	sched    Scheduler
	reporter Reporter
	logger   *log.Logger
	player   string
	newID    func() string
	drain    time.Duration

	mu      sync.Mutex
	session Session
	input   *InputBuffer
	play    playClock
	epoch   uint64 // Bumped whenever pending ticks must be ignored
	seq     uint64
	closed  bool
	result  *Result
	report  ReportStatus
	notice  string

	pubMu     sync.Mutex
	updates   chan Snapshot
	lastSeq   uint64
	pubClosed bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option configures a Controller.
type Option func(*Controller)

// WithReporter sets where finished games are reported.
func WithReporter(r Reporter) Option {
	return func(c *Controller) { c.reporter = r }
}

// WithRand sets the food placement source.
func WithRand(r Rand) Option {
	return func(c *Controller) { c.rng = r }
}

// WithSeed seeds the default food placement source.
func WithSeed(seed int64) Option {
	return func(c *Controller) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithClock sets the time source used for play time.
func WithClock(clk Clock) Option {
	return func(c *Controller) { c.clock = clk }
}

// WithScheduler replaces the wall-clock tick scheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithPlayerName sets the name recorded in results.
func WithPlayerName(name string) Option {
	return func(c *Controller) {
		if name != "" {
			c.player = name
		}
	}
}

// WithIDGenerator replaces the game id generator.
func WithIDGenerator(fn func() string) Option {
	return func(c *Controller) { c.newID = fn }
}

// WithDrainTimeout sets how long Close waits for a pending report.
func WithDrainTimeout(d time.Duration) Option {
	return func(c *Controller) { c.drain = d }
}

// New validates cfg and returns a Controller holding a READY session.
func New(cfg Config, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		clock:   systemClock{},
		sched:   NewTimerScheduler(),
		logger:  log.New(io.Discard),
		player:  DefaultPlayerName,
		newID:   uuid.NewString,
		drain:   defaultDrainTimeout,
		updates: make(chan Snapshot, 1),
		report:  ReportNone,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.play.clock = c.clock
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.session = NewSession(cfg, c.rng)
	c.input = NewInputBuffer(c.session.Direction)

	return c, nil
}

// Config returns the constants the controller was built with.
func (c *Controller) Config() Config {
	return c.cfg
}

// Updates delivers a snapshot after every tick, lifecycle transition and
// report completion. Only the newest undelivered snapshot is kept. The
// channel is closed by Close.
func (c *Controller) Updates() <-chan Snapshot {
	return c.updates
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.State
}

// Start begins a new game from READY or GAME_OVER. The session is rebuilt
// from scratch, so nothing carries over from a previous game.
func (c *Controller) Start() {
	c.mu.Lock()
	if c.closed || c.session.State == StatePlaying || c.session.State == StatePaused {
		c.mu.Unlock()
		return
	}

	c.session = NewSession(c.cfg, c.rng)
	c.input.Reset(c.session.Direction)
	c.session.State = StatePlaying
	c.session.StartedAt = c.clock.Now()
	c.session.GameID = c.newID()
	c.play.start()
	c.result = nil
	c.report = ReportNone
	c.notice = ""
	c.armLocked()

	id, interval := c.session.GameID, c.session.Interval
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Info("game started", "game", id, "player", c.player, "board", c.cfg.BoardSize, "interval", interval)
	c.publish(snap)
}

// TogglePause switches between PLAYING and PAUSED. While paused no tick
// fires and play time does not advance; resuming re-arms the scheduler at
// the interval in effect when the game was paused.
func (c *Controller) TogglePause() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	switch c.session.State {
	case StatePlaying:
		c.session.State = StatePaused
		c.epoch++
		c.sched.Stop()
		c.play.pause()
	case StatePaused:
		c.session.State = StatePlaying
		c.play.resume()
		c.armLocked()
	default:
		c.mu.Unlock()
		return
	}

	state := c.session.State
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("pause toggled", "state", state)
	c.publish(snap)
}

// Submit buffers a direction for the next tick. Input outside PLAYING and
// reversals are ignored; the return value reports whether d was buffered.
func (c *Controller) Submit(d Direction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.session.State != StatePlaying {
		return false
	}
	return c.input.Submit(d)
}

// Close stops the scheduler and waits for a pending report. No tick runs
// after Close returns. A game still in progress is abandoned unreported.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.epoch++
	c.sched.Stop()
	c.play.pause()
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(c.drain):
		c.logger.Warn("cancelling pending score report", "timeout", c.drain)
		c.cancel()
		<-done
	}
	c.cancel()

	c.pubMu.Lock()
	c.pubClosed = true
	close(c.updates)
	c.pubMu.Unlock()

	return nil
}

// armLocked schedules the next tick at the current interval. Ticks armed
// under an older epoch are ignored when they fire.
func (c *Controller) armLocked() {
	c.epoch++
	epoch := c.epoch
	c.sched.Arm(c.session.Interval, func() { c.tick(epoch) })
}

// tick runs one simulation step.
func (c *Controller) tick(epoch uint64) {
	c.mu.Lock()
	if c.closed || epoch != c.epoch || c.session.State != StatePlaying {
		c.mu.Unlock()
		return
	}

	prev := c.session
	dir := c.input.Consume()
	next, outcome := Step(prev, dir, c.cfg, c.rng)
	c.session = next

	var result *Result
	if outcome.Collided() {
		c.epoch++
		c.play.pause()
		r := c.resultLocked(prev, outcome)
		result = &r
		c.result = result
		if c.reporter != nil {
			c.report = ReportPending
			c.wg.Add(1)
			go c.deliver(r)
		}
	} else {
		c.armLocked()
	}

	snap := c.snapshotLocked()
	c.mu.Unlock()

	switch {
	case result != nil:
		c.logger.Info("game over",
			"game", result.GameID,
			"cause", result.Cause,
			"score", result.Score,
			"length", result.SnakeLength,
			"duration", result.DurationSeconds,
		)
	case outcome == OutcomeAte:
		c.logger.Debug("food eaten", "score", next.Score, "length", next.Len())
		if next.Interval != prev.Interval {
			c.logger.Debug("speed up", "interval", next.Interval)
		}
		if !next.HasFood {
			c.logger.Info("board full", "length", next.Len())
		}
	}

	c.publish(snap)
}

// resultLocked builds the Result for a game that ended on a step taken
// from prev.
func (c *Controller) resultLocked(prev Session, outcome Outcome) Result {
	cause := CauseWall
	if outcome == OutcomeSelf {
		cause = CauseSelf
	}
	return Result{
		GameID:          prev.GameID,
		PlayerName:      c.player,
		Score:           prev.Score,
		SnakeLength:     prev.Len(),
		DurationSeconds: int(c.play.elapsed() / time.Second),
		Cause:           cause,
		EndedAt:         c.clock.Now(),
	}
}

// deliver hands r to the reporter. The outcome only updates the report
// status shown to the player, and only while r's game is still current.
func (c *Controller) deliver(r Result) {
	defer c.wg.Done()

	err := c.reporter.Report(c.ctx, r)

	c.mu.Lock()
	if c.session.GameID != r.GameID {
		c.mu.Unlock()
		if err != nil {
			c.logger.Warn("score report failed", "game", r.GameID, "err", err)
		}
		return
	}
	if err != nil {
		c.report = ReportFailed
		c.notice = fmt.Sprintf("score not saved: %v", err)
	} else {
		c.report = ReportSaved
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("score report failed", "game", r.GameID, "err", err)
	} else {
		c.logger.Debug("score reported", "game", r.GameID)
	}
	c.publish(snap)
}

func (c *Controller) snapshotLocked() Snapshot {
	c.seq++
	s := c.session
	return Snapshot{
		Seq:       c.seq,
		BoardSize: c.cfg.BoardSize,
		Snake:     append([]Cell(nil), s.Snake...),
		Food:      s.Food,
		HasFood:   s.HasFood,
		Direction: s.Direction,
		Score:     s.Score,
		Interval:  s.Interval,
		State:     s.State,
		Ticks:     s.Ticks,
		PlayTime:  c.play.elapsed(),
		GameID:    s.GameID,
		Result:    c.result,
		Report:    c.report,
		Notice:    c.notice,
	}
}

// publish replaces whatever snapshot is waiting on the updates channel.
// Snapshots older than the last one published are dropped.
func (c *Controller) publish(s Snapshot) {
	c.pubMu.Lock()
	defer c.pubMu.Unlock()

	if c.pubClosed || s.Seq <= c.lastSeq {
		return
	}
	c.lastSeq = s.Seq

	select {
	case <-c.updates:
	default:
	}
	c.updates <- s
}
