package run

import (
	"sort"
	"time"
)

// Clock abstracts monotonic time so the engine's delayed callbacks can be
// driven synchronously in tests instead of waiting on real time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production clock.
type SystemClock struct{}

// Now returns the wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a test clock advanced explicitly.
type ManualClock struct {
	Current time.Time
}

// NewManualClock starts a manual clock at an arbitrary fixed instant.
func NewManualClock() *ManualClock {
	return &ManualClock{Current: time.Unix(1_000_000, 0)}
}

// Now returns the manually set instant.
func (m *ManualClock) Now() time.Time { return m.Current }

// Advance moves the clock forward.
func (m *ManualClock) Advance(d time.Duration) { m.Current = m.Current.Add(d) }

// scheduledCall is one pending delayed callback.
type scheduledCall struct {
	id  int
	due time.Time
	fn  func()
}

// Scheduler is the engine-owned delayed-callback queue. Action completions
// and feedback auto-hides are scheduled here instead of on OS timers, so a
// level transition can cancel everything pending in one call and no stale
// callback can fire into the next level's state. Single-threaded: Fire is
// called from the game loop only.
type Scheduler struct {
	clock   Clock
	nextID  int
	pending []scheduledCall
}

// NewScheduler creates a scheduler on the given clock.
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// After schedules fn to run once d has elapsed, and returns a handle that
// can cancel it.
func (s *Scheduler) After(d time.Duration, fn func()) int {
	s.nextID++
	s.pending = append(s.pending, scheduledCall{
		id:  s.nextID,
		due: s.clock.Now().Add(d),
		fn:  fn,
	})
	return s.nextID
}

// Cancel drops a pending callback. Cancelling an unknown or already fired
// handle is a no-op.
func (s *Scheduler) Cancel(id int) {
	for i := range s.pending {
		if s.pending[i].id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// CancelAll drops every pending callback. Called from the run state's exit
// hook on every transition.
func (s *Scheduler) CancelAll() {
	s.pending = nil
}

// PendingCount reports how many callbacks are waiting.
func (s *Scheduler) PendingCount() int {
	return len(s.pending)
}

// Fire runs every callback whose deadline has passed, in deadline order.
// Callbacks may schedule further work; anything newly due is picked up on
// the next Fire, which keeps a single tick from looping forever.
func (s *Scheduler) Fire() {
	now := s.clock.Now()

	var due []scheduledCall
	var remaining []scheduledCall
	for _, call := range s.pending {
		if !call.due.After(now) {
			due = append(due, call)
		} else {
			remaining = append(remaining, call)
		}
	}
	s.pending = remaining

	sort.SliceStable(due, func(i, j int) bool { return due[i].due.Before(due[j].due) })
	for _, call := range due {
		call.fn()
	}
}
