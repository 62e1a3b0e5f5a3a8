// Package throttle rate-limits the live recomputation channel. It is a
// synchronous allow/drop gate, not a scheduler: a call either passes
// because the minimum interval has elapsed or is dropped. The clock is
// injectable so tests never sleep.
package throttle

import "time"

// Clock supplies the current time.
type Clock func() time.Time

// Gate admits at most one call per interval.
type Gate struct {
	interval time.Duration
	now      Clock
	last     time.Time
}

// Option configures a Gate.
type Option func(*Gate)

// WithClock replaces the wall clock, for tests.
func WithClock(c Clock) Option {
	return func(g *Gate) { g.now = c }
}

// New builds a gate with the given minimum interval between admissions.
func New(interval time.Duration, opts ...Option) *Gate {
	g := &Gate{interval: interval, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Allow reports whether a call may pass now, recording the admission time
// when it does. The first call always passes.
func (g *Gate) Allow() bool {
	now := g.now()
	if !g.last.IsZero() && now.Sub(g.last) < g.interval {
		return false
	}
	g.last = now
	return true
}

// Reset forgets the last admission so the next call passes immediately.
func (g *Gate) Reset() {
	g.last = time.Time{}
}
