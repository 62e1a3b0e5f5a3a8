package throttle

import (
	"testing"
	"time"
)

func TestGateAllow(t *testing.T) {
	now := time.Unix(0, 0)
	g := New(16*time.Millisecond, WithClock(func() time.Time { return now }))

	if !g.Allow() {
		t.Fatal("first call must pass")
	}
	if g.Allow() {
		t.Fatal("second call inside the interval must be dropped")
	}

	now = now.Add(10 * time.Millisecond)
	if g.Allow() {
		t.Fatal("10ms later must still be dropped")
	}

	now = now.Add(6 * time.Millisecond)
	if !g.Allow() {
		t.Fatal("16ms after admission must pass")
	}
	if g.Allow() {
		t.Fatal("window restarts after each admission")
	}
}

func TestGateReset(t *testing.T) {
	now := time.Unix(0, 0)
	g := New(16*time.Millisecond, WithClock(func() time.Time { return now }))

	if !g.Allow() {
		t.Fatal("first call must pass")
	}
	g.Reset()
	if !g.Allow() {
		t.Fatal("call after reset must pass")
	}
}
