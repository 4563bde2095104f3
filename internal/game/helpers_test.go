package game

import (
	"sync/atomic"
	"time"
)

var t0 = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

// startedRound returns a running round whose countdown began at t0+ArmDelay.
func startedRound(s Settings) (*Round, time.Time) {
	r := NewRound(1, s)
	if err := r.Arm(t0); err != nil {
		panic(err)
	}
	start := t0.Add(s.ArmDelay)
	r.Advance(start)
	return r, start
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

type fakeTicker struct {
	ch    chan time.Time
	stops atomic.Int32
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               { f.stops.Add(1) }

type fakeClock struct {
	now    time.Time
	ticker *fakeTicker
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now, ticker: &fakeTicker{ch: make(chan time.Time)}}
}

func (c *fakeClock) Now() time.Time                 { return c.now }
func (c *fakeClock) NewTicker(time.Duration) Ticker { return c.ticker }
