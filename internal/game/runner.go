package game

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"intury/internal/logger"
)

// Clock abstracts wall time so rounds can be driven by fake tickers in tests.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers clock ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// SystemClock is the real clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// NewTicker wraps time.NewTicker.
func (SystemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{time.NewTicker(d)}
}

type systemTicker struct{ t *time.Ticker }

func (s systemTicker) C() <-chan time.Time { return s.t.C }
func (s systemTicker) Stop()               { s.t.Stop() }

// PressEvent is a button press as read from an input source. At is the
// moment the input arrived; a zero At is stamped with the clock on receipt.
type PressEvent struct {
	Player Player
	At     time.Time
}

// Runner drives a Round from a ticker and a stream of presses. All round
// mutation happens on the goroutine calling Run, in arrival order.
type Runner struct {
	clock Clock
	log   zerolog.Logger

	// OnTick, if set, observes the round after every tick.
	OnTick func(RoundState)

	// OnPress, if set, observes every accepted press.
	OnPress func(PlayerState)
}

// NewRunner creates a runner on the given clock. A nil clock means SystemClock.
func NewRunner(clock Clock) *Runner {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Runner{
		clock: clock,
		log:   logger.WithComponent("game-runner"),
	}
}

// Run arms the round if needed and drives it until it ends or ctx is done.
// The ticker is stopped exactly once, on the terminal transition or on return.
func (rn *Runner) Run(ctx context.Context, round *Round, presses <-chan PressEvent) (Result, error) {
	switch round.Phase() {
	case PhaseEnded:
		return Result{}, ErrRoundFinished
	case PhaseIdle:
		if err := round.Arm(rn.clock.Now()); err != nil {
			return Result{}, err
		}
	}

	ticker := rn.clock.NewTicker(round.Settings().TickInterval)
	stop := sync.OnceFunc(ticker.Stop)
	defer stop()
	round.OnEnd(stop)

	for round.Phase() != PhaseEnded {
		select {
		case <-ctx.Done():
			rn.log.Warn().Err(ctx.Err()).Str("phase", round.Phase().String()).Msg("Round interrupted")
			return Result{}, ctx.Err()

		case now := <-ticker.C():
			round.Advance(now)
			if rn.OnTick != nil {
				rn.OnTick(round.State())
			}

		case ev, ok := <-presses:
			if !ok {
				presses = nil
				continue
			}
			at := ev.At
			if at.IsZero() {
				at = rn.clock.Now()
			}
			if ps, accepted := round.Press(ev.Player, at); accepted && rn.OnPress != nil {
				rn.OnPress(ps)
			}
		}
	}

	return round.Result(), nil
}
