package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runOutcome struct {
	res Result
	err error
}

func startRunner(ctx context.Context, rn *Runner, r *Round, presses <-chan PressEvent) <-chan runOutcome {
	done := make(chan runOutcome, 1)
	go func() {
		res, err := rn.Run(ctx, r, presses)
		done <- runOutcome{res, err}
	}()
	return done
}

func waitRun(t *testing.T, done <-chan runOutcome) runOutcome {
	t.Helper()
	select {
	case out := <-done:
		return out
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not return")
		return runOutcome{}
	}
}

func TestRunner_PlaysRoundAndStopsTickerOnce(t *testing.T) {
	s := DefaultSettings()
	clock := newFakeClock(t0)
	presses := make(chan PressEvent)

	var ticks, accepted int
	rn := NewRunner(clock)
	rn.OnTick = func(RoundState) { ticks++ }
	rn.OnPress = func(PlayerState) { accepted++ }

	round := NewRound(1, s)
	done := startRunner(context.Background(), rn, round, presses)

	start := t0.Add(s.ArmDelay)
	clock.ticker.ch <- start
	presses <- PressEvent{Player: Player2, At: start.Add(ms(9950))}
	presses <- PressEvent{Player: Player1, At: start.Add(ms(9960))}
	presses <- PressEvent{Player: Player2, At: start.Add(ms(9970))}
	clock.ticker.ch <- start.Add(ms(10460))

	out := waitRun(t, done)
	require.NoError(t, out.err)
	assert.Equal(t, OutcomeWinner, out.res.Outcome)
	assert.Equal(t, Player2, out.res.Winner)
	assert.Equal(t, int32(1), clock.ticker.stops.Load())
	assert.Equal(t, 2, ticks)
	assert.Equal(t, 2, accepted)
}

func TestRunner_TimeoutStopsTickerOnce(t *testing.T) {
	s := DefaultSettings()
	clock := newFakeClock(t0)
	round := NewRound(1, s)
	done := startRunner(context.Background(), NewRunner(clock), round, nil)

	start := t0.Add(s.ArmDelay)
	clock.ticker.ch <- start
	clock.ticker.ch <- start.Add(12 * time.Second)

	out := waitRun(t, done)
	require.NoError(t, out.err)
	assert.Equal(t, OutcomeNoPress, out.res.Outcome)
	assert.Equal(t, int32(1), clock.ticker.stops.Load())
}

func TestRunner_ContextCancelled(t *testing.T) {
	clock := newFakeClock(t0)
	ctx, cancel := context.WithCancel(context.Background())
	round := NewRound(1, DefaultSettings())
	done := startRunner(ctx, NewRunner(clock), round, make(chan PressEvent))

	clock.ticker.ch <- t0.Add(time.Second)
	cancel()

	out := waitRun(t, done)
	assert.ErrorIs(t, out.err, context.Canceled)
	assert.Equal(t, int32(1), clock.ticker.stops.Load())
	assert.Equal(t, PhaseRunning, round.Phase())
}

func TestRunner_ClosedPressChannel(t *testing.T) {
	s := DefaultSettings()
	clock := newFakeClock(t0)
	presses := make(chan PressEvent)
	round := NewRound(1, s)
	done := startRunner(context.Background(), NewRunner(clock), round, presses)

	close(presses)
	start := t0.Add(s.ArmDelay)
	clock.ticker.ch <- start
	clock.ticker.ch <- start.Add(12 * time.Second)

	out := waitRun(t, done)
	require.NoError(t, out.err)
	assert.Equal(t, OutcomeNoPress, out.res.Outcome)
}

func TestRunner_RejectsFinishedRound(t *testing.T) {
	round, start := startedRound(DefaultSettings())
	round.Advance(start.Add(12 * time.Second))

	clock := newFakeClock(t0)
	_, err := NewRunner(clock).Run(context.Background(), round, nil)
	assert.ErrorIs(t, err, ErrRoundFinished)
	assert.Equal(t, int32(0), clock.ticker.stops.Load())
}
