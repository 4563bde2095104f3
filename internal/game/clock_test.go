package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound_Lifecycle(t *testing.T) {
	s := DefaultSettings()
	r := NewRound(3, s)
	assert.Equal(t, PhaseIdle, r.Phase())
	assert.Equal(t, 3, r.State().RoundNumber)

	require.NoError(t, r.Arm(t0))
	assert.ErrorIs(t, r.Arm(t0), ErrRoundStarted)

	assert.Equal(t, PhaseArmed, r.Advance(t0.Add(999*time.Millisecond)))
	_, accepted := r.Press(Player1, t0.Add(999*time.Millisecond))
	assert.False(t, accepted, "presses before the countdown are ignored")

	assert.Equal(t, PhaseRunning, r.Advance(t0.Add(time.Second)))
	assert.Equal(t, s.Countdown, r.State().Remaining)

	r.Advance(t0.Add(time.Second + ms(2500)))
	assert.Equal(t, ms(7500), r.State().Remaining)
}

func TestRound_TimeoutWithoutPresses(t *testing.T) {
	r, start := startedRound(DefaultSettings())

	ended := 0
	r.OnEnd(func() { ended++ })

	assert.Equal(t, PhaseRunning, r.Advance(start.Add(ms(11990))))
	assert.Equal(t, PhaseEnded, r.Advance(start.Add(ms(12000))))
	assert.Equal(t, -2*time.Second, r.State().Remaining)
	assert.Equal(t, 1, ended)

	res := r.Result()
	assert.Equal(t, OutcomeNoPress, res.Outcome)
	assert.Equal(t, NoPlayer, res.Winner)
	assert.Equal(t, "Nikdo nestiskl", res.Title)
}

func TestRound_RemainingClampedOnLateTick(t *testing.T) {
	r, start := startedRound(DefaultSettings())

	r.Advance(start.Add(15 * time.Second))
	assert.Equal(t, PhaseEnded, r.Phase())
	assert.Equal(t, -2*time.Second, r.State().Remaining)
}

func TestRound_SecondPressIgnored(t *testing.T) {
	r, start := startedRound(DefaultSettings())

	first, accepted := r.Press(Player1, start.Add(ms(9000)))
	require.True(t, accepted)
	assert.Equal(t, ms(900), first.Score)

	again, accepted := r.Press(Player1, start.Add(ms(9900)))
	assert.False(t, accepted)
	assert.Equal(t, ms(900), again.Score)
	assert.Equal(t, ms(9000), r.State().Player1.PressElapsed)
	assert.False(t, r.State().Player2.Pressed)
}

func TestRound_EarlyPressPenalized(t *testing.T) {
	r, start := startedRound(DefaultSettings())

	ps, accepted := r.Press(Player2, start.Add(ms(7000)))
	require.True(t, accepted)
	assert.True(t, ps.Early)
	assert.True(t, ps.Penalized)
	assert.Equal(t, ms(12900), ps.Score)
	assert.Equal(t, "příliš brzy", ps.Status(r.Phase()))
	assert.Equal(t, "čekám", r.State().Player1.Status(r.Phase()))
}

func TestRound_EndsAfterGraceOnceBothPressed(t *testing.T) {
	r, start := startedRound(DefaultSettings())

	r.Press(Player1, start.Add(ms(9890)))
	second := start.Add(ms(9920))
	r.Press(Player2, second)

	assert.Equal(t, PhaseRunning, r.Advance(second.Add(ms(499))))
	assert.Equal(t, PhaseEnded, r.Advance(second.Add(ms(500))))

	res := r.Result()
	assert.Equal(t, OutcomeWinner, res.Outcome)
	assert.Equal(t, Player1, res.Winner)
}

func TestRound_FrozenAfterEnd(t *testing.T) {
	r, start := startedRound(DefaultSettings())

	ended := 0
	r.OnEnd(func() { ended++ })
	r.Press(Player1, start.Add(ms(9800)))
	r.Advance(start.Add(12 * time.Second))
	require.Equal(t, PhaseEnded, r.Phase())

	before := r.State()
	r.Advance(start.Add(13 * time.Second))
	_, accepted := r.Press(Player2, start.Add(13*time.Second))
	assert.False(t, accepted)
	assert.ErrorIs(t, r.Arm(start), ErrRoundFinished)

	assert.Equal(t, before, r.State())
	assert.Equal(t, 1, ended)
}

func TestRound_PressTimesHaveMillisecondResolution(t *testing.T) {
	r, start := startedRound(DefaultSettings())

	ps, accepted := r.Press(Player1, start.Add(ms(9900)+750*time.Microsecond))
	require.True(t, accepted)
	assert.Equal(t, ms(9900), ps.PressElapsed)
	assert.True(t, ps.Perfect)
}

func TestRound_UnknownPlayer(t *testing.T) {
	r, start := startedRound(DefaultSettings())

	_, accepted := r.Press(Player(7), start.Add(ms(9900)))
	assert.False(t, accepted)
	assert.False(t, r.State().Player1.Pressed)
	assert.False(t, r.State().Player2.Pressed)
}
