package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate_ClosestToTargetWins(t *testing.T) {
	r := NewRound(1, DefaultSettings())

	res, err := Simulate(r,
		ScheduledPress{Player: Player2, Elapsed: 9950 * time.Millisecond},
		ScheduledPress{Player: Player1, Elapsed: 9900 * time.Millisecond},
	)
	require.NoError(t, err)

	assert.Equal(t, PhaseEnded, r.Phase())
	assert.Equal(t, Player1, res.Winner)
	assert.Equal(t, "Hráč 1 byl rychlejší o 50ms (0.050s)", res.Message)
	assert.True(t, res.Players[0].Perfect)
	assert.Equal(t, "0.100s", res.Players[0].Time)
	assert.Equal(t, "0.050s", res.Players[1].Time)

	st := r.State()
	assert.Equal(t, st.StartedAt.Add(10450*time.Millisecond), st.EndedAt)
}

func TestSimulate_NoPresses(t *testing.T) {
	r := NewRound(1, DefaultSettings())

	res, err := Simulate(r)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoPress, res.Outcome)
	assert.Equal(t, -2*time.Second, r.State().Remaining)
}

func TestSimulate_DuplicateAndNegativePresses(t *testing.T) {
	r := NewRound(1, DefaultSettings())

	res, err := Simulate(r,
		ScheduledPress{Player: Player1, Elapsed: -time.Second},
		ScheduledPress{Player: Player1, Elapsed: 7 * time.Second},
		ScheduledPress{Player: Player1, Elapsed: 9900 * time.Millisecond},
	)
	require.NoError(t, err)
	assert.Equal(t, Player1, res.Winner)
	assert.True(t, res.Players[0].Early)
	assert.Equal(t, int64(12900), res.Players[0].ScoreMs)
}

func TestSimulate_RejectsInvalidSettings(t *testing.T) {
	s := DefaultSettings()
	s.TickInterval = 0

	_, err := Simulate(NewRound(1, s))
	assert.ErrorIs(t, err, ErrInvalidSettings)
}
