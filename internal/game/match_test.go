package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_RoundNumbering(t *testing.T) {
	m := NewMatch(DefaultSettings())

	first := m.Start()
	assert.Equal(t, 1, first.State().RoundNumber)

	second := m.PlayAgain()
	third := m.PlayAgain()
	assert.Equal(t, 2, second.State().RoundNumber)
	assert.Equal(t, 3, third.State().RoundNumber)
	assert.NotEqual(t, second.State().ID, third.State().ID)

	m.Home()
	_, ok := m.Current()
	assert.False(t, ok)
	assert.Equal(t, 1, m.Start().State().RoundNumber)
}

func TestMatch_ResultsAndWins(t *testing.T) {
	m := NewMatch(DefaultSettings())

	_, err := Simulate(m.Start(), ScheduledPress{Player1, ms(9900)})
	require.NoError(t, err)
	_, err = Simulate(m.PlayAgain(), ScheduledPress{Player1, ms(9900)}, ScheduledPress{Player2, ms(9901)})
	require.NoError(t, err)
	m.PlayAgain()

	results := m.Results()
	require.Len(t, results, 2)
	assert.Equal(t, OutcomeWinner, results[0].Outcome)
	assert.Equal(t, OutcomeDraw, results[1].Outcome)
	assert.Equal(t, map[Player]int{Player1: 1, Player2: 0}, m.Wins())

	m.Home()
	assert.Empty(t, m.Results())
}
