package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJudge_Evaluate(t *testing.T) {
	j := NewJudge(DefaultSettings())

	tests := []struct {
		name      string
		elapsed   time.Duration
		remaining time.Duration
		deviation time.Duration
		score     time.Duration
		early     bool
		perfect   bool
		good      bool
	}{
		{"one second before target", ms(9000), ms(1000), ms(900), ms(900), false, false, false},
		{"way too early", ms(7000), ms(3000), ms(2900), ms(12900), true, false, false},
		{"exactly on threshold is not early", ms(8000), ms(2000), ms(1900), ms(1900), false, false, false},
		{"on target", ms(9900), ms(100), 0, 0, false, true, true},
		{"within perfect window", ms(9910), ms(90), ms(10), ms(10), false, true, true},
		{"good but not perfect", ms(9860), ms(140), ms(40), ms(40), false, false, true},
		{"overtime", ms(10500), ms(-500), ms(600), ms(600), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := j.Evaluate(tt.elapsed)
			assert.Equal(t, tt.remaining, p.Remaining)
			assert.Equal(t, tt.deviation, p.Deviation)
			assert.Equal(t, tt.score, p.Score)
			assert.Equal(t, tt.early, p.Early)
			assert.Equal(t, tt.perfect, p.Perfect)
			assert.Equal(t, tt.good, p.Good)
		})
	}
}

func TestJudge_EarlyNeverGraded(t *testing.T) {
	s := DefaultSettings()
	s.TargetOffset = 5 * time.Second

	p := NewJudge(s).Evaluate(ms(5000))
	assert.True(t, p.Early)
	assert.False(t, p.Perfect)
	assert.Equal(t, s.EarlyPenalty, p.Score)
}

func TestSettings_Validate(t *testing.T) {
	assert.NoError(t, DefaultSettings().Validate())

	bad := []func(*Settings){
		func(s *Settings) { s.Countdown = 0 },
		func(s *Settings) { s.TargetOffset = s.Countdown },
		func(s *Settings) { s.TickInterval = 0 },
		func(s *Settings) { s.BothPressedGrace = -time.Millisecond },
		func(s *Settings) { s.GoodTolerance = ms(5) },
	}
	for _, mutate := range bad {
		s := DefaultSettings()
		mutate(&s)
		assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)
	}
}
