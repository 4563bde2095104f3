// Package game implements a two-player reaction timing round: a countdown
// runs from ten seconds toward zero and each player tries to press exactly
// 100 ms before zero. The round is a tick-driven state machine advanced by a
// Runner; all timing is expressed as elapsed time since the countdown began.
package game

import (
	"fmt"
	"time"
)

// Settings holds the timing rules of a round.
type Settings struct {
	Countdown        time.Duration // nominal countdown length
	TargetOffset     time.Duration // target instant before nominal zero
	PerfectTolerance time.Duration
	GoodTolerance    time.Duration
	TickInterval     time.Duration
	ArmDelay         time.Duration // pause between Armed and Running
	BothPressedGrace time.Duration // delay after the second press before the round ends
	OvertimeFloor    time.Duration // how far past zero the countdown may run
	EarlyThreshold   time.Duration // presses with more remaining time are too early
	EarlyPenalty     time.Duration
	DrawThreshold    time.Duration // score differences below this are a draw
}

// DefaultSettings returns the standard rules.
func DefaultSettings() Settings {
	return Settings{
		Countdown:        10 * time.Second,
		TargetOffset:     100 * time.Millisecond,
		PerfectTolerance: 10 * time.Millisecond,
		GoodTolerance:    50 * time.Millisecond,
		TickInterval:     10 * time.Millisecond,
		ArmDelay:         time.Second,
		BothPressedGrace: 500 * time.Millisecond,
		OvertimeFloor:    2 * time.Second,
		EarlyThreshold:   2 * time.Second,
		EarlyPenalty:     10 * time.Second,
		DrawThreshold:    5 * time.Millisecond,
	}
}

// Target returns the elapsed time at which a press is perfect.
func (s Settings) Target() time.Duration {
	return s.Countdown - s.TargetOffset
}

// Validate checks that the settings describe a round that can terminate.
func (s Settings) Validate() error {
	switch {
	case s.Countdown <= 0:
		return fmt.Errorf("%w: countdown must be positive, got %s", ErrInvalidSettings, s.Countdown)
	case s.TargetOffset < 0 || s.TargetOffset >= s.Countdown:
		return fmt.Errorf("%w: target offset %s must lie within the countdown", ErrInvalidSettings, s.TargetOffset)
	case s.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval must be positive, got %s", ErrInvalidSettings, s.TickInterval)
	case s.ArmDelay < 0, s.BothPressedGrace < 0, s.OvertimeFloor < 0:
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidSettings)
	case s.PerfectTolerance < 0 || s.GoodTolerance < s.PerfectTolerance:
		return fmt.Errorf("%w: tolerances must satisfy 0 <= perfect <= good", ErrInvalidSettings)
	case s.EarlyThreshold < 0 || s.EarlyPenalty < 0 || s.DrawThreshold < 0:
		return fmt.Errorf("%w: scoring thresholds must not be negative", ErrInvalidSettings)
	}
	return nil
}

// Player identifies one of the two contestants.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// Players lists both contestants in display order.
func Players() []Player {
	return []Player{Player1, Player2}
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return "none"
}

// Label is the Czech display name of the player.
func (p Player) Label() string {
	switch p {
	case Player1:
		return "Hráč 1"
	case Player2:
		return "Hráč 2"
	}
	return ""
}

// MarshalText implements encoding.TextMarshaler.
func (p Player) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case "player1":
		*p = Player1
	case "player2":
		*p = Player2
	case "none", "":
		*p = NoPlayer
	default:
		return fmt.Errorf("unknown player %q", text)
	}
	return nil
}

// Phase is the lifecycle stage of a round.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseArmed
	PhaseRunning
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseArmed:
		return "armed"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
