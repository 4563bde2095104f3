package game

import (
	"time"

	"github.com/google/uuid"
)

// PlayerState is one player's record within a round. PressElapsed,
// Deviation and Score are only meaningful when Pressed is set.
type PlayerState struct {
	Player       Player
	Pressed      bool
	PressElapsed time.Duration
	Remaining    time.Duration
	Deviation    time.Duration
	Score        time.Duration
	Early        bool
	Perfect      bool
	Good         bool
	Penalized    bool
}

func (ps *PlayerState) record(p Press) {
	ps.Pressed = true
	ps.PressElapsed = p.Elapsed
	ps.Remaining = p.Remaining
	ps.Deviation = p.Deviation
	ps.Score = p.Score
	ps.Early = p.Early
	ps.Perfect = p.Perfect
	ps.Good = p.Good
	ps.Penalized = p.Early
}

// Status is the short Czech status line shown on a player's card.
func (ps PlayerState) Status(phase Phase) string {
	switch {
	case ps.Pressed && ps.Early:
		return "příliš brzy"
	case ps.Pressed:
		return "stisknuto"
	case phase == PhaseRunning:
		return "čekám"
	}
	return "připraven"
}

// RoundState is a snapshot of a round. It is a value copy; mutating it does
// not affect the round.
type RoundState struct {
	ID          uuid.UUID
	RoundNumber int
	Phase       Phase
	ArmedAt     time.Time
	StartedAt   time.Time
	EndedAt     time.Time
	Remaining   time.Duration // signed; clamped at -OvertimeFloor
	Player1     PlayerState
	Player2     PlayerState
}

// Player returns the state of p.
func (s RoundState) Player(p Player) PlayerState {
	if p == Player2 {
		return s.Player2
	}
	return s.Player1
}

// BothPressed reports whether both players have pressed.
func (s RoundState) BothPressed() bool {
	return s.Player1.Pressed && s.Player2.Pressed
}
