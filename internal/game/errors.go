package game

import "errors"

var (
	// ErrRoundFinished is returned when an ended round is armed or run again.
	ErrRoundFinished = errors.New("round already finished")

	// ErrRoundStarted is returned when arming a round that is already armed or running.
	ErrRoundStarted = errors.New("round already started")

	// ErrInvalidSettings is returned for timing rules that cannot produce a round.
	ErrInvalidSettings = errors.New("invalid game settings")
)
