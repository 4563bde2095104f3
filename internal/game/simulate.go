package game

import (
	"cmp"
	"slices"
	"time"
)

// ScheduledPress is a press at a fixed elapsed time after the countdown
// started.
type ScheduledPress struct {
	Player  Player
	Elapsed time.Duration
}

// simulationEpoch anchors synthetic clocks so results are reproducible.
var simulationEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Simulate plays round to completion on a synthetic clock, ticking every
// TickInterval and injecting the scheduled presses in time order. Presses
// scheduled at negative elapsed times are ignored.
func Simulate(round *Round, presses ...ScheduledPress) (Result, error) {
	s := round.Settings()
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	if err := round.Arm(simulationEpoch); err != nil {
		return Result{}, err
	}

	pending := slices.Clone(presses)
	slices.SortStableFunc(pending, func(a, b ScheduledPress) int {
		return cmp.Compare(a.Elapsed, b.Elapsed)
	})

	now := simulationEpoch
	for round.Phase() != PhaseEnded {
		next := now.Add(s.TickInterval)
		for len(pending) > 0 && round.Phase() == PhaseRunning {
			at := round.State().StartedAt.Add(pending[0].Elapsed)
			if at.After(next) {
				break
			}
			if !at.Before(now) {
				round.Press(pending[0].Player, at)
			}
			pending = pending[1:]
		}
		round.Advance(next)
		now = next
	}
	return round.Result(), nil
}
