package game

import "time"

// Press is the judged outcome of a single button press.
type Press struct {
	Elapsed   time.Duration // since the countdown started
	Remaining time.Duration // countdown left at the press, negative in overtime
	Deviation time.Duration // distance from the target instant
	Score     time.Duration // lower is better
	Early     bool
	Perfect   bool
	Good      bool
}

// Judge scores presses against the target instant.
type Judge struct {
	settings Settings
}

// NewJudge creates a judge for the given rules.
func NewJudge(s Settings) Judge {
	return Judge{settings: s}
}

// Evaluate scores a press made elapsed after the countdown started.
//
// A press with more than EarlyThreshold left on the countdown is too early:
// its score carries EarlyPenalty so it loses to any regular press. Perfect
// and Good only grade regular presses for display.
func (j Judge) Evaluate(elapsed time.Duration) Press {
	remaining := j.settings.Countdown - elapsed
	deviation := absDuration(elapsed - j.settings.Target())

	p := Press{
		Elapsed:   elapsed,
		Remaining: remaining,
		Deviation: deviation,
		Score:     deviation,
	}
	if remaining > j.settings.EarlyThreshold {
		p.Early = true
		p.Score = j.settings.EarlyPenalty + deviation
		return p
	}
	p.Perfect = deviation <= j.settings.PerfectTolerance
	p.Good = deviation <= j.settings.GoodTolerance
	return p
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
