package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"intury/internal/logger"
)

// Round is the countdown state machine of a single round:
//
//	Idle -> Armed -> Running -> Ended
//
// There are no reverse transitions; each round needs a fresh Round. A Round
// is not safe for concurrent use. Exactly one goroutine (normally a Runner)
// must drive it.
type Round struct {
	settings      Settings
	judge         Judge
	state         RoundState
	bothPressedAt time.Time
	onEnd         []func()
	log           zerolog.Logger
}

// NewRound creates an idle round.
func NewRound(number int, s Settings) *Round {
	id := uuid.New()
	return &Round{
		settings: s,
		judge:    NewJudge(s),
		state: RoundState{
			ID:          id,
			RoundNumber: number,
			Phase:       PhaseIdle,
			Remaining:   s.Countdown,
			Player1:     PlayerState{Player: Player1},
			Player2:     PlayerState{Player: Player2},
		},
		log: logger.WithRound("game-round", id.String(), number),
	}
}

// OnEnd registers fn to run once when the round reaches Ended.
func (r *Round) OnEnd(fn func()) {
	r.onEnd = append(r.onEnd, fn)
}

// State returns a snapshot of the round.
func (r *Round) State() RoundState {
	return r.state
}

// Phase returns the current phase.
func (r *Round) Phase() Phase {
	return r.state.Phase
}

// Settings returns the rules the round runs under.
func (r *Round) Settings() Settings {
	return r.settings
}

// Arm moves an idle round to Armed. The countdown starts ArmDelay later.
func (r *Round) Arm(now time.Time) error {
	switch r.state.Phase {
	case PhaseIdle:
	case PhaseEnded:
		return ErrRoundFinished
	default:
		return ErrRoundStarted
	}

	r.state.Phase = PhaseArmed
	r.state.ArmedAt = now
	r.log.Debug().Dur("arm_delay", r.settings.ArmDelay).Msg("Round armed")
	return nil
}

// Advance applies a clock tick at now and returns the resulting phase.
func (r *Round) Advance(now time.Time) Phase {
	if r.state.Phase == PhaseArmed && now.Sub(r.state.ArmedAt) >= r.settings.ArmDelay {
		r.state.Phase = PhaseRunning
		r.state.StartedAt = now
		r.state.Remaining = r.settings.Countdown
		r.log.Debug().Msg("Countdown started")
	}
	if r.state.Phase != PhaseRunning {
		return r.state.Phase
	}

	elapsed := now.Sub(r.state.StartedAt)
	if elapsed < 0 {
		return r.state.Phase
	}
	r.state.Remaining = r.settings.Countdown - elapsed

	if r.state.Remaining <= -r.settings.OvertimeFloor {
		r.state.Remaining = -r.settings.OvertimeFloor
		r.end(now, "overtime floor reached")
		return r.state.Phase
	}
	if r.state.BothPressed() && now.Sub(r.bothPressedAt) >= r.settings.BothPressedGrace {
		r.end(now, "both players pressed")
	}
	return r.state.Phase
}

// Press registers a press by p at now. Only the first press of each player
// while the countdown runs counts; every other press is ignored and reported
// as not accepted. Press elapsed time has millisecond resolution.
func (r *Round) Press(p Player, now time.Time) (PlayerState, bool) {
	r.Advance(now)

	ps := r.player(p)
	if ps == nil {
		return PlayerState{}, false
	}
	if r.state.Phase != PhaseRunning || ps.Pressed {
		return *ps, false
	}

	elapsed := now.Sub(r.state.StartedAt)
	if elapsed < 0 {
		return *ps, false
	}
	press := r.judge.Evaluate(elapsed.Truncate(time.Millisecond))
	ps.record(press)

	r.log.Info().
		Stringer("player", p).
		Dur("elapsed", press.Elapsed).
		Dur("deviation", press.Deviation).
		Bool("early", press.Early).
		Bool("perfect", press.Perfect).
		Msg("Press registered")

	if r.state.BothPressed() {
		r.bothPressedAt = now
	}
	return *ps, true
}

// Result resolves the round. It is only final once the round has ended.
func (r *Round) Result() Result {
	return Resolve(r.state, r.settings)
}

func (r *Round) player(p Player) *PlayerState {
	switch p {
	case Player1:
		return &r.state.Player1
	case Player2:
		return &r.state.Player2
	}
	return nil
}

func (r *Round) end(now time.Time, reason string) {
	r.state.Phase = PhaseEnded
	r.state.EndedAt = now
	r.log.Info().
		Str("reason", reason).
		Dur("remaining", r.state.Remaining).
		Msg("Round ended")

	hooks := r.onEnd
	r.onEnd = nil
	for _, fn := range hooks {
		fn()
	}
}
