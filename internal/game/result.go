package game

import (
	"fmt"
	"time"
)

// Outcome classifies how a round was decided.
type Outcome string

const (
	OutcomeNoPress Outcome = "no_press"
	OutcomeWinner  Outcome = "winner"
	OutcomeDraw    Outcome = "draw"
)

// PlayerResult is the per-player line of a result, in milliseconds.
type PlayerResult struct {
	Player      Player `json:"player"`
	Pressed     bool   `json:"pressed"`
	Time        string `json:"time"` // countdown left at the press, e.g. "0.100s"
	ElapsedMs   int64  `json:"elapsed_ms,omitempty"`
	DeviationMs int64  `json:"deviation_ms,omitempty"`
	ScoreMs     int64  `json:"score_ms,omitempty"`
	Early       bool   `json:"early,omitempty"`
	Perfect     bool   `json:"perfect,omitempty"`
	Winner      bool   `json:"winner,omitempty"`
}

// Result is the resolved outcome of a round.
type Result struct {
	RoundID      string         `json:"round_id"`
	RoundNumber  int            `json:"round_number"`
	Outcome      Outcome        `json:"outcome"`
	Winner       Player         `json:"winner,omitempty"`
	Title        string         `json:"title"`
	Difference   time.Duration  `json:"-"`
	DifferenceMs *int64         `json:"difference_ms,omitempty"`
	Message      string         `json:"message,omitempty"`
	Players      []PlayerResult `json:"players"`
}

// Resolve decides a round from its final state.
//
// Nobody pressed: no winner. One pressed: that player wins. Both pressed:
// scores closer than DrawThreshold draw, otherwise the lower score wins.
func Resolve(state RoundState, s Settings) Result {
	res := Result{
		RoundID:     state.ID.String(),
		RoundNumber: state.RoundNumber,
	}

	p1, p2 := state.Player1, state.Player2
	switch {
	case !p1.Pressed && !p2.Pressed:
		res.Outcome = OutcomeNoPress
	case !p1.Pressed:
		res.Outcome, res.Winner = OutcomeWinner, Player2
	case !p2.Pressed:
		res.Outcome, res.Winner = OutcomeWinner, Player1
	case absDuration(p1.Score-p2.Score) < s.DrawThreshold:
		res.Outcome = OutcomeDraw
	case p1.Score < p2.Score:
		res.Outcome, res.Winner = OutcomeWinner, Player1
	default:
		res.Outcome, res.Winner = OutcomeWinner, Player2
	}
	res.Title = resultTitle(res.Outcome, res.Winner)

	if p1.Pressed && p2.Pressed {
		res.Difference = absDuration(p1.Deviation - p2.Deviation)
		ms := res.Difference.Milliseconds()
		res.DifferenceMs = &ms
		res.Message = differenceLine(res.Winner, res.Difference)
	}

	res.Players = []PlayerResult{
		playerResult(p1, res.Winner),
		playerResult(p2, res.Winner),
	}
	return res
}

func resultTitle(o Outcome, winner Player) string {
	switch o {
	case OutcomeNoPress:
		return "Nikdo nestiskl"
	case OutcomeDraw:
		return "Remíza"
	}
	return winner.Label() + " vyhrál"
}

func differenceLine(winner Player, diff time.Duration) string {
	ms := diff.Milliseconds()
	if winner == NoPlayer {
		return fmt.Sprintf("Rozdíl: %dms - Téměř identická reakce!", ms)
	}
	return fmt.Sprintf("%s byl rychlejší o %dms (%s)", winner.Label(), ms, FormatSeconds(diff))
}

func playerResult(ps PlayerState, winner Player) PlayerResult {
	pr := PlayerResult{Player: ps.Player, Time: "—"}
	if !ps.Pressed {
		return pr
	}
	pr.Pressed = true
	pr.Time = FormatSeconds(ps.Remaining)
	pr.ElapsedMs = ps.PressElapsed.Milliseconds()
	pr.DeviationMs = ps.Deviation.Milliseconds()
	pr.ScoreMs = ps.Score.Milliseconds()
	pr.Early = ps.Early
	pr.Perfect = ps.Perfect
	pr.Winner = ps.Player == winner
	return pr
}

// FormatSeconds renders a duration as seconds with three decimals and an
// "s" suffix, e.g. "-0.250s".
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}
