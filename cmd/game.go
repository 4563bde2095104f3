package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"intury/internal/game"
	"intury/internal/logger"
)

// errQuit ends an interactive session at the player's request
var errQuit = errors.New("quit")

var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Two-player reaction game",
	Long: `A countdown runs from 10 seconds toward zero. Each player presses once,
trying to hit 0.1 s before zero. Pressing more than 2 s before the target
is too early and always loses to a regular press. Scores closer than 5 ms
are a draw.`,
}

var gamePlayCmd = &cobra.Command{
	Use:   "play",
	Short: "Play rounds interactively on the terminal",
	Long: `Play rounds interactively. Type a key and press Enter:

  1 or a   player 1
  2 or l   player 2
  r        play again (after a round)
  h        back to round 1 (after a round)
  q        quit

Several keys on one line are applied in the order typed.`,
	Args: cobra.NoArgs,
	RunE: runGamePlay,
}

var gameSimulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Resolve a round from scheduled press times",
	Long: `Play a round on a synthetic clock with presses at fixed times after the
countdown started and print the result. Omit a flag for a player who does
not press.`,
	Example: `  # Player 1 hits the target, player 2 is 50 ms late
  intury game simulate --p1 9.9s --p2 9.95s

  # Nobody presses
  intury game simulate`,
	Args: cobra.NoArgs,
	RunE: runGameSimulate,
}

func init() {
	rootCmd.AddCommand(gameCmd)
	gameCmd.AddCommand(gamePlayCmd, gameSimulateCmd)

	gamePlayCmd.Flags().Bool("json", false, "Print round results as JSON")

	gameSimulateCmd.Flags().Duration("p1", 0, "Player 1 press time after the countdown started")
	gameSimulateCmd.Flags().Duration("p2", 0, "Player 2 press time after the countdown started")
	gameSimulateCmd.Flags().Int("round", 1, "Round number")
	gameSimulateCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}

func runGameSimulate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("game")

	outputPath, _ := cmd.Flags().GetString("output")
	number, _ := cmd.Flags().GetInt("round")

	var presses []game.ScheduledPress
	for _, p := range game.Players() {
		name := fmt.Sprintf("p%d", int(p))
		if !cmd.Flags().Changed(name) {
			continue
		}
		at, _ := cmd.Flags().GetDuration(name)
		if at < 0 {
			return fmt.Errorf("--%s must not be negative", name)
		}
		presses = append(presses, game.ScheduledPress{Player: p, Elapsed: at})
	}

	log.Info().
		Int("round", number).
		Int("presses", len(presses)).
		Msg("Simulating round")

	res, err := game.Simulate(game.NewRound(number, gameSettings()), presses...)
	if err != nil {
		return handleGameError(err, log)
	}
	return writeJSON(cmd.OutOrStdout(), res, outputPath, log)
}

// inputLine is one line of player input stamped on arrival
type inputLine struct {
	text string
	at   time.Time
}

func runGamePlay(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("game")
	asJSON, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()

	ctx, cancel := createSignalContext(cmd.Context(), log)
	defer cancel()

	lines := readLines(ctx, cmd.InOrStdin())
	match := game.NewMatch(gameSettings())
	rn := game.NewRunner(game.SystemClock{})
	if isatty.IsTerminal(os.Stdout.Fd()) && !asJSON {
		rn.OnTick = countdownPrinter(out)
	}
	rn.OnPress = func(ps game.PlayerState) {
		fmt.Fprintf(out, "\n%s: %s (%s)\n", ps.Player.Label(), ps.Status(game.PhaseRunning), game.FormatSeconds(ps.Remaining))
	}

	round := match.Start()
	for {
		fmt.Fprintf(out, "Kolo %d - připravte se\n", round.State().RoundNumber)

		res, err := playRound(ctx, rn, round, lines)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			return handleGameError(err, log)
		}

		if asJSON {
			if err := writeJSON(out, res, "", log); err != nil {
				return err
			}
		} else {
			writeResultText(out, res)
		}

		next, ok := awaitNextRound(ctx, out, lines)
		if !ok {
			break
		}
		switch next {
		case "r":
			round = match.PlayAgain()
		case "h":
			match.Home()
			round = match.Start()
		}
	}

	wins := match.Wins()
	fmt.Fprintf(out, "Skóre: %s %d : %d %s\n",
		game.Player1.Label(), wins[game.Player1], wins[game.Player2], game.Player2.Label())
	return nil
}

// playRound drives one round while forwarding player input as presses
func playRound(ctx context.Context, rn *game.Runner, round *game.Round, lines <-chan inputLine) (game.Result, error) {
	roundCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(roundCtx)
	presses := make(chan game.PressEvent)

	var res game.Result
	g.Go(func() error {
		defer cancel()
		var err error
		res, err = rn.Run(gctx, round, presses)
		return err
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				for _, key := range line.text {
					player, quit := parseKey(key)
					if quit {
						return errQuit
					}
					if player == game.NoPlayer {
						continue
					}
					select {
					case presses <- game.PressEvent{Player: player, At: line.at}:
					case <-gctx.Done():
						return nil
					}
				}
			}
		}
	})

	if err := g.Wait(); err != nil {
		return game.Result{}, err
	}
	return res, nil
}

// awaitNextRound asks what to do after a round; false means quit
func awaitNextRound(ctx context.Context, out io.Writer, lines <-chan inputLine) (string, bool) {
	fmt.Fprintln(out, "[r] hrát znovu  [h] domů  [q] konec")
	for {
		select {
		case <-ctx.Done():
			return "", false
		case line, ok := <-lines:
			if !ok {
				return "", false
			}
			switch choice := strings.ToLower(strings.TrimSpace(line.text)); choice {
			case "r", "h":
				return choice, true
			case "q":
				return "", false
			}
		}
	}
}

func parseKey(key rune) (game.Player, bool) {
	switch key {
	case '1', 'a', 'A':
		return game.Player1, false
	case '2', 'l', 'L':
		return game.Player2, false
	case 'q', 'Q':
		return game.NoPlayer, true
	}
	return game.NoPlayer, false
}

// readLines scans r on its own goroutine. The channel closes on EOF or once
// ctx is done; a line read after that is dropped.
func readLines(ctx context.Context, r io.Reader) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- inputLine{text: scanner.Text(), at: time.Now()}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

// countdownPrinter redraws the countdown whenever the shown tenth changes
func countdownPrinter(out io.Writer) func(game.RoundState) {
	last := time.Duration(-1 << 62)
	return func(st game.RoundState) {
		if st.Phase != game.PhaseRunning {
			return
		}
		shown := st.Remaining.Truncate(100 * time.Millisecond)
		if shown == last {
			return
		}
		last = shown
		fmt.Fprintf(out, "\r%8.1f ", shown.Seconds())
	}
}

func writeResultText(w io.Writer, res game.Result) {
	fmt.Fprintf(w, "\n%s\n", res.Title)
	for _, p := range res.Players {
		deviation := "—"
		if p.Pressed {
			deviation = fmt.Sprintf("±%dms", p.DeviationMs)
		}
		marker := ""
		switch {
		case p.Winner:
			marker = " *"
		case p.Early:
			marker = " (příliš brzy)"
		}
		fmt.Fprintf(w, "  %s: %s %s%s\n", p.Player.Label(), p.Time, deviation, marker)
	}
	if res.Message != "" {
		fmt.Fprintln(w, res.Message)
	}
}

// handleGameError provides user-friendly error messages for game failures
func handleGameError(err error, log zerolog.Logger) error {
	log.Error().Err(err).Msg("Game failed")

	switch {
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("game was canceled")
	case errors.Is(err, game.ErrInvalidSettings):
		return fmt.Errorf("invalid game timing configuration, check the GAME_* variables: %w", err)
	case errors.Is(err, game.ErrRoundFinished):
		return fmt.Errorf("round already finished: %w", err)
	default:
		return fmt.Errorf("game failed: %w", err)
	}
}
