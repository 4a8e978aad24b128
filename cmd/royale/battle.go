package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-royale/internal/app"
	"github.com/vovakirdan/tui-royale/internal/battle"
	"github.com/vovakirdan/tui-royale/internal/platform/tui"
	"github.com/vovakirdan/tui-royale/internal/sched"
)

var flagHeadless bool

var battleCmd = &cobra.Command{
	Use:   "battle",
	Short: "Start a battle with the active deck",
	Long: `Starts a battle. Elixir regenerates by one every 2.8 seconds up to 10
and the match lasts three minutes (see the battle section of the config).

Controls:
  1-4          - Select a hand card
  Left/Right   - Move the selection
  Esc/B        - Leave the battle
  Q/Ctrl+C     - Quit

With --headless the battle runs on wall-clock timers without a screen and
logs every tick at debug level until the timer expires or Ctrl+C.

Examples:
  royale battle
  royale battle --fps 60
  ROYALE_BATTLE_MATCH_SECONDS=10 royale battle --headless --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runBattle,
}

func init() {
	battleCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without a screen, logging ticks")
}

func runBattle(cmd *cobra.Command, _ []string) error {
	if flagHeadless {
		return runHeadless(cmd.Context())
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal; use --headless")
	}

	// Log lines would tear the alternate screen, so hold them until exit.
	var held bytes.Buffer
	screenLogger, err := newLogger(&held, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() {
		//nolint:errcheck // Best-effort flush
		os.Stderr.Write(held.Bytes())
	}()

	manual := sched.NewManual()
	composer, _, err := newComposer(cmd.Context())
	if err != nil {
		return err
	}
	host := app.NewHost(composer, manual, cfg.Battle.Session(), screenLogger)

	snap, err := tui.RunBattle(host, manual, cfg.UI.TickRate)
	if err != nil {
		return err
	}
	printResult(snap)
	return nil
}

// runHeadless plays a battle on wall-clock timers. Scheduler callbacks run
// on the Run goroutine; the host is only touched here again after Run returns.
func runHeadless(ctx context.Context) error {
	rt := sched.NewRealtime()
	host, _, err := newHost(ctx, rt)
	if err != nil {
		return err
	}
	if err := host.Dispatch(app.StartBattle{}); err != nil {
		return err
	}
	session, _ := host.Session()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runErr := make(chan error, 1)
	go func() {
		runErr <- rt.Run(ctx)
	}()

	select {
	case <-session.Done():
		cancel()
	case <-ctx.Done():
	}
	<-runErr

	if !session.Ended() {
		if err := host.Dispatch(app.EndBattle{}); err != nil {
			return err
		}
	}
	printResult(session.Snapshot())
	return nil
}

func printResult(snap battle.Snapshot) {
	if !snap.Started {
		return
	}
	fmt.Printf("Battle %s\n", snap.ID)
	fmt.Printf("  Result:    %s\n", snap.Reason)
	fmt.Printf("  Time left: %s\n", snap.Remaining)
	fmt.Printf("  Elixir:    %d/%d\n", snap.Clock.Resource, snap.Clock.MaxResource)
	played := time.Duration(cfg.Battle.MatchSeconds-snap.Clock.MatchSecondsRemaining) * cfg.Battle.TimerEvery
	fmt.Printf("  Played:    %s\n", played)
}
