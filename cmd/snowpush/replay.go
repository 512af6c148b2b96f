package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snowpush/internal/platform/tui"
	"github.com/vovakirdan/snowpush/internal/snowball/core"
	"github.com/vovakirdan/snowpush/internal/snowball/levels"
	"github.com/vovakirdan/snowpush/internal/snowball/runner"
)

var (
	flagReplayStored bool
	flagReplayPlain  bool
	flagReplayDelay  time.Duration
	flagReplayTheme  string
)

var replayCmd = &cobra.Command{
	Use:   "replay <level>",
	Short: "Animate a solution",
	Long: `Solve a level (or load its best stored solution with --stored) and
replay it push by push.

Controls:
  Space      - Play/pause
  Left/Right - Step back/forward
  +/-        - Faster/slower
  Q/Ctrl+C   - Quit

With --plain, or when stdout is not a terminal, frames are printed one
after another with the configured step delay.

Examples:
  snowpush replay reference
  snowpush replay reference --stored
  snowpush replay tower --plain --delay 100ms`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayStored, "stored", false, "Replay the best stored solution instead of solving")
	replayCmd.Flags().BoolVar(&flagReplayPlain, "plain", false, "Print frames to stdout instead of the viewer")
	replayCmd.Flags().DurationVar(&flagReplayDelay, "delay", 0, "Step delay (default from config)")
	replayCmd.Flags().StringVar(&flagReplayTheme, "theme", "default", "Viewer theme: default, mono")
}

func runReplay(_ *cobra.Command, args []string) {
	lvl, err := current.loader.Resolve(args[0])
	if err != nil {
		fatal("%v", err)
	}

	store, err := current.openStore()
	if err != nil {
		if flagReplayStored {
			fatal("%v", err)
		}
		current.logger.Warn("continuing without solution history", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	plain := flagReplayPlain || !isTerminal()
	if err := replayLevel(current.newRunner(store), lvl, flagReplayStored, plain); err != nil {
		fatal("%v", err)
	}
}

// replayLevel solves lvl or loads its stored solution, then plays it.
func replayLevel(r *runner.Runner, lvl levels.Level, stored, plain bool) error {
	var (
		out runner.Outcome
		err error
	)
	if stored {
		out, err = r.Stored(lvl)
	} else {
		out, err = r.Solve(lvl)
	}
	if err != nil {
		return err
	}

	frames, err := core.Frames(out.Initial, out.Final.Actions)
	if err != nil {
		return err
	}

	delay := current.cfg.Replay.StepDelay
	if flagReplayDelay > 0 {
		delay = flagReplayDelay
	}

	if plain {
		printFrames(frames, delay)
		return nil
	}
	return tui.RunReplay(lvl.Title(), frames, delay, tui.ThemeByName(flagReplayTheme))
}

// printFrames writes every frame to stdout, pausing between them.
func printFrames(frames []*core.State, delay time.Duration) {
	for i, frame := range frames {
		if i > 0 {
			time.Sleep(delay)
			fmt.Println()
		}
		label := "start"
		if n := len(frame.Actions); n > 0 {
			a := frame.Actions[n-1]
			label = fmt.Sprintf("push %d: ball %d %s", n, a.Ball, strings.ToLower(a.Dir.String()))
		}
		fmt.Println(label)
		fmt.Print(core.RenderBoard(frame))
	}
	if len(frames) > 0 && frames[len(frames)-1].Solved() {
		fmt.Println("solved")
	}
}
