package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-horde/internal/core"
	"github.com/vovakirdan/tui-horde/internal/games/horde"
)

var (
	flagRuns     int
	flagTicks    int
	flagSeedBase int64
	flagParallel int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run headless autopilot sessions",
	Long: `Runs seeded sessions without a terminal. An autopilot circle-strafes and
attacks the nearest enemy; each run reports kills, waves reached, shots fired
and how often the enemy or projectile pools were saturated.

Runs are independent and execute concurrently. The same seeds and config
always produce the same report.

Examples:
  horde bench
  horde bench --runs 16 --ticks 72000 --parallel 4
  horde bench --difficulty hard --seed-base 100`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	addConfigFlags(benchCmd)
	benchCmd.Flags().IntVar(&flagRuns, "runs", 4, "Number of sessions")
	benchCmd.Flags().IntVar(&flagTicks, "ticks", 36000, "Maximum ticks per session")
	benchCmd.Flags().Int64Var(&flagSeedBase, "seed-base", 1, "Seed of the first run; run i uses seed-base+i")
	benchCmd.Flags().IntVar(&flagParallel, "parallel", runtime.NumCPU(), "Sessions simulated at once")
}

type benchRun struct {
	id     string
	result horde.RunResult
}

func runBench(cmd *cobra.Command, args []string) error {
	if flagRuns < 1 || flagTicks < 1 {
		return errors.New("--runs and --ticks must be positive")
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, preset, err := effectiveConfig()
	if err != nil {
		return err
	}
	simCfg := horde.SimConfig(cfg)
	dt := core.RuntimeConfig{TickRate: flagFPS}.TickDuration()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("bench started", "runs", flagRuns, "ticks", flagTicks, "difficulty", preset, "parallel", flagParallel)
	start := time.Now()

	runs := make([]benchRun, flagRuns)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(flagParallel, 1))
	for i := range runs {
		seed := flagSeedBase + int64(i)
		id := uuid.NewString()
		g.Go(func() error {
			l := logger.With("run", id, "seed", seed)
			res, err := horde.RunHeadless(gctx, simCfg, seed, flagTicks, dt, l)
			if err != nil {
				return fmt.Errorf("run %s: %w", id, err)
			}
			l.Info("run finished", "ticks", res.Ticks, "kills", res.Kills, "wave", res.Wave, "elapsed", res.Elapsed)
			runs[i] = benchRun{id: id, result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("bench aborted", "err", err)
		return err
	}

	printBench(cmd.OutOrStdout(), runs, dt, time.Since(start))
	return nil
}

func printBench(w io.Writer, runs []benchRun, dt time.Duration, wall time.Duration) {
	fmt.Fprintln(w, headerStyle.Render("Bench results:"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-8s  %6s  %8s  %6s  %6s  %6s  %5s  %5s  %7s  %6s  %s\n",
		"Run", "Seed", "Sim", "Kills", "Melee", "Shots", "Drop", "Wave", "Peak", "Miss", "Result")

	var kills, shots, ticks int
	for _, r := range runs {
		res := r.result
		outcome := "alive"
		if res.GameOver {
			outcome = "dead"
		}
		simTime := time.Duration(res.Ticks) * dt
		fmt.Fprintf(w, "  %-8s  %6d  %8s  %6d  %6d  %6d  %5d  %5d  %7d  %6d  %s\n",
			r.id[:8], res.Seed, simTime.Truncate(time.Second), res.Kills, res.MeleeKills,
			res.Shots, res.Dropped, res.Wave, res.PeakEnemies, res.MissedSpawns, outcome)
		kills += res.Kills
		shots += res.Shots
		ticks += res.Ticks
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %d runs, %d ticks, %d kills, %d shots in %s (%.0f ticks/s)\n",
		len(runs), ticks, kills, shots, wall.Truncate(time.Millisecond), float64(ticks)/wall.Seconds())
}
