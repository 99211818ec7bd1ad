package horde

import (
	"context"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-horde/internal/core"
	"github.com/vovakirdan/tui-horde/internal/games/horde/sim"
)

// Autopilot plays a World without a human. It strafes in a slow circle and
// attacks the nearest enemy every FireEvery ticks.
type Autopilot struct {
	FireEvery   int // ticks between attacks, at least 1
	PeriodTicks int // ticks per full strafe circle

	tick int
}

// NewAutopilot returns an autopilot with the stock cadence.
func NewAutopilot() *Autopilot {
	return &Autopilot{FireEvery: 10, PeriodTicks: 240}
}

// Drive posts this tick's attack, if any, and returns the movement input.
func (a *Autopilot) Drive(w *sim.World) sim.Input {
	a.tick++

	period := core.Max(a.PeriodTicks, 1)
	angle := 2 * math.Pi * float64(a.tick%period) / float64(period)
	in := inputToward(core.FromAngle(angle, 1))

	if a.tick%core.Max(a.FireEvery, 1) == 0 {
		if target, ok := nearestEnemy(w); ok {
			w.Post(sim.PointerDown{Pos: target})
		}
	}
	return in
}

// inputToward quantises dir to the digital input pointing closest to it.
func inputToward(dir core.Vec2) sim.Input {
	const dead = 0.38 // ~sin(22.5°)
	return sim.Input{
		Right: dir.X > dead,
		Left:  dir.X < -dead,
		Down:  dir.Y > dead,
		Up:    dir.Y < -dead,
	}
}

func nearestEnemy(w *sim.World) (core.Vec2, bool) {
	from := w.Player().Pos
	best := math.Inf(1)
	var target core.Vec2
	w.EachEnemy(func(_ sim.Handle, e sim.Enemy) {
		if d := from.Dist(e.Pos); d < best {
			best = d
			target = e.Pos
		}
	})
	return target, !math.IsInf(best, 1)
}

// RunResult summarises one headless session.
type RunResult struct {
	Seed         int64
	Ticks        int // ticks actually simulated
	Kills        int
	MeleeKills   int
	Shots        int
	Dropped      int // shots lost to a saturated projectile pool
	Wave         int
	PeakEnemies  int
	MissedSpawns int // spawner ticks that produced no enemy
	GameOver     bool
	Elapsed      time.Duration
}

// RunHeadless simulates up to ticks steps of dt with an Autopilot. It stops
// early on game over and returns ctx.Err() if the context is cancelled.
func RunHeadless(ctx context.Context, cfg sim.Config, seed int64, ticks int, dt time.Duration, l *log.Logger) (RunResult, error) {
	w := sim.New(cfg, sim.WithSeed(seed), sim.WithLogger(l))
	pilot := NewAutopilot()
	res := RunResult{Seed: seed}
	start := time.Now()

	for i := 0; i < ticks; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				res.Elapsed = time.Since(start)
				return res, err
			}
		}

		rep := w.Step(pilot.Drive(w), dt)
		res.Ticks++

		for _, a := range rep.Attacks {
			if a.Dropped {
				res.Dropped++
			}
		}
		for _, k := range rep.Kills {
			if k.Source == sim.SourceMelee {
				res.MeleeKills++
			}
		}
		for _, wv := range rep.Waves {
			if !wv.Spawned {
				res.MissedSpawns++
			}
		}
		res.PeakEnemies = core.Max(res.PeakEnemies, w.EnemyCount())

		if rep.GameOverNow {
			break
		}
	}

	res.Kills = w.Kills()
	res.Shots = w.Shots()
	res.Wave = w.Spawner().Wave
	res.GameOver = w.GameOver()
	res.Elapsed = time.Since(start)
	return res, nil
}
