package sim

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-horde/internal/core"
)

// maxCatchUp bounds how many spawner ticks one Step may fire after a long
// frame.
const maxCatchUp = 8

// Spawner is the wave timer. Every tick it may spawn one enemy, advances
// the wave count and, every EscalateEvery waves, shortens the interval and
// raises the enemy cap.
type Spawner struct {
	Interval  time.Duration
	MaxActive int
	Wave      int

	minInterval   time.Duration
	escalateEvery int
	decay         float64
	capStep       int

	nextAt time.Duration
}

// minTimerStep is the shortest interval the timer accepts.
const minTimerStep = time.Millisecond

// NewSpawner builds a spawner in its initial state (wave 1). The first
// tick is due one interval after start. A non-positive interval falls back
// to the floor, or to one millisecond when there is no usable floor.
func NewSpawner(cfg Config) Spawner {
	interval := cfg.SpawnInterval
	if interval <= 0 {
		interval = max(cfg.SpawnMinInterval, minTimerStep)
	}
	return Spawner{
		Interval:      interval,
		MaxActive:     cfg.SpawnMaxActive,
		Wave:          1,
		minInterval:   max(cfg.SpawnMinInterval, minTimerStep),
		escalateEvery: cfg.EscalateEvery,
		decay:         cfg.IntervalDecay,
		capStep:       cfg.MaxActiveStep,
		nextAt:        interval,
	}
}

// NextAt returns the sim time of the next due tick.
func (s *Spawner) NextAt() time.Duration {
	return s.nextAt
}

// Tick runs one wave given the current active enemy count. It reports
// whether an enemy should be spawned and whether difficulty escalated.
//
// The wave count is incremented before the escalation check, so the
// escalation happens on the tick that makes Wave a multiple of
// EscalateEvery: from wave 1 that is the 4th tick, and after 5 ticks
// Wave is 6 with exactly one escalation applied.
func (s *Spawner) Tick(active int) (spawn, escalated bool) {
	spawn = active < s.MaxActive
	s.Wave++
	if s.escalateEvery > 0 && s.Wave%s.escalateEvery == 0 {
		s.escalate()
		escalated = true
	}
	return spawn, escalated
}

// escalate shortens the interval toward the floor. It never lengthens it,
// even when the interval already starts below the floor.
func (s *Spawner) escalate() {
	next := time.Duration(float64(s.Interval) * s.decay)
	if next < s.minInterval {
		next = min(s.Interval, s.minInterval)
	}
	s.Interval = next
	s.MaxActive += s.capStep
}

// due reports whether a tick is due at now and, if so, schedules the
// following one. The next fire time is taken from the interval in effect
// before the tick runs, so an escalated interval is first used one wave
// later.
func (s *Spawner) due(now time.Duration) bool {
	if now < s.nextAt {
		return false
	}
	s.nextAt += s.Interval
	return true
}

// spawnPosition picks where a new enemy appears.
func spawnPosition(rng *rand.Rand, cfg Config) core.Vec2 {
	switch cfg.Placement {
	case PlaceEdges:
		y := rng.Float64() * cfg.WorldH
		if rng.Intn(2) == 0 {
			return core.V(-cfg.EnemySize/2, y)
		}
		return core.V(cfg.WorldW+cfg.EnemySize/2, y)
	default:
		return core.V(rng.Float64()*cfg.WorldW, rng.Float64()*cfg.WorldH/2)
	}
}

// runSpawner fires every due spawner tick, up to maxCatchUp.
func (w *World) runSpawner(rep *Report) {
	for i := 0; i < maxCatchUp && w.spawner.due(w.now); i++ {
		spawn, escalated := w.spawner.Tick(w.enemies.Active())
		wave := Wave{
			Escalated: escalated,
			Interval:  w.spawner.Interval,
			MaxActive: w.spawner.MaxActive,
			Number:    w.spawner.Wave,
		}
		if spawn {
			if h, ok := w.spawnEnemy(spawnPosition(w.rng, w.cfg)); ok {
				wave.Spawned = true
				wave.Enemy = h
			}
		}
		if escalated {
			w.log.Debug("difficulty escalated",
				"wave", wave.Number, "interval", wave.Interval, "max_active", wave.MaxActive)
		}
		rep.Waves = append(rep.Waves, wave)
	}
}

// spawnEnemy activates a pooled enemy at pos. The pool reset restores
// full health and speed. It reports false when the pool is saturated.
func (w *World) spawnEnemy(pos core.Vec2) (Handle, bool) {
	h, e, ok := w.enemies.Acquire()
	if !ok {
		w.log.Debug("enemy pool saturated", "capacity", w.enemies.Cap())
		return Handle{}, false
	}
	e.Pos = pos
	ref := EntityRef{Kind: KindEnemy, Handle: h}
	w.host.SetTexture(ref, TextureEnemy)
	w.host.SetVisible(ref, true)
	return h, true
}
