// Package sim is the frame-update simulation of the horde game: one player,
// a pool of pursuing enemies and a pool of projectiles, advanced one tick at
// a time by Step.
//
// A World is single-threaded and owned by whoever calls Step. Host
// callbacks are modelled as Events posted with Post and drained inside Step
// in a fixed order:
//
//	input (pointer events) -> player movement -> facing -> attacks
//	-> spawner -> enemy pursuit -> projectile motion
//	-> boundary events -> overlap events -> contact -> hitbox expiry
//
// The spawner timer and melee hitbox lifetimes run on the World's own clock,
// on the same logical thread as the frame update. Nothing in this package
// returns errors: exhausted pools, a missing pointer or a degenerate angle
// all mean that nothing happens this tick.
package sim

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-horde/internal/core"
)

// World is the simulation context. It is the single owner of the player and
// both pools.
type World struct {
	cfg  Config
	host Host
	log  *log.Logger
	seed int64
	rng  *rand.Rand

	player      Player
	enemies     *Pool[Enemy]
	projectiles *Pool[Projectile]
	hitboxes    []Hitbox
	nextHitbox  int
	spawner     Spawner

	inbox []Event
	step  Report // report under construction

	tick     uint64
	now      time.Duration
	dt       time.Duration
	kills    int
	shots    int
	gameOver bool
}

// Option configures a World.
type Option func(*World)

// WithHost routes visual state changes to h.
func WithHost(h Host) Option {
	return func(w *World) {
		if h != nil {
			w.host = h
		}
	}
}

// WithLogger enables debug logging of lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// WithSeed seeds the spawn placement RNG.
func WithSeed(seed int64) Option {
	return func(w *World) {
		w.seed = seed
	}
}

// New creates a World in its initial state.
func New(cfg Config, opts ...Option) *World {
	w := &World{
		cfg:  cfg,
		host: NopHost{},
		log:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.enemies = NewPool(cfg.EnemyPool, func(e *Enemy) {
		*e = Enemy{MoveSpeed: cfg.EnemySpeed, Health: cfg.EnemyHP}
	})
	w.projectiles = NewPool(cfg.ProjectilePool, func(b *Projectile) {
		*b = Projectile{MoveSpeed: cfg.ProjectileSpeed, Damage: cfg.ProjectileDamage}
	})
	w.Reset(w.seed)
	return w
}

// Reset restarts the session with a new seed. Pools keep their storage.
func (w *World) Reset(seed int64) {
	w.seed = seed
	w.rng = rand.New(rand.NewSource(seed))
	w.player = Player{
		Pos:       w.cfg.PlayerStart,
		MoveSpeed: w.cfg.PlayerSpeed,
		Health:    w.cfg.PlayerHP,
		Facing:    FacingRight,
	}
	w.enemies.Clear()
	w.projectiles.Clear()
	w.hitboxes = w.hitboxes[:0]
	w.nextHitbox = 0
	w.spawner = NewSpawner(w.cfg)
	w.inbox = w.inbox[:0]
	w.tick = 0
	w.now = 0
	w.kills = 0
	w.shots = 0
	w.gameOver = false

	w.host.SetTexture(PlayerRef, w.player.Facing.Texture())
	w.host.SetVisible(PlayerRef, true)
}

// Post queues an event for the next Step.
func (w *World) Post(ev Event) {
	w.inbox = append(w.inbox, ev)
}

// Step advances the simulation by dt. Once the game is over it does
// nothing and returns an empty report.
func (w *World) Step(in Input, dt time.Duration) Report {
	if w.gameOver {
		w.inbox = w.inbox[:0]
		return Report{Tick: w.tick, Now: w.now}
	}
	if dt < 0 {
		dt = 0
	}
	w.tick++
	w.now += dt
	w.dt = dt
	w.step = Report{Tick: w.tick, Now: w.now}

	targets := w.sampleInput(in)

	w.movePlayer(in, dt)
	w.updateFacing()
	for _, t := range targets {
		w.step.Attacks = append(w.step.Attacks, w.attack(t))
	}

	w.runSpawner(&w.step)
	w.chase(dt)

	w.moveProjectiles()
	w.detectOverlaps()
	w.resolveCombat()
	w.contact()
	w.expireHitboxes()

	if w.player.Health <= 0 {
		w.gameOver = true
		w.step.GameOverNow = true
		w.log.Info("game over", "tick", w.tick, "kills", w.kills, "wave", w.spawner.Wave)
	}

	rep := w.step
	w.step = Report{}
	return rep
}

// sampleInput drains pointer events from the inbox, leaving combat events
// queued. It returns the attack targets triggered this tick in order.
func (w *World) sampleInput(in Input) []core.Vec2 {
	var targets []core.Vec2
	rest := w.inbox[:0]
	for _, ev := range w.inbox {
		switch ev := ev.(type) {
		case PointerMoved:
			w.setPointer(ev.Pos)
		case PointerDown:
			w.setPointer(ev.Pos)
			targets = append(targets, ev.Pos)
		default:
			rest = append(rest, ev)
		}
	}
	w.inbox = rest

	if in.Attack && w.player.Pointer != nil {
		targets = append(targets, *w.player.Pointer)
	}
	return targets
}

func (w *World) setPointer(pos core.Vec2) {
	p := pos
	w.player.Pointer = &p
}

// updateFacing turns the player toward the pointer, if there is one.
func (w *World) updateFacing() {
	if w.player.Pointer == nil {
		return
	}
	w.face(FacingFromAngle(w.player.Pos.AngleTo(*w.player.Pointer)))
}

// face applies f, telling the host only when the texture changes.
func (w *World) face(f Facing) {
	if w.player.Facing == f {
		return
	}
	w.player.Facing = f
	w.host.SetTexture(PlayerRef, f.Texture())
}

// resolveCombat drains combat events: boundary crossings first, then
// overlaps, each in arrival order.
func (w *World) resolveCombat() {
	events := w.inbox
	w.inbox = nil
	for _, ev := range events {
		if b, ok := ev.(BoundaryCrossed); ok {
			w.onBoundary(b)
		}
	}
	for _, ev := range events {
		if o, ok := ev.(Overlap); ok {
			w.onOverlap(o)
		}
	}
	w.inbox = events[:0]
}

// SpawnEnemyAt activates an enemy at pos outside of the wave timer. It
// reports false when the enemy pool is saturated.
func (w *World) SpawnEnemyAt(pos core.Vec2) (Handle, bool) {
	return w.spawnEnemy(pos)
}

// Config returns the configuration the World was built with.
func (w *World) Config() Config {
	return w.cfg
}

// Player returns a copy of the player.
func (w *World) Player() Player {
	p := w.player
	if p.Pointer != nil {
		ptr := *p.Pointer
		p.Pointer = &ptr
	}
	return p
}

// Enemy returns a copy of the enemy behind h, if it is alive.
func (w *World) Enemy(h Handle) (Enemy, bool) {
	e, ok := w.enemies.Get(h)
	if !ok {
		return Enemy{}, false
	}
	return *e, true
}

// Projectile returns a copy of the projectile behind h, if it is active.
func (w *World) Projectile(h Handle) (Projectile, bool) {
	b, ok := w.projectiles.Get(h)
	if !ok {
		return Projectile{}, false
	}
	return *b, true
}

// EachEnemy calls fn with a copy of every active enemy in slot order.
func (w *World) EachEnemy(fn func(Handle, Enemy)) {
	w.enemies.Each(func(h Handle, e *Enemy) { fn(h, *e) })
}

// EachProjectile calls fn with a copy of every active projectile.
func (w *World) EachProjectile(fn func(Handle, Projectile)) {
	w.projectiles.Each(func(h Handle, b *Projectile) { fn(h, *b) })
}

// Hitboxes returns the melee hitboxes still alive.
func (w *World) Hitboxes() []Hitbox {
	out := make([]Hitbox, len(w.hitboxes))
	copy(out, w.hitboxes)
	return out
}

// Spawner returns a copy of the spawner state.
func (w *World) Spawner() Spawner {
	return w.spawner
}

// EnemyCount returns the number of active enemies.
func (w *World) EnemyCount() int { return w.enemies.Active() }

// ProjectileCount returns the number of active projectiles.
func (w *World) ProjectileCount() int { return w.projectiles.Active() }

// Tick returns the number of steps run since the last reset.
func (w *World) Tick() uint64 { return w.tick }

// Now returns the simulation clock.
func (w *World) Now() time.Duration { return w.now }

// Kills returns the number of enemies removed since the last reset.
func (w *World) Kills() int { return w.kills }

// Shots returns the number of projectiles fired since the last reset.
func (w *World) Shots() int { return w.shots }

// GameOver reports whether the player's health ran out.
func (w *World) GameOver() bool { return w.gameOver }
