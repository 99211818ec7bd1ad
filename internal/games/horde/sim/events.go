package sim

import (
	"time"

	"github.com/vovakirdan/tui-horde/internal/core"
)

// Event is a message consumed by the World during Step. Host callbacks
// (pointer, world bounds, overlaps) are all delivered this way so one tick
// always processes them in the same order.
type Event interface {
	isEvent()
}

// PointerMoved records a new pointer position in world coordinates.
type PointerMoved struct {
	Pos core.Vec2
}

// PointerDown records the pointer position and triggers an attack toward it.
type PointerDown struct {
	Pos core.Vec2
}

// BoundaryCrossed reports that a projectile body left the world.
type BoundaryCrossed struct {
	Projectile Handle
}

// Overlap reports one projectile/enemy body pair touching. The same pair
// may be reported more than once; the projectile's Hit flag makes the
// second report a no-op.
type Overlap struct {
	Projectile Handle
	Enemy      Handle
}

func (PointerMoved) isEvent()    {}
func (PointerDown) isEvent()     {}
func (BoundaryCrossed) isEvent() {}
func (Overlap) isEvent()         {}

// Input is the digital input sampled for one step.
type Input struct {
	Up, Down, Left, Right bool
	// Attack triggers an attack toward the last recorded pointer.
	Attack bool
}

// AttackKind tells which path an attack trigger took.
type AttackKind int

const (
	AttackNone AttackKind = iota
	AttackRanged
	AttackMelee
)

// String returns "ranged", "melee" or "none".
func (k AttackKind) String() string {
	switch k {
	case AttackRanged:
		return "ranged"
	case AttackMelee:
		return "melee"
	default:
		return "none"
	}
}

// DamageSource identifies what removed health from an enemy.
type DamageSource int

const (
	SourceProjectile DamageSource = iota
	SourceMelee
)

// Kill records an enemy removed during a step.
type Kill struct {
	Enemy  Handle
	Pos    core.Vec2
	Source DamageSource
}

// Attack records one resolved attack trigger.
type Attack struct {
	Kind       AttackKind
	Facing     Facing
	Projectile Handle // valid when Kind is AttackRanged and Dropped is false
	Dropped    bool   // pool saturated, nothing was created
	Hits       int    // enemies damaged by a melee hitbox
}

// Wave records one spawner tick.
type Wave struct {
	Number    int // wave count after the tick
	Spawned   bool
	Enemy     Handle
	Escalated bool
	Interval  time.Duration
	MaxActive int
}

// Report lists everything that happened during one Step.
type Report struct {
	Tick        uint64
	Now         time.Duration
	Attacks     []Attack
	Waves       []Wave
	Kills       []Kill
	Recycled    int // projectiles recycled this step
	PlayerHits  int // contact hits taken by the player
	GameOverNow bool
}
