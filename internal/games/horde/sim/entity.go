package sim

import (
	"time"

	"github.com/vovakirdan/tui-horde/internal/core"
)

// EntityKind tags which arena an EntityRef points into.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindProjectile
	KindHitbox
)

// String returns the kind name used in logs.
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindHitbox:
		return "hitbox"
	default:
		return "unknown"
	}
}

// EntityRef names a single entity for the Host.
type EntityRef struct {
	Kind   EntityKind
	Handle Handle
}

// PlayerRef is the reference of the one Player.
var PlayerRef = EntityRef{Kind: KindPlayer}

// Texture names of pooled entities.
const (
	TextureEnemy  = "enemy"
	TextureBullet = "bullet"
)

// Player is the single controllable entity.
type Player struct {
	Pos       core.Vec2
	Vel       core.Vec2
	MoveSpeed float64
	Health    int
	Facing    Facing

	// Pointer is the last reported target position, nil until the
	// first pointer event.
	Pointer *core.Vec2
}

// Enemy pursues the player. It lives in the enemy pool.
type Enemy struct {
	Pos       core.Vec2
	Vel       core.Vec2
	MoveSpeed float64
	Health    int

	// lastContact is the sim time of this enemy's last contact hit.
	lastContact time.Duration
	touched     bool
}

// Projectile is a short-lived bullet. It lives in the projectile pool.
type Projectile struct {
	Pos       core.Vec2
	Vel       core.Vec2
	Rotation  float64
	Damage    int
	MoveSpeed float64

	// Hit is set by the first damage application and never cleared while
	// the projectile is active.
	Hit bool
}

// Hitbox is an ephemeral melee region. Overlap is tested once, when it is
// created; it lingers only until ExpiresAt for display and cleanup.
type Hitbox struct {
	ID        int
	Box       core.Box
	Facing    Facing
	ExpiresAt time.Duration
	Hits      int // enemies damaged when it was created
}
