package sim

import (
	"time"

	"github.com/vovakirdan/tui-horde/internal/core"
)

// Placement selects where the spawner puts new enemies.
type Placement int

const (
	// PlaceUpperHalf spawns uniformly inside the top half of the world.
	PlaceUpperHalf Placement = iota
	// PlaceEdges spawns just outside the left or right world edge.
	PlaceEdges
)

// Config holds every tunable of a World. Sizes are body edge lengths in
// world units; speeds are world units per second.
type Config struct {
	WorldW, WorldH float64

	PlayerStart core.Vec2
	PlayerSpeed float64
	PlayerHP    int
	PlayerSize  float64

	EnemySpeed      float64
	EnemyHP         int
	EnemySize       float64
	EnemyPool       int
	ContactDamage   int
	ContactCooldown time.Duration

	ProjectileSpeed  float64
	ProjectileDamage int
	ProjectileSize   float64
	ProjectilePool   int

	MeleeRange    float64
	MeleeDamage   int
	MeleeOffset   float64
	MeleeSize     float64
	MeleeLifetime time.Duration

	SpawnInterval    time.Duration
	SpawnMinInterval time.Duration
	SpawnMaxActive   int
	EscalateEvery    int // 0 disables escalation
	IntervalDecay    float64
	MaxActiveStep    int
	Placement        Placement
}

// DefaultConfig returns the stock tuning: a 1024×768 world with the player
// in the centre.
func DefaultConfig() Config {
	return Config{
		WorldW: 1024,
		WorldH: 768,

		PlayerStart: core.V(512, 384),
		PlayerSpeed: 200,
		PlayerHP:    100,
		PlayerSize:  32,

		EnemySpeed:      100,
		EnemyHP:         10,
		EnemySize:       32,
		EnemyPool:       256,
		ContactDamage:   0,
		ContactCooldown: 500 * time.Millisecond,

		ProjectileSpeed:  300,
		ProjectileDamage: 10,
		ProjectileSize:   8,
		ProjectilePool:   64,

		MeleeRange:    100,
		MeleeDamage:   10,
		MeleeOffset:   30,
		MeleeSize:     50,
		MeleeLifetime: 200 * time.Millisecond,

		SpawnInterval:    2000 * time.Millisecond,
		SpawnMinInterval: 250 * time.Millisecond,
		SpawnMaxActive:   50,
		EscalateEvery:    5,
		IntervalDecay:    0.9,
		MaxActiveStep:    5,
		Placement:        PlaceUpperHalf,
	}
}

// Bounds returns the world rectangle.
func (c Config) Bounds() core.Box {
	return core.Box{W: c.WorldW, H: c.WorldH}
}
