package horde

import (
	"github.com/vovakirdan/tui-horde/internal/config"
	"github.com/vovakirdan/tui-horde/internal/core"
	"github.com/vovakirdan/tui-horde/internal/games/horde/sim"
)

// SimConfig converts a loaded configuration into simulation tuning. The
// player starts in the centre of the world.
func SimConfig(c config.HordeConfig) sim.Config {
	placement := sim.PlaceUpperHalf
	if c.Spawner.Placement == config.PlacementEdges {
		placement = sim.PlaceEdges
	}

	return sim.Config{
		WorldW: c.World.Width,
		WorldH: c.World.Height,

		PlayerStart: core.V(c.World.Width/2, c.World.Height/2),
		PlayerSpeed: c.Player.Speed,
		PlayerHP:    c.Player.Health,
		PlayerSize:  c.Player.Size,

		EnemySpeed:      c.Enemy.Speed,
		EnemyHP:         c.Enemy.Health,
		EnemySize:       c.Enemy.Size,
		EnemyPool:       c.Enemy.Pool,
		ContactDamage:   c.Enemy.ContactDamage,
		ContactCooldown: c.Enemy.ContactCooldown(),

		ProjectileSpeed:  c.Projectile.Speed,
		ProjectileDamage: c.Projectile.Damage,
		ProjectileSize:   c.Projectile.Size,
		ProjectilePool:   c.Projectile.Pool,

		MeleeRange:    c.Melee.Range,
		MeleeDamage:   c.Melee.Damage,
		MeleeOffset:   c.Melee.Offset,
		MeleeSize:     c.Melee.Size,
		MeleeLifetime: c.Melee.Lifetime(),

		SpawnInterval:    c.Spawner.Interval(),
		SpawnMinInterval: c.Spawner.MinInterval(),
		SpawnMaxActive:   c.Spawner.MaxActive,
		EscalateEvery:    c.Spawner.EscalateEvery,
		IntervalDecay:    c.Spawner.IntervalDecay,
		MaxActiveStep:    c.Spawner.MaxActiveStep,
		Placement:        placement,
	}
}
