package config

import (
	_ "embed"
)

//go:embed defaults/horde.yaml
var defaultHordeYAML []byte

// DefaultHordeConfig returns the default horde configuration.
func DefaultHordeConfig() HordeConfig {
	return HordeConfig{
		World: HordeWorld{
			Width:  1024,
			Height: 768,
		},
		Player: HordePlayer{
			Speed:  200,
			Health: 100,
			Size:   32,
		},
		Enemy: HordeEnemy{
			Speed:             100,
			Health:            10,
			Size:              32,
			Pool:              256,
			ContactDamage:     5,
			ContactCooldownMs: 500,
		},
		Projectile: HordeProjectile{
			Speed:  300,
			Damage: 10,
			Size:   8,
			Pool:   64,
		},
		Melee: HordeMelee{
			Range:      100,
			Damage:     10,
			Offset:     30,
			Size:       50,
			LifetimeMs: 200,
		},
		Spawner: HordeSpawner{
			IntervalMs:    2000,
			MinIntervalMs: 250,
			MaxActive:     50,
			EscalateEvery: 5,
			IntervalDecay: 0.9,
			MaxActiveStep: 5,
			Placement:     PlacementUpperHalf,
		},
		Input: HordeInput{
			HoldTicks: 8,
			Mouse:     true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "horde", "horde_sandbox":
		return defaultHordeYAML
	default:
		return nil
	}
}
