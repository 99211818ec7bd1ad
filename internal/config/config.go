// Package config provides YAML-based configuration loading and difficulty
// presets for the horde game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// HordeConfig contains all configuration for the horde game.
type HordeConfig struct {
	World      HordeWorld      `yaml:"world"`
	Player     HordePlayer     `yaml:"player"`
	Enemy      HordeEnemy      `yaml:"enemy"`
	Projectile HordeProjectile `yaml:"projectile"`
	Melee      HordeMelee      `yaml:"melee"`
	Spawner    HordeSpawner    `yaml:"spawner"`
	Input      HordeInput      `yaml:"input"`
}

// HordeWorld defines the playfield in world units.
type HordeWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HordePlayer defines player parameters.
type HordePlayer struct {
	Speed  float64 `yaml:"speed"`
	Health int     `yaml:"health"`
	Size   float64 `yaml:"size"`
}

// HordeEnemy defines enemy parameters.
type HordeEnemy struct {
	Speed             float64 `yaml:"speed"`
	Health            int     `yaml:"health"`
	Size              float64 `yaml:"size"`
	Pool              int     `yaml:"pool"`
	ContactDamage     int     `yaml:"contact_damage"`
	ContactCooldownMs int     `yaml:"contact_cooldown_ms"`
}

// HordeProjectile defines projectile parameters.
type HordeProjectile struct {
	Speed  float64 `yaml:"speed"`
	Damage int     `yaml:"damage"`
	Size   float64 `yaml:"size"`
	Pool   int     `yaml:"pool"`
}

// HordeMelee defines the melee swing.
type HordeMelee struct {
	Range      float64 `yaml:"range"`
	Damage     int     `yaml:"damage"`
	Offset     float64 `yaml:"offset"`
	Size       float64 `yaml:"size"`
	LifetimeMs int     `yaml:"lifetime_ms"`
}

// HordeSpawner defines the wave timer and its escalation.
type HordeSpawner struct {
	IntervalMs    int     `yaml:"interval_ms"`
	MinIntervalMs int     `yaml:"min_interval_ms"`
	MaxActive     int     `yaml:"max_active"`
	EscalateEvery int     `yaml:"escalate_every"` // 0 disables escalation
	IntervalDecay float64 `yaml:"interval_decay"`
	MaxActiveStep int     `yaml:"max_active_step"`
	Placement     string  `yaml:"placement"` // "upper_half" or "edges"
}

// HordeInput defines terminal input handling.
type HordeInput struct {
	HoldTicks int  `yaml:"hold_ticks"` // ticks a key press stays held without repeats
	Mouse     bool `yaml:"mouse"`
}

// Placement names accepted in spawner.placement.
const (
	PlacementUpperHalf = "upper_half"
	PlacementEdges     = "edges"
)

// Interval returns the spawner interval as a duration.
func (s HordeSpawner) Interval() time.Duration {
	return time.Duration(s.IntervalMs) * time.Millisecond
}

// MinInterval returns the interval floor as a duration.
func (s HordeSpawner) MinInterval() time.Duration {
	return time.Duration(s.MinIntervalMs) * time.Millisecond
}

// Lifetime returns the hitbox lifetime as a duration.
func (m HordeMelee) Lifetime() time.Duration {
	return time.Duration(m.LifetimeMs) * time.Millisecond
}

// ContactCooldown returns the per-enemy contact cooldown as a duration.
func (e HordeEnemy) ContactCooldown() time.Duration {
	return time.Duration(e.ContactCooldownMs) * time.Millisecond
}

// Validate reports the first out-of-range value. The returned error wraps
// ErrInvalid.
func (c HordeConfig) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.World.Width > 0 && c.World.Height > 0, "world size must be positive"},
		{c.Player.Speed > 0, "player.speed must be positive"},
		{c.Player.Health > 0, "player.health must be positive"},
		{c.Player.Size > 0, "player.size must be positive"},
		{c.Enemy.Speed > 0, "enemy.speed must be positive"},
		{c.Enemy.Health > 0, "enemy.health must be positive"},
		{c.Enemy.Size > 0, "enemy.size must be positive"},
		{c.Enemy.Pool > 0, "enemy.pool must be positive"},
		{c.Enemy.ContactDamage >= 0, "enemy.contact_damage must not be negative"},
		{c.Enemy.ContactCooldownMs >= 0, "enemy.contact_cooldown_ms must not be negative"},
		{c.Projectile.Speed > 0, "projectile.speed must be positive"},
		{c.Projectile.Damage > 0, "projectile.damage must be positive"},
		{c.Projectile.Size > 0, "projectile.size must be positive"},
		{c.Projectile.Pool > 0, "projectile.pool must be positive"},
		{c.Melee.Range >= 0, "melee.range must not be negative"},
		{c.Melee.Damage > 0, "melee.damage must be positive"},
		{c.Melee.Size > 0, "melee.size must be positive"},
		{c.Melee.LifetimeMs > 0, "melee.lifetime_ms must be positive"},
		{c.Spawner.IntervalMs > 0, "spawner.interval_ms must be positive"},
		{c.Spawner.MinIntervalMs > 0, "spawner.min_interval_ms must be positive"},
		{c.Spawner.MinIntervalMs <= c.Spawner.IntervalMs, "spawner.min_interval_ms must not exceed spawner.interval_ms"},
		{c.Spawner.MaxActive >= 0, "spawner.max_active must not be negative"},
		{c.Spawner.EscalateEvery >= 0, "spawner.escalate_every must not be negative"},
		{c.Spawner.IntervalDecay > 0 && c.Spawner.IntervalDecay <= 1, "spawner.interval_decay must be in (0, 1]"},
		{c.Spawner.MaxActiveStep >= 0, "spawner.max_active_step must not be negative"},
		{c.Input.HoldTicks > 0, "input.hold_ticks must be positive"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: %s: %w", chk.what, ErrInvalid)
		}
	}

	switch c.Spawner.Placement {
	case PlacementUpperHalf, PlacementEdges:
	default:
		return fmt.Errorf("config: unknown spawner.placement %q: %w", c.Spawner.Placement, ErrInvalid)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q: %w", name, ErrInvalid)
}

// IsFixedPreset returns true if the preset disables escalation.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Label returns the preset name for menus and listings.
func (p DifficultyPreset) Label() string {
	if IsFixedPreset(p) {
		return string(p) + " (no escalation)"
	}
	return string(p)
}
