package sim

import (
	"time"

	"github.com/vovakirdan/tui-horde/internal/core"
)

// InputVelocity returns the player velocity for the given digital input.
//
// Opposing inputs cancel (x = right - left, y = down - up). A non-zero
// direction is normalised before scaling, so diagonals move at exactly
// speed, never faster. No input yields zero velocity.
func InputVelocity(in Input, speed float64) core.Vec2 {
	var dir core.Vec2
	if in.Right {
		dir.X++
	}
	if in.Left {
		dir.X--
	}
	if in.Down {
		dir.Y++
	}
	if in.Up {
		dir.Y--
	}
	if dir.IsZero() {
		return core.Vec2{}
	}
	return dir.Normalize().Scale(speed)
}

// PursuitVelocity returns the velocity that carries from toward target at
// speed. It is recomputed every tick, with no smoothing.
func PursuitVelocity(from, target core.Vec2, speed float64) core.Vec2 {
	return core.FromAngle(from.AngleTo(target), speed)
}

// integrate advances pos by vel over dt.
func integrate(pos, vel core.Vec2, dt time.Duration) core.Vec2 {
	return pos.Add(vel.Scale(dt.Seconds()))
}

// movePlayer sets the player's velocity from input and moves it, keeping
// its body inside the world.
func (w *World) movePlayer(in Input, dt time.Duration) {
	p := &w.player
	p.Vel = InputVelocity(in, p.MoveSpeed)
	p.Pos = integrate(p.Pos, p.Vel, dt)

	half := w.cfg.PlayerSize / 2
	p.Pos.X = core.ClampF(p.Pos.X, half, w.cfg.WorldW-half)
	p.Pos.Y = core.ClampF(p.Pos.Y, half, w.cfg.WorldH-half)
}

// chase points every active enemy at the player and moves it.
func (w *World) chase(dt time.Duration) {
	target := w.player.Pos
	w.enemies.Each(func(_ Handle, e *Enemy) {
		e.Vel = PursuitVelocity(e.Pos, target, e.MoveSpeed)
		e.Pos = integrate(e.Pos, e.Vel, dt)
	})
}
