package sim

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-horde/internal/core"
)

const epsilon = 1e-9

func TestInputVelocityAllCombinations(t *testing.T) {
	const speed = 200.0

	for mask := 0; mask < 16; mask++ {
		in := Input{
			Up:    mask&1 != 0,
			Down:  mask&2 != 0,
			Left:  mask&4 != 0,
			Right: mask&8 != 0,
		}
		v := InputVelocity(in, speed)

		x, y := 0.0, 0.0
		if in.Right {
			x++
		}
		if in.Left {
			x--
		}
		if in.Down {
			y++
		}
		if in.Up {
			y--
		}

		if x == 0 && y == 0 {
			if !v.IsZero() {
				t.Errorf("%+v: expected zero velocity, got %v", in, v)
			}
			continue
		}
		if math.Abs(v.Len()-speed) > epsilon {
			t.Errorf("%+v: |v| = %v, expected %v", in, v.Len(), speed)
		}
		if math.Signbit(v.X) != math.Signbit(x) && x != 0 {
			t.Errorf("%+v: x direction wrong, v = %v", in, v)
		}
		if math.Signbit(v.Y) != math.Signbit(y) && y != 0 {
			t.Errorf("%+v: y direction wrong, v = %v", in, v)
		}
	}
}

func TestInputVelocityDiagonal(t *testing.T) {
	v := InputVelocity(Input{Up: true, Right: true}, 200)
	want := 200 / math.Sqrt2
	if math.Abs(v.X-want) > epsilon || math.Abs(v.Y+want) > epsilon {
		t.Errorf("up+right = %v, expected (%.3f, %.3f)", v, want, -want)
	}
}

func TestPursuitVelocity(t *testing.T) {
	v := PursuitVelocity(core.V(0, 0), core.V(0, 50), 100)
	if math.Abs(v.X) > epsilon || math.Abs(v.Y-100) > epsilon {
		t.Errorf("pursuit = %v, expected (0, 100)", v)
	}

	v = PursuitVelocity(core.V(10, 10), core.V(-20, -30), 100)
	if math.Abs(v.Len()-100) > epsilon {
		t.Errorf("|pursuit| = %v, expected 100", v.Len())
	}
}

func TestPlayerMovesAndStaysInWorld(t *testing.T) {
	w := New(DefaultConfig())
	start := w.Player().Pos

	w.Step(Input{Right: true}, 500*time.Millisecond)
	if got := w.Player().Pos.X; math.Abs(got-(start.X+100)) > epsilon {
		t.Errorf("player x = %v, expected %v", got, start.X+100)
	}

	w.Step(Input{Up: true, Left: true}, 0)
	if w.Player().Pos.X != start.X+100 {
		t.Error("zero dt should not move the player")
	}

	// Hold right long enough to hit the wall.
	for i := 0; i < 10; i++ {
		w.Step(Input{Right: true}, time.Second)
	}
	p := w.Player()
	if p.Pos.X != 1024-16 {
		t.Errorf("player x = %v, expected clamp at %v", p.Pos.X, 1024-16)
	}
	if p.Vel.X != 200 {
		t.Errorf("velocity still reflects input, got %v", p.Vel)
	}

	w.Step(Input{}, time.Second)
	if !w.Player().Vel.IsZero() {
		t.Error("no input should stop the player")
	}
}

func TestEnemiesPursuePlayer(t *testing.T) {
	w := New(DefaultConfig())
	target := w.Player().Pos

	h, ok := w.SpawnEnemyAt(core.V(target.X, target.Y-300))
	if !ok {
		t.Fatal("spawn failed")
	}
	before, _ := w.Enemy(h)

	w.Step(Input{}, time.Second)

	after, ok := w.Enemy(h)
	if !ok {
		t.Fatal("enemy should still be alive")
	}
	if math.Abs(after.Vel.Len()-100) > epsilon {
		t.Errorf("enemy speed = %v, expected 100", after.Vel.Len())
	}
	if d0, d1 := before.Pos.Dist(target), after.Pos.Dist(target); math.Abs(d0-d1-100) > 1e-6 {
		t.Errorf("enemy closed %v units, expected 100", d0-d1)
	}
}
