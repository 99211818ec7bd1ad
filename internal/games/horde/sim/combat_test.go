package sim

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-horde/internal/core"
)

const frame = time.Second / 60

func newTestWorld(mutate func(*Config)) *World {
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg, WithSeed(1))
}

func TestAttackSelection(t *testing.T) {
	tests := []struct {
		name   string
		offset core.Vec2
		kind   AttackKind
		facing Facing
	}{
		{"close target is melee", core.V(60, 0), AttackMelee, FacingRight},
		{"exactly at range is melee", core.V(100, 0), AttackMelee, FacingRight},
		{"just beyond range is ranged", core.V(100.5, 0), AttackRanged, FacingRight},
		{"far target is ranged", core.V(0, -250), AttackRanged, FacingUp},
		{"diagonal melee", core.V(-40, 40), AttackMelee, FacingDownLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(nil)
			w.Post(PointerDown{Pos: w.Player().Pos.Add(tc.offset)})
			rep := w.Step(Input{}, frame)

			if len(rep.Attacks) != 1 {
				t.Fatalf("expected 1 attack, got %d", len(rep.Attacks))
			}
			a := rep.Attacks[0]
			if a.Kind != tc.kind {
				t.Errorf("Kind = %v, expected %v", a.Kind, tc.kind)
			}
			if a.Facing != tc.facing || w.Player().Facing != tc.facing {
				t.Errorf("facing = %v (player %v), expected %v", a.Facing, w.Player().Facing, tc.facing)
			}

			// Exactly one of the two paths runs.
			switch tc.kind {
			case AttackMelee:
				if w.ProjectileCount() != 0 || len(w.Hitboxes()) != 1 {
					t.Errorf("melee: %d projectiles, %d hitboxes", w.ProjectileCount(), len(w.Hitboxes()))
				}
			case AttackRanged:
				if w.ProjectileCount() != 1 || len(w.Hitboxes()) != 0 {
					t.Errorf("ranged: %d projectiles, %d hitboxes", w.ProjectileCount(), len(w.Hitboxes()))
				}
			}
		})
	}
}

func TestProjectileVelocity(t *testing.T) {
	w := newTestWorld(nil)
	start := w.Player().Pos
	w.Post(PointerDown{Pos: start.Add(core.V(300, 400))})
	rep := w.Step(Input{}, frame)

	b, ok := w.Projectile(rep.Attacks[0].Projectile)
	if !ok {
		t.Fatal("projectile should be active")
	}
	if math.Abs(b.Vel.Len()-300) > epsilon {
		t.Errorf("|vel| = %v, expected 300", b.Vel.Len())
	}
	if math.Abs(b.Vel.X-180) > 1e-6 || math.Abs(b.Vel.Y-240) > 1e-6 {
		t.Errorf("vel = %v, expected (180, 240)", b.Vel)
	}
	if math.Abs(b.Rotation-math.Atan2(400, 300)) > epsilon {
		t.Errorf("Rotation = %v", b.Rotation)
	}
	if b.Hit {
		t.Error("fresh projectile must not be marked hit")
	}
	if b.Damage != 10 {
		t.Errorf("Damage = %d, expected 10", b.Damage)
	}
}

func TestProjectileKillsInSameStep(t *testing.T) {
	w := newTestWorld(nil)
	start := w.Player().Pos
	e, _ := w.SpawnEnemyAt(start.Add(core.V(18, 0)))

	w.Post(PointerDown{Pos: start.Add(core.V(288, 0))})
	rep := w.Step(Input{}, frame)

	if len(rep.Kills) != 1 {
		t.Fatalf("expected 1 kill, got %d", len(rep.Kills))
	}
	if rep.Kills[0].Enemy != e || rep.Kills[0].Source != SourceProjectile {
		t.Errorf("kill = %+v", rep.Kills[0])
	}
	if _, ok := w.Enemy(e); ok {
		t.Error("enemy at zero health should be gone within the same step")
	}
	if w.ProjectileCount() != 0 || rep.Recycled != 1 {
		t.Errorf("projectile should be recycled: count %d recycled %d", w.ProjectileCount(), rep.Recycled)
	}
	if w.Kills() != 1 {
		t.Errorf("Kills() = %d", w.Kills())
	}
}

func TestProjectileHitsOnlyOnce(t *testing.T) {
	w := newTestWorld(func(c *Config) { c.EnemyHP = 20 })
	start := w.Player().Pos
	first, _ := w.SpawnEnemyAt(start.Add(core.V(18, 0)))
	second, _ := w.SpawnEnemyAt(start.Add(core.V(18, 4)))

	w.Post(PointerDown{Pos: start.Add(core.V(288, 0))})
	rep := w.Step(Input{}, frame)

	a, _ := w.Enemy(first)
	b, _ := w.Enemy(second)
	if a.Health != 10 {
		t.Errorf("first enemy health = %d, expected 10", a.Health)
	}
	if b.Health != 20 {
		t.Errorf("second enemy health = %d, expected untouched 20", b.Health)
	}
	if rep.Recycled != 1 || w.ProjectileCount() != 0 {
		t.Error("projectile should be recycled after a non-lethal hit")
	}
}

func TestDuplicateOverlapIsIdempotent(t *testing.T) {
	w := newTestWorld(func(c *Config) { c.EnemyHP = 30 })
	start := w.Player().Pos

	w.Post(PointerDown{Pos: start.Add(core.V(400, 0))})
	rep := w.Step(Input{}, frame)
	p := rep.Attacks[0].Projectile

	e, _ := w.SpawnEnemyAt(core.V(100, 700))
	w.Post(Overlap{Projectile: p, Enemy: e})
	w.Post(Overlap{Projectile: p, Enemy: e})
	rep = w.Step(Input{}, frame)

	got, _ := w.Enemy(e)
	if got.Health != 20 {
		t.Errorf("health = %d, expected a single application (20)", got.Health)
	}
	if rep.Recycled != 1 {
		t.Errorf("Recycled = %d, expected 1", rep.Recycled)
	}

	// A report for the recycled projectile changes nothing.
	w.Post(Overlap{Projectile: p, Enemy: e})
	w.Post(BoundaryCrossed{Projectile: p})
	rep = w.Step(Input{}, frame)
	got, _ = w.Enemy(e)
	if got.Health != 20 || rep.Recycled != 0 {
		t.Errorf("stale events applied: health %d recycled %d", got.Health, rep.Recycled)
	}
}

func TestReusedProjectileSlotIgnoresStaleEvent(t *testing.T) {
	w := newTestWorld(func(c *Config) { c.ProjectilePool = 1 })
	start := w.Player().Pos

	w.Post(PointerDown{Pos: start.Add(core.V(400, 0))})
	old := w.Step(Input{}, frame).Attacks[0].Projectile
	w.Post(BoundaryCrossed{Projectile: old})
	w.Step(Input{}, frame)

	w.Post(PointerDown{Pos: start.Add(core.V(-400, 0))})
	fresh := w.Step(Input{}, frame).Attacks[0].Projectile
	if fresh.Index != old.Index {
		t.Fatalf("expected the single slot to be reused")
	}

	w.Post(BoundaryCrossed{Projectile: old})
	w.Step(Input{}, frame)
	if _, ok := w.Projectile(fresh); !ok {
		t.Error("stale handle recycled the reused slot")
	}
}

func TestProjectileRecycledAtBoundary(t *testing.T) {
	w := newTestWorld(nil)
	start := w.Player().Pos
	w.Post(PointerDown{Pos: start.Add(core.V(400, 0))})
	w.Step(Input{}, frame)

	recycled := 0
	steps := 1
	for ; steps < 200 && w.ProjectileCount() > 0; steps++ {
		recycled += w.Step(Input{}, frame).Recycled
	}

	if w.ProjectileCount() != 0 {
		t.Fatal("projectile never left the world")
	}
	if recycled != 1 {
		t.Errorf("recycled %d times, expected 1", recycled)
	}
	// 508 units at 5 units per step.
	if steps < 100 || steps > 104 {
		t.Errorf("left the world after %d steps", steps)
	}
}

func TestProjectilePoolSaturation(t *testing.T) {
	w := newTestWorld(func(c *Config) { c.ProjectilePool = 2 })
	start := w.Player().Pos
	for i := 0; i < 3; i++ {
		w.Post(PointerDown{Pos: start.Add(core.V(400, float64(i)))})
	}
	rep := w.Step(Input{}, frame)

	if len(rep.Attacks) != 3 {
		t.Fatalf("expected 3 attacks, got %d", len(rep.Attacks))
	}
	if rep.Attacks[0].Dropped || rep.Attacks[1].Dropped || !rep.Attacks[2].Dropped {
		t.Errorf("only the third shot should be dropped: %+v", rep.Attacks)
	}
	if w.ProjectileCount() != 2 || w.Shots() != 2 {
		t.Errorf("count %d shots %d, expected 2/2", w.ProjectileCount(), w.Shots())
	}
}

func TestAttackWithoutPointer(t *testing.T) {
	w := newTestWorld(nil)
	rep := w.Step(Input{Attack: true}, frame)

	if len(rep.Attacks) != 0 || w.ProjectileCount() != 0 || len(w.Hitboxes()) != 0 {
		t.Error("attack with no recorded pointer should do nothing")
	}
	if w.Player().Facing != FacingRight {
		t.Error("facing should keep its default")
	}
}

func TestAttackTowardStoredPointer(t *testing.T) {
	w := newTestWorld(nil)
	start := w.Player().Pos

	w.Post(PointerMoved{Pos: start.Add(core.V(0, 100))})
	rep := w.Step(Input{}, frame)
	if len(rep.Attacks) != 0 {
		t.Fatal("moving the pointer should not attack")
	}
	if w.Player().Facing != FacingDown {
		t.Errorf("facing = %v, expected down", w.Player().Facing)
	}

	rep = w.Step(Input{Attack: true}, frame)
	if len(rep.Attacks) != 1 || rep.Attacks[0].Kind != AttackMelee {
		t.Errorf("expected a melee toward the stored pointer, got %+v", rep.Attacks)
	}
}

func TestMeleeDamagesOverlappingEnemies(t *testing.T) {
	w := newTestWorld(nil)
	start := w.Player().Pos
	inside, _ := w.SpawnEnemyAt(start.Add(core.V(30, 0)))
	behind, _ := w.SpawnEnemyAt(start.Add(core.V(-60, 0)))

	w.Post(PointerDown{Pos: start.Add(core.V(60, 0))})
	rep := w.Step(Input{}, frame)

	if rep.Attacks[0].Hits != 1 {
		t.Errorf("Hits = %d, expected 1", rep.Attacks[0].Hits)
	}
	if _, ok := w.Enemy(inside); ok {
		t.Error("enemy inside the hitbox should be killed")
	}
	if len(rep.Kills) != 1 || rep.Kills[0].Source != SourceMelee {
		t.Errorf("kills = %+v", rep.Kills)
	}
	if e, ok := w.Enemy(behind); !ok || e.Health != 10 {
		t.Error("enemy behind the player should be untouched")
	}

	hb := w.Hitboxes()[0]
	if c := hb.Box.Center(); c != start.Add(core.V(30, 0)) {
		t.Errorf("hitbox centre = %v", c)
	}
	if hb.Box.W != 50 || hb.Box.H != 50 {
		t.Errorf("hitbox size = %vx%v", hb.Box.W, hb.Box.H)
	}
}

func TestMeleeDiagonalOffset(t *testing.T) {
	w := newTestWorld(nil)
	start := w.Player().Pos
	w.Post(PointerDown{Pos: start.Add(core.V(50, 50))})
	w.Step(Input{}, frame)

	hb := w.Hitboxes()
	if len(hb) != 1 {
		t.Fatalf("expected 1 hitbox, got %d", len(hb))
	}
	if c := hb[0].Box.Center(); c != start.Add(core.V(30, 30)) {
		t.Errorf("diagonal hitbox centre = %v, expected offset (30,30)", c)
	}
}

func TestHitboxExpires(t *testing.T) {
	w := newTestWorld(nil)
	w.Post(PointerDown{Pos: w.Player().Pos.Add(core.V(0, -50))})
	w.Step(Input{}, frame)

	expires := w.Hitboxes()[0].ExpiresAt
	if expires != w.Now()+200*time.Millisecond {
		t.Errorf("ExpiresAt = %v, expected now+200ms", expires)
	}

	for w.Now()+frame < expires {
		w.Step(Input{}, frame)
		if len(w.Hitboxes()) != 1 {
			t.Fatalf("hitbox removed early at %v", w.Now())
		}
	}
	w.Step(Input{}, frame)
	if len(w.Hitboxes()) != 0 {
		t.Errorf("hitbox still present at %v, expired at %v", w.Now(), expires)
	}
}

func TestContactDamage(t *testing.T) {
	w := newTestWorld(func(c *Config) { c.ContactDamage = 5 })
	w.SpawnEnemyAt(w.Player().Pos)

	rep := w.Step(Input{}, 100*time.Millisecond)
	if rep.PlayerHits != 1 || w.Player().Health != 95 {
		t.Fatalf("first contact: hits %d health %d", rep.PlayerHits, w.Player().Health)
	}

	for i := 0; i < 4; i++ {
		w.Step(Input{}, 100*time.Millisecond)
	}
	if w.Player().Health != 95 {
		t.Errorf("contact within cooldown applied: health %d", w.Player().Health)
	}

	w.Step(Input{}, 100*time.Millisecond)
	if w.Player().Health != 90 {
		t.Errorf("health = %d after cooldown, expected 90", w.Player().Health)
	}
}

func TestGameOver(t *testing.T) {
	w := newTestWorld(func(c *Config) {
		c.ContactDamage = 5
		c.PlayerHP = 5
	})
	w.SpawnEnemyAt(w.Player().Pos)

	rep := w.Step(Input{}, frame)
	if !rep.GameOverNow || !w.GameOver() {
		t.Fatal("expected game over")
	}

	tick := w.Tick()
	w.Post(PointerDown{Pos: core.V(0, 0)})
	rep = w.Step(Input{Right: true}, frame)
	if w.Tick() != tick || len(rep.Attacks) != 0 || rep.GameOverNow {
		t.Error("Step after game over should do nothing")
	}

	w.Reset(2)
	if w.GameOver() || w.Player().Health != 5 || w.EnemyCount() != 0 {
		t.Error("Reset should restore the initial state")
	}
}
