package sim

import (
	"github.com/vovakirdan/tui-horde/internal/core"
)

// attack resolves one attack trigger toward target. Targets within melee
// range get a melee swing, anything further a projectile; never both.
func (w *World) attack(target core.Vec2) Attack {
	p := &w.player
	angle := p.Pos.AngleTo(target)
	facing := FacingFromAngle(angle)
	w.face(facing)

	if p.Pos.Dist(target) <= w.cfg.MeleeRange {
		return w.melee(facing)
	}
	return w.fire(angle, facing)
}

// fire launches a projectile from the player along angle. A saturated
// pool drops the shot silently.
func (w *World) fire(angle float64, facing Facing) Attack {
	rec := Attack{Kind: AttackRanged, Facing: facing}
	h, b, ok := w.projectiles.Acquire()
	if !ok {
		rec.Dropped = true
		return rec
	}
	b.Pos = w.player.Pos
	b.Rotation = angle
	b.Vel = core.FromAngle(angle, b.MoveSpeed)
	b.Hit = false

	ref := EntityRef{Kind: KindProjectile, Handle: h}
	w.host.SetTexture(ref, TextureBullet)
	w.host.SetVisible(ref, true)
	w.shots++
	rec.Projectile = h
	return rec
}

// melee creates a hitbox in front of the player and damages every enemy it
// overlaps right away. The hitbox is removed once its lifetime passes,
// whether or not anything was hit.
func (w *World) melee(facing Facing) Attack {
	center := w.player.Pos.Add(facing.Offset().Scale(w.cfg.MeleeOffset))
	box := core.BoxAround(center, w.cfg.MeleeSize, w.cfg.MeleeSize)

	hits := 0
	w.enemies.Each(func(h Handle, e *Enemy) {
		if !box.Overlaps(w.enemyBox(e)) {
			return
		}
		hits++
		w.damageEnemy(h, e, w.cfg.MeleeDamage, SourceMelee)
	})

	w.nextHitbox++
	w.hitboxes = append(w.hitboxes, Hitbox{
		ID:        w.nextHitbox,
		Box:       box,
		Facing:    facing,
		ExpiresAt: w.now + w.cfg.MeleeLifetime,
		Hits:      hits,
	})
	w.host.SetVisible(EntityRef{Kind: KindHitbox, Handle: Handle{Index: w.nextHitbox}}, true)
	return Attack{Kind: AttackMelee, Facing: facing, Hits: hits}
}

// damageEnemy subtracts dmg and removes the enemy in the same call when its
// health reaches zero.
func (w *World) damageEnemy(h Handle, e *Enemy, dmg int, src DamageSource) {
	e.Health -= dmg
	if e.Health > 0 {
		return
	}
	w.step.Kills = append(w.step.Kills, Kill{Enemy: h, Pos: e.Pos, Source: src})
	w.enemies.Release(h)
	w.host.SetVisible(EntityRef{Kind: KindEnemy, Handle: h}, false)
	w.kills++
}

// recycle deactivates a projectile and returns it to the pool.
func (w *World) recycle(h Handle) {
	if !w.projectiles.Release(h) {
		return
	}
	w.host.SetVisible(EntityRef{Kind: KindProjectile, Handle: h}, false)
	w.step.Recycled++
}

// moveProjectiles integrates every active projectile and queues a boundary
// event for each one whose body left the world.
func (w *World) moveProjectiles() {
	bounds := w.cfg.Bounds()
	w.projectiles.Each(func(h Handle, b *Projectile) {
		b.Pos = integrate(b.Pos, b.Vel, w.dt)
		if !w.projectileBox(b).Inside(bounds) {
			w.Post(BoundaryCrossed{Projectile: h})
		}
	})
}

// detectOverlaps queues an Overlap event for every touching
// projectile/enemy pair, including projectiles that already hit.
func (w *World) detectOverlaps() {
	w.projectiles.Each(func(ph Handle, b *Projectile) {
		pb := w.projectileBox(b)
		w.enemies.Each(func(eh Handle, e *Enemy) {
			if pb.Overlaps(w.enemyBox(e)) {
				w.Post(Overlap{Projectile: ph, Enemy: eh})
			}
		})
	})
}

// onBoundary recycles a projectile that left the world if it is still
// active.
func (w *World) onBoundary(ev BoundaryCrossed) {
	w.recycle(ev.Projectile)
}

// onOverlap applies a projectile hit. The Hit flag guards against a second
// report for the same projectile; the projectile is recycled whether or not
// the enemy died.
func (w *World) onOverlap(ev Overlap) {
	b, ok := w.projectiles.Get(ev.Projectile)
	if !ok || b.Hit {
		return
	}
	e, ok := w.enemies.Get(ev.Enemy)
	if !ok {
		return
	}
	b.Hit = true
	w.damageEnemy(ev.Enemy, e, b.Damage, SourceProjectile)
	w.recycle(ev.Projectile)
}

// contact applies enemy body contact damage to the player.
func (w *World) contact() {
	if w.cfg.ContactDamage <= 0 {
		return
	}
	pb := core.BoxAround(w.player.Pos, w.cfg.PlayerSize, w.cfg.PlayerSize)
	w.enemies.Each(func(_ Handle, e *Enemy) {
		if !pb.Overlaps(w.enemyBox(e)) {
			return
		}
		if e.touched && w.now-e.lastContact < w.cfg.ContactCooldown {
			return
		}
		e.touched = true
		e.lastContact = w.now
		w.player.Health -= w.cfg.ContactDamage
		w.step.PlayerHits++
	})
}

// expireHitboxes drops every hitbox whose lifetime has passed. Removal does
// not depend on what the hitbox hit.
func (w *World) expireHitboxes() {
	kept := w.hitboxes[:0]
	for _, hb := range w.hitboxes {
		if w.now >= hb.ExpiresAt {
			w.host.SetVisible(EntityRef{Kind: KindHitbox, Handle: Handle{Index: hb.ID}}, false)
			continue
		}
		kept = append(kept, hb)
	}
	w.hitboxes = kept
}

func (w *World) enemyBox(e *Enemy) core.Box {
	return core.BoxAround(e.Pos, w.cfg.EnemySize, w.cfg.EnemySize)
}

func (w *World) projectileBox(b *Projectile) core.Box {
	return core.BoxAround(b.Pos, w.cfg.ProjectileSize, w.cfg.ProjectileSize)
}
