package engine

import "github.com/yoh91asakura/memes-wars-sub001/internal/game"

// collisionResolver detects projectile contacts in a fixed order:
// combatant proximity first, then arena boundary, then obstacles. A
// projectile resolves at most one collision per tick.
type collisionResolver struct {
	arena game.Arena
}

func newCollisionResolver(arena game.Arena) *collisionResolver {
	return &collisionResolver{arena: arena}
}

func (cr *collisionResolver) resolve(m *MatchController) {
	for _, p := range m.projectiles.list {
		if !p.Active {
			continue
		}
		if cr.resolveCombatantHit(m, p) {
			continue
		}
		if cr.resolveBoundary(m, p) {
			continue
		}
		cr.resolveObstacles(m, p)
	}
}

// resolveCombatantHit applies the first proximity hit against an alive
// opposing combatant and consumes the projectile.
func (cr *collisionResolver) resolveCombatantHit(m *MatchController, p *game.Projectile) bool {
	for _, c := range m.combatants {
		if !c.Alive || c.ID == p.OwnerID {
			continue
		}
		if p.Position.Dist(c.Position) >= p.Radius+c.Radius {
			continue
		}

		owner := m.combatant(p.OwnerID)
		if owner != nil {
			owner.Stats.ShotsHit++
		}
		m.emit(game.EventProjectileHit, game.EventPayload{
			ProjectileID: p.ID,
			SourceID:     p.OwnerID,
			TargetID:     c.ID,
			Amount:       p.Damage,
		})

		m.applyDamage(owner, c, p.Damage, true)
		for _, spec := range p.Effects {
			m.effects.apply(m, c, spec, p.OwnerID)
		}
		if owner != nil && owner.Alive {
			if chain := m.synergies.ChainChance(owner.ID); chain > 0 && m.rng.Float64() < chain {
				m.schedule.push(m.now+chainShotDelay, actionFireShot, owner.ID, 0)
			}
			m.applyActivations(m.passives.TriggerPassives(game.TriggerOnHit, owner.ID, p.Damage))
		}

		p.Active = false
		return true
	}
	return false
}

// bounceOrExpire applies the bounce bookkeeping shared by boundaries and
// bouncy obstacles: a contact while bounces remain reflects and consumes
// one; a contact with none left deactivates. With MaxBounces = 2 the third
// contact deactivates the projectile.
func (cr *collisionResolver) bounceOrExpire(p *game.Projectile, reflect func()) {
	if p.Bounces >= p.MaxBounces {
		p.Active = false
		return
	}
	p.Bounces++
	reflect()
}

func (cr *collisionResolver) resolveBoundary(m *MatchController, p *game.Projectile) bool {
	a := cr.arena
	mult := a.BounceMultiplier
	hit := false

	if p.Position.X < 0 || p.Position.X > a.Width {
		hit = true
		cr.bounceOrExpire(p, func() {
			if p.Position.X < 0 {
				p.Position.X = -p.Position.X
			} else {
				p.Position.X = 2*a.Width - p.Position.X
			}
			p.Velocity.X = -p.Velocity.X * mult
		})
	} else if p.Position.Y < 0 || p.Position.Y > a.Height {
		hit = true
		cr.bounceOrExpire(p, func() {
			if p.Position.Y < 0 {
				p.Position.Y = -p.Position.Y
			} else {
				p.Position.Y = 2*a.Height - p.Position.Y
			}
			p.Velocity.Y = -p.Velocity.Y * mult
		})
	}
	return hit
}

func (cr *collisionResolver) resolveObstacles(m *MatchController, p *game.Projectile) {
	for _, o := range cr.arena.Obstacles {
		if !o.Contains(p.Position) {
			continue
		}
		if !o.Bouncy {
			p.Active = false
			return
		}
		ob := o
		cr.bounceOrExpire(p, func() {
			cr.reflectOffBox(p, ob)
		})
		return
	}
}

// reflectOffBox reflects the velocity component along the axis of least
// penetration and pushes the projectile back outside the box.
func (cr *collisionResolver) reflectOffBox(p *game.Projectile, o game.Obstacle) {
	mult := cr.arena.BounceMultiplier

	left := p.Position.X - o.X
	right := o.X + o.Width - p.Position.X
	top := p.Position.Y - o.Y
	bottom := o.Y + o.Height - p.Position.Y

	minX := left
	if right < left {
		minX = right
	}
	minY := top
	if bottom < top {
		minY = bottom
	}

	if minX < minY {
		if left < right {
			p.Position.X = o.X - p.Radius
		} else {
			p.Position.X = o.X + o.Width + p.Radius
		}
		p.Velocity.X = -p.Velocity.X * mult
	} else {
		if top < bottom {
			p.Position.Y = o.Y - p.Radius
		} else {
			p.Position.Y = o.Y + o.Height + p.Radius
		}
		p.Velocity.Y = -p.Velocity.Y * mult
	}
}
