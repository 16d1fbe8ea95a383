package engine

import (
	"math"

	"github.com/yoh91asakura/memes-wars-sub001/internal/constants"
	"github.com/yoh91asakura/memes-wars-sub001/internal/game"
	"github.com/yoh91asakura/memes-wars-sub001/internal/logging"
)

// projectileSystem spawns, advances and expires projectiles. The list is
// owned by exactly one MatchController; inactive slots are compacted at
// the end of every tick so iteration stays dense.
type projectileSystem struct {
	arena game.Arena
	list  []*game.Projectile

	// Per-combatant weighted fire sequences, prebuilt at init from deck
	// composition and cycled deterministically.
	sequences map[string][]game.ProjectileDefinition
	seqIndex  map[string]int

	nextID int
}

func newProjectileSystem(arena game.Arena) *projectileSystem {
	return &projectileSystem{
		arena:     arena,
		sequences: make(map[string][]game.ProjectileDefinition),
		seqIndex:  make(map[string]int),
	}
}

// buildSequence expands the deck into the weighted fire sequence: each
// card occupies Weight slots (min 1) in deck order.
func (ps *projectileSystem) buildSequence(c *game.Combatant) {
	var seq []game.ProjectileDefinition
	for _, card := range c.Deck.Cards {
		w := card.Weight
		if w < 1 {
			w = 1
		}
		for i := 0; i < w; i++ {
			seq = append(seq, card.Projectile)
		}
	}
	ps.sequences[c.ID] = seq
	ps.seqIndex[c.ID] = 0
}

func (ps *projectileSystem) nextDefinition(combatantID string) (game.ProjectileDefinition, bool) {
	seq := ps.sequences[combatantID]
	if len(seq) == 0 {
		return game.ProjectileDefinition{}, false
	}
	i := ps.seqIndex[combatantID]
	ps.seqIndex[combatantID] = (i + 1) % len(seq)
	return seq[i], true
}

func (ps *projectileSystem) activeCount() int {
	n := 0
	for _, p := range ps.list {
		if p.Active {
			n++
		}
	}
	return n
}

// fire launches the combatant's next projectile at the nearest alive
// opponent. Spawns beyond the hard cap are dropped with a warning event;
// existing projectiles are unaffected.
func (ps *projectileSystem) fire(m *MatchController, c *game.Combatant) {
	if c == nil || !c.Alive {
		return
	}
	target := m.nearestOpponent(c)
	if target == nil {
		return
	}
	def, ok := ps.nextDefinition(c.ID)
	if !ok {
		return
	}

	if ps.activeCount() >= maxActiveProjectiles {
		logging.Warn("projectile cap reached, dropping spawn", logging.Fields{
			constants.LogFieldCombatant: c.ID,
		})
		m.emit(game.EventProjectileCapReached, game.EventPayload{
			CombatantID: c.ID,
			Count:       maxActiveProjectiles,
		})
		return
	}

	speed := m.synergies.SpeedBonus(c.ID, def.Speed)
	dir := target.Position.Sub(c.Position).Normalized()
	vel := dir.Scale(speed)
	if def.Trajectory == game.TrajectoryArc {
		// upward launch boost; gravity dominates afterwards
		vel.Y -= speed * arcLaunchBoost
	}

	radius := def.Radius
	if radius <= 0 {
		radius = defaultProjectileRadius
	}
	maxLife := def.MaxLifespan
	if maxLife <= 0 {
		maxLife = defaultMaxLifespan
	}

	ps.nextID++
	p := &game.Projectile{
		ID:          ps.nextID,
		OwnerID:     c.ID,
		TargetID:    target.ID,
		Position:    c.Position,
		Velocity:    vel,
		BaseSpeed:   speed,
		Damage:      def.Damage,
		Radius:      radius,
		Trajectory:  def.Trajectory,
		MaxBounces:  def.MaxBounces,
		MaxLifespan: maxLife,
		SpawnedAt:   m.now,
		Active:      true,
	}
	if def.Effect != game.EffectNone {
		p.Effects = append(p.Effects, game.EffectSpec{
			Kind:         def.Effect,
			Intensity:    def.EffectIntensity,
			Duration:     def.EffectDuration,
			TickInterval: def.TickInterval,
		})
	}
	ps.list = append(ps.list, p)

	c.Stats.ShotsFired++
	m.emit(game.EventProjectileFired, game.EventPayload{
		CombatantID:  c.ID,
		TargetID:     target.ID,
		ProjectileID: p.ID,
		Detail:       string(def.Trajectory),
	})
	m.applyActivations(m.passives.TriggerPassives(game.TriggerOnFire, c.ID, def.Damage))
}

// advance integrates every active projectile one tick: linear motion,
// uniform gravity on all trajectory kinds, then the kind-specific
// perturbation. Lifespan expiry deactivates; boundary handling belongs to
// the collision resolver.
func (ps *projectileSystem) advance(m *MatchController, dt float64) {
	for _, p := range ps.list {
		if !p.Active {
			continue
		}
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
		p.Velocity.Y += ps.arena.Gravity * dt

		switch p.Trajectory {
		case game.TrajectoryWave:
			p.Velocity.Y += waveAmplitude * math.Cos(waveFrequency*m.now) * dt
		case game.TrajectorySpiral:
			angle := spiralRate * m.now
			p.Velocity.X += spiralAmplitude * math.Cos(angle) * dt
			p.Velocity.Y += spiralAmplitude * math.Sin(angle) * dt
		case game.TrajectoryHoming:
			if target := m.combatant(p.TargetID); target != nil && target.Alive {
				speed := p.Velocity.Len()
				if max := p.BaseSpeed * homingSpeedCap; speed > max {
					speed = max
				}
				if speed < p.BaseSpeed {
					speed = p.BaseSpeed
				}
				dir := target.Position.Sub(p.Position).Normalized()
				p.Velocity = dir.Scale(speed)
			}
		}

		p.Lifespan += dt
		if p.Lifespan >= p.MaxLifespan {
			p.Active = false
		}
	}
}

// compact drops inactive projectiles, reusing the backing array so steady
// state allocates nothing.
func (ps *projectileSystem) compact() {
	kept := ps.list[:0]
	for _, p := range ps.list {
		if p.Active {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(ps.list); i++ {
		ps.list[i] = nil
	}
	ps.list = kept
}
