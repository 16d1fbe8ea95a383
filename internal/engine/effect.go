package engine

import (
	"github.com/yoh91asakura/memes-wars-sub001/internal/constants"
	"github.com/yoh91asakura/memes-wars-sub001/internal/game"
	"github.com/yoh91asakura/memes-wars-sub001/internal/logging"
)

// effectEngine owns status-effect application and lifecycle. Dispatch is a
// table of pure apply functions keyed by the closed EffectKind set; an
// unknown kind is logged and skipped, never aborting the tick.
type effectEngine struct {
	appliers map[game.EffectKind]effectApplier
	tickers  map[game.EffectKind]effectTicker
}

// effectApplier handles the moment an effect lands on a combatant.
// Instantaneous kinds (heal/shield with no duration) resolve here and
// attach nothing.
type effectApplier func(m *MatchController, target *game.Combatant, spec game.EffectSpec, sourceID string) *game.ActiveEffect

// effectTicker re-applies a periodic effect each time its interval elapses.
type effectTicker func(m *MatchController, target *game.Combatant, e *game.ActiveEffect)

func newEffectEngine() *effectEngine {
	ee := &effectEngine{}
	ee.appliers = map[game.EffectKind]effectApplier{
		game.EffectBurn:   attachPeriodic,
		game.EffectPoison: attachPeriodic,
		game.EffectHeal:   applyHeal,
		game.EffectShield: applyShield,
		game.EffectFreeze: attachModifier,
		game.EffectStun:   attachModifier,
		game.EffectSpeed:  attachModifier,
	}
	ee.tickers = map[game.EffectKind]effectTicker{
		game.EffectBurn:   tickBurn,
		game.EffectPoison: tickPoison,
		game.EffectHeal:   tickHeal,
		game.EffectShield: tickShield,
	}
	return ee
}

// apply dispatches a single effect spec onto target. Dead targets are
// skipped silently (they disappeared between computation and application).
func (ee *effectEngine) apply(m *MatchController, target *game.Combatant, spec game.EffectSpec, sourceID string) {
	if target == nil || !target.Alive {
		return
	}
	fn, ok := ee.appliers[spec.Kind]
	if !ok {
		logging.Warn("unrecognized effect kind, skipping", logging.Fields{
			constants.LogFieldEffectKind: string(spec.Kind),
			constants.LogFieldCombatant:  target.ID,
		})
		return
	}
	if e := fn(m, target, spec, sourceID); e != nil {
		target.Effects = append(target.Effects, e)
	}
}

// update advances every active effect: remaining duration decreases
// monotonically, periodic effects fire each crossed interval, and effects
// at or below zero are removed the same tick, never left dangling.
func (ee *effectEngine) update(m *MatchController, dt float64) {
	for _, c := range m.combatants {
		if !c.Alive {
			// invariant: every active effect references a live target
			c.Effects = nil
			continue
		}
		kept := c.Effects[:0]
		for _, e := range c.Effects {
			e.Remaining -= dt
			if e.TickInterval > 0 {
				for m.now-e.LastTick >= e.TickInterval {
					e.LastTick += e.TickInterval
					if tick, ok := ee.tickers[e.Kind]; ok {
						tick(m, c, e)
					}
				}
			}
			if e.Remaining > 0 && c.Alive {
				kept = append(kept, e)
			}
		}
		if c.Alive {
			c.Effects = kept
		} else {
			c.Effects = nil
		}
	}
}

func newActiveEffect(m *MatchController, spec game.EffectSpec, target *game.Combatant, sourceID string) *game.ActiveEffect {
	m.nextEffectID++
	return &game.ActiveEffect{
		ID:           m.nextEffectID,
		Kind:         spec.Kind,
		Remaining:    spec.Duration,
		Intensity:    spec.Intensity,
		TickInterval: spec.TickInterval,
		LastTick:     m.now,
		SourceID:     sourceID,
		TargetID:     target.ID,
	}
}

func attachPeriodic(m *MatchController, target *game.Combatant, spec game.EffectSpec, sourceID string) *game.ActiveEffect {
	if spec.Duration <= 0 {
		return nil
	}
	if spec.TickInterval <= 0 {
		spec.TickInterval = healTickInterval
	}
	return newActiveEffect(m, spec, target, sourceID)
}

// attachModifier covers freeze, stun and speed: no periodic tick, the
// effect changes the combatant's effective stats while it remains.
func attachModifier(m *MatchController, target *game.Combatant, spec game.EffectSpec, sourceID string) *game.ActiveEffect {
	if spec.Duration <= 0 {
		return nil
	}
	return newActiveEffect(m, spec, target, sourceID)
}

func applyHeal(m *MatchController, target *game.Combatant, spec game.EffectSpec, sourceID string) *game.ActiveEffect {
	if spec.Duration <= 0 {
		healCombatant(target, spec.Intensity)
		return nil
	}
	return attachPeriodic(m, target, spec, sourceID)
}

func applyShield(m *MatchController, target *game.Combatant, spec game.EffectSpec, sourceID string) *game.ActiveEffect {
	if spec.Duration <= 0 {
		shieldCombatant(target, spec.Intensity)
		return nil
	}
	return attachPeriodic(m, target, spec, sourceID)
}

func tickBurn(m *MatchController, target *game.Combatant, e *game.ActiveEffect) {
	m.applyEffectDamage(target, e.SourceID, e.Intensity*burnDamageMultiplier)
}

func tickPoison(m *MatchController, target *game.Combatant, e *game.ActiveEffect) {
	m.applyEffectDamage(target, e.SourceID, e.Intensity*poisonDamageMultiplier)
}

func tickHeal(m *MatchController, target *game.Combatant, e *game.ActiveEffect) {
	healCombatant(target, e.Intensity)
}

func tickShield(m *MatchController, target *game.Combatant, e *game.ActiveEffect) {
	shieldCombatant(target, e.Intensity)
}

func healCombatant(c *game.Combatant, amount float64) {
	c.Health += amount
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
}

func shieldCombatant(c *game.Combatant, amount float64) {
	c.Shield += amount
	if c.Shield > c.MaxShield {
		c.Shield = c.MaxShield
	}
}

// --- Effective stat helpers --------------------------------------------

// effectiveFireRate is the combatant's fire rate after status modifiers:
// stun zeroes it, speed multiplies it.
func effectiveFireRate(c *game.Combatant) float64 {
	r := c.FireRate
	for _, e := range c.Effects {
		switch e.Kind {
		case game.EffectStun:
			return 0
		case game.EffectSpeed:
			r *= 1 + e.Intensity
		}
	}
	if r < 0 {
		r = 0
	}
	return r
}

// effectiveMoveSpeed is the combatant's movement speed after status
// modifiers: freeze zeroes it, speed multiplies it.
func effectiveMoveSpeed(c *game.Combatant) float64 {
	s := c.MoveSpeed
	for _, e := range c.Effects {
		switch e.Kind {
		case game.EffectFreeze:
			return 0
		case game.EffectSpeed:
			s *= 1 + e.Intensity
		}
	}
	if s < 0 {
		s = 0
	}
	return s
}
