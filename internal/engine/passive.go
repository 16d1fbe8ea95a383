package engine

import (
	"github.com/yoh91asakura/memes-wars-sub001/internal/constants"
	"github.com/yoh91asakura/memes-wars-sub001/internal/game"
	"github.com/yoh91asakura/memes-wars-sub001/internal/logging"
)

// PassiveService is the external trigger-evaluation contract the engine
// consumes. The engine never evaluates trigger conditions itself; it only
// applies the activations the service returns. internal/passives carries
// the default implementation.
type PassiveService interface {
	InitializePassives(c *game.Combatant, cards []game.Card)
	TriggerPassives(trigger game.PassiveTriggerKind, combatantID string, amount float64) []game.Activation
	ProcessPeriodicEffects(dt float64) []game.Activation
	CheckLowHPTriggers(c *game.Combatant) []game.Activation
}

// nopPassives is used when the caller supplies no service; every trigger
// evaluates to nothing.
type nopPassives struct{}

func (nopPassives) InitializePassives(*game.Combatant, []game.Card) {}

func (nopPassives) TriggerPassives(game.PassiveTriggerKind, string, float64) []game.Activation {
	return nil
}

func (nopPassives) ProcessPeriodicEffects(float64) []game.Activation { return nil }

func (nopPassives) CheckLowHPTriggers(*game.Combatant) []game.Activation { return nil }

// applyActivations applies each returned activation by kind through the
// effect-engine primitives where applicable. Unrecognized kinds are logged
// and skipped; owners that died between computation and application are
// skipped silently.
func (m *MatchController) applyActivations(acts []game.Activation) {
	for _, a := range acts {
		owner := m.combatant(a.OwnerID)
		if owner == nil || !owner.Alive {
			continue
		}

		switch a.Effect {
		case game.PassiveHeal:
			m.effects.apply(m, owner, game.EffectSpec{
				Kind:         game.EffectHeal,
				Intensity:    a.Magnitude,
				Duration:     a.Duration,
				TickInterval: healTickInterval,
			}, a.OwnerID)
		case game.PassiveShield:
			m.effects.apply(m, owner, game.EffectSpec{
				Kind:      game.EffectShield,
				Intensity: a.Magnitude,
			}, a.OwnerID)
		case game.PassiveBoost:
			m.effects.apply(m, owner, game.EffectSpec{
				Kind:      game.EffectSpeed,
				Intensity: a.Magnitude,
				Duration:  a.Duration,
			}, a.OwnerID)
		case game.PassiveBurn, game.PassiveFreeze, game.PassivePoison:
			target := m.resolveActivationTarget(owner, a.TargetID)
			if target == nil {
				continue
			}
			m.effects.apply(m, target, game.EffectSpec{
				Kind:         game.EffectKind(a.Effect),
				Intensity:    a.Magnitude,
				Duration:     a.Duration,
				TickInterval: healTickInterval,
			}, a.OwnerID)
		case game.PassiveLucky:
			owner.LuckyBonus += a.Magnitude
			if a.Duration > 0 {
				m.schedule.push(m.now+a.Duration, actionRevertLucky, owner.ID, a.Magnitude)
			}
		case game.PassiveReflect:
			owner.ReflectFraction += a.Magnitude
			if a.Duration > 0 {
				m.schedule.push(m.now+a.Duration, actionRevertReflect, owner.ID, a.Magnitude)
			}
		case game.PassiveBurst:
			for i := 0; i < a.Count; i++ {
				m.schedule.push(m.now+float64(i)*burstStagger, actionFireShot, owner.ID, 0)
			}
		case game.PassiveMultiply:
			for i := 1; i <= a.Count; i++ {
				m.schedule.push(m.now+float64(i)*multiplyStagger, actionFireShot, owner.ID, 0)
			}
		default:
			logging.Warn("unrecognized passive effect kind, skipping", logging.Fields{
				constants.LogFieldPassiveID:  a.PassiveID,
				constants.LogFieldEffectKind: string(a.Effect),
			})
			continue
		}

		m.emit(game.EventPassiveTriggered, game.EventPayload{
			CombatantID: owner.ID,
			TargetID:    a.TargetID,
			Amount:      a.Magnitude,
			Count:       a.Count,
			Detail:      string(a.Effect),
		})
	}
}

// resolveActivationTarget prefers the explicit target id and falls back to
// the nearest alive opponent; nil when nobody is left to hit.
func (m *MatchController) resolveActivationTarget(owner *game.Combatant, targetID string) *game.Combatant {
	if targetID != "" {
		if t := m.combatant(targetID); t != nil && t.Alive {
			return t
		}
		return nil
	}
	return m.nearestOpponent(owner)
}

// drainSchedule executes all scheduled actions due at the current match
// time. Runs at the start of each tick so delayed effects resolve in
// deterministic order regardless of frame rate.
func (m *MatchController) drainSchedule() {
	for _, act := range m.schedule.popDue(m.now) {
		c := m.combatant(act.combatantID)
		if c == nil || !c.Alive {
			continue
		}
		switch act.kind {
		case actionFireShot:
			m.projectiles.fire(m, c)
		case actionRevertLucky:
			c.LuckyBonus -= act.amount
			if c.LuckyBonus < 0 {
				c.LuckyBonus = 0
			}
		case actionRevertReflect:
			c.ReflectFraction -= act.amount
			if c.ReflectFraction < 0 {
				c.ReflectFraction = 0
			}
		}
	}
}
