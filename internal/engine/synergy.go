package engine

import (
	"sort"

	"github.com/yoh91asakura/memes-wars-sub001/internal/game"
)

// bonusTable is the precomputed per-combatant synergy table consulted at
// fire and hit time. Lookups against it are pure: identical inputs always
// produce identical outputs within a match.
type bonusTable struct {
	damagePercent float64
	speedPercent  float64
	critChance    float64
	chainChance   float64
}

// SynergyModifier computes deck-composition bonuses once per match and
// exposes O(1) lookups for damage and speed adjustments. It is constructed
// per match and passed into the MatchController, never shared across
// matches.
type SynergyModifier struct {
	defs   []game.Synergy
	active map[string][]game.Synergy
	tables map[string]bonusTable
}

func NewSynergyModifier(defs []game.Synergy) *SynergyModifier {
	return &SynergyModifier{
		defs:   defs,
		active: make(map[string][]game.Synergy),
		tables: make(map[string]bonusTable),
	}
}

// DetectSynergies matches the deck's card tags against the known synergy
// definitions and returns the active ones ordered by requirement count
// descending (ties by ID for stable output). It runs once at match
// initialization.
func (s *SynergyModifier) DetectSynergies(cards []game.Card) []game.Synergy {
	tagCounts := make(map[string]int)
	for _, c := range cards {
		for _, t := range c.Tags {
			tagCounts[t]++
		}
	}

	var out []game.Synergy
	for _, def := range s.defs {
		if len(def.RequiredTags) == 0 {
			continue
		}
		met := true
		for tag, need := range def.RequiredTags {
			if tagCounts[tag] < need {
				met = false
				break
			}
		}
		if met {
			out = append(out, def)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := out[i].RequirementCount(), out[j].RequirementCount()
		if ci == cj {
			return out[i].ID < out[j].ID
		}
		return ci > cj
	})
	return out
}

// ApplyBonuses bakes flat/percentage health and fire-rate bonuses into the
// combatant's baseline stats and records the remaining bonuses in the
// per-combatant lookup table. Called exactly once per side at init; the
// table is never recomputed mid-match.
func (s *SynergyModifier) ApplyBonuses(c *game.Combatant, active []game.Synergy) {
	var table bonusTable
	for _, syn := range active {
		strength := syn.Strength
		if strength <= 0 {
			strength = 1
		}
		for _, b := range syn.Bonuses {
			v := b.Value * strength
			switch b.Kind {
			case game.BonusHealthFlat:
				c.MaxHealth += v
				c.Health += v
			case game.BonusHealthPercent:
				add := c.MaxHealth * v
				c.MaxHealth += add
				c.Health += add
			case game.BonusFireRatePercent:
				c.FireRate *= 1 + v
			case game.BonusDamagePercent:
				table.damagePercent += v
			case game.BonusSpeedPercent:
				table.speedPercent += v
			case game.BonusCritChance:
				table.critChance += v
			case game.BonusChainChance:
				table.chainChance += v
			}
		}
	}
	s.active[c.ID] = active
	s.tables[c.ID] = table
}

// DamageBonus returns baseDamage adjusted by the combatant's damage
// synergies. Pure lookup, called at hit-resolution time.
func (s *SynergyModifier) DamageBonus(combatantID string, baseDamage float64) float64 {
	return baseDamage * (1 + s.tables[combatantID].damagePercent)
}

// SpeedBonus returns baseSpeed adjusted by the combatant's projectile
// speed synergies. Pure lookup, called at fire time.
func (s *SynergyModifier) SpeedBonus(combatantID string, baseSpeed float64) float64 {
	return baseSpeed * (1 + s.tables[combatantID].speedPercent)
}

// CritChance is the on_hit hook: extra critical chance from synergies.
func (s *SynergyModifier) CritChance(combatantID string) float64 {
	return s.tables[combatantID].critChance
}

// ChainChance is the on_fire hook: chance that a hit chains an extra shot.
func (s *SynergyModifier) ChainChance(combatantID string) float64 {
	return s.tables[combatantID].chainChance
}

// Active returns the synergies detected for a combatant at init.
func (s *SynergyModifier) Active(combatantID string) []game.Synergy {
	return s.active[combatantID]
}
