package game

// SynergyBonusKind identifies what a synergy bonus adjusts. Health and
// fire-rate bonuses are baked into the combatant once at initialization;
// damage, projectile-speed, crit and chain bonuses live in the per-match
// lookup table and are consulted at fire and hit time.
type SynergyBonusKind string

const (
	BonusHealthFlat      SynergyBonusKind = "health_flat"
	BonusHealthPercent   SynergyBonusKind = "health_percent"
	BonusFireRatePercent SynergyBonusKind = "fire_rate_percent"
	BonusDamagePercent   SynergyBonusKind = "damage_percent"
	BonusSpeedPercent    SynergyBonusKind = "speed_percent"
	BonusCritChance      SynergyBonusKind = "crit_chance"
	BonusChainChance     SynergyBonusKind = "chain_chance"
)

// KnownSynergyBonus reports whether k is a recognized bonus kind.
func KnownSynergyBonus(k SynergyBonusKind) bool {
	switch k {
	case BonusHealthFlat, BonusHealthPercent, BonusFireRatePercent,
		BonusDamagePercent, BonusSpeedPercent, BonusCritChance, BonusChainChance:
		return true
	}
	return false
}

type SynergyBonus struct {
	Kind  SynergyBonusKind `json:"kind"`
	Value float64          `json:"value"`
}

// Synergy is a deck-composition bonus. RequiredTags maps tag name to the
// minimum number of cards carrying that tag; a deck activates the synergy
// when every requirement is met. Strength scales all bonus values.
// Synergies are detected once at initialization and immutable afterwards.
type Synergy struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	RequiredTags map[string]int `json:"required_tags"`
	Bonuses      []SynergyBonus `json:"bonuses"`
	Strength     float64        `json:"strength"`
}

// RequirementCount is the total number of tagged cards the synergy needs;
// active synergies are ordered by this, descending.
func (s Synergy) RequirementCount() int {
	n := 0
	for _, c := range s.RequiredTags {
		n += c
	}
	return n
}
