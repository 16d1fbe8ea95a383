package game

// PassiveTriggerKind is the condition a passive ability is evaluated
// against.
type PassiveTriggerKind string

const (
	TriggerBattleStart PassiveTriggerKind = "battle_start"
	TriggerOnFire      PassiveTriggerKind = "on_fire"
	TriggerOnHit       PassiveTriggerKind = "on_hit"
	TriggerOnDamage    PassiveTriggerKind = "on_damage"
	TriggerLowHP       PassiveTriggerKind = "low_hp"
	TriggerPeriodic    PassiveTriggerKind = "periodic"
)

// KnownPassiveTrigger reports whether k is a recognized trigger kind.
func KnownPassiveTrigger(k PassiveTriggerKind) bool {
	switch k {
	case TriggerBattleStart, TriggerOnFire, TriggerOnHit, TriggerOnDamage, TriggerLowHP, TriggerPeriodic:
		return true
	}
	return false
}

// PassiveEffectKind is what an activation does when applied by the engine.
type PassiveEffectKind string

const (
	PassiveHeal     PassiveEffectKind = "heal"
	PassiveBoost    PassiveEffectKind = "boost"
	PassiveShield   PassiveEffectKind = "shield"
	PassiveBurn     PassiveEffectKind = "burn"
	PassiveFreeze   PassiveEffectKind = "freeze"
	PassivePoison   PassiveEffectKind = "poison"
	PassiveLucky    PassiveEffectKind = "lucky"
	PassiveBurst    PassiveEffectKind = "burst"
	PassiveReflect  PassiveEffectKind = "reflect"
	PassiveMultiply PassiveEffectKind = "multiply"
)

// PassiveDefinition is a conditional combatant ability supplied by the
// content configuration. The engine consumes only activations; trigger
// evaluation (chance, cooldown, low-hp threshold) belongs to the
// PassiveTriggerService.
type PassiveDefinition struct {
	ID       string             `json:"id"`
	CardName string             `json:"card_name"`
	Trigger  PassiveTriggerKind `json:"trigger"`
	// Chance in [0,1]; 1 means the trigger always fires.
	Chance    float64           `json:"chance"`
	Effect    PassiveEffectKind `json:"effect"`
	Magnitude float64           `json:"magnitude"`
	Duration  float64           `json:"duration"`
	Cooldown  float64           `json:"cooldown"`
	// Count is the number of extra shots for burst/multiply effects.
	Count int `json:"count"`
}

// Activation is the concrete effect produced when a passive's trigger
// condition is satisfied.
type Activation struct {
	PassiveID string            `json:"passive_id"`
	OwnerID   string            `json:"owner_id"`
	TargetID  string            `json:"target_id"`
	Effect    PassiveEffectKind `json:"effect"`
	Magnitude float64           `json:"magnitude"`
	Duration  float64           `json:"duration"`
	Count     int               `json:"count"`
}
