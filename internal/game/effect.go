package game

// EffectKind is the closed set of status effects the engine understands.
// Dispatch is table-driven (see internal/engine/effect.go); an unknown
// kind arriving from content or a passive activation is logged and skipped,
// it never aborts a tick.
type EffectKind string

const (
	EffectNone   EffectKind = ""
	EffectBurn   EffectKind = "burn"
	EffectFreeze EffectKind = "freeze"
	EffectPoison EffectKind = "poison"
	EffectHeal   EffectKind = "heal"
	EffectShield EffectKind = "shield"
	EffectSpeed  EffectKind = "speed"
	EffectStun   EffectKind = "stun"
)

// KnownEffect reports whether k is a recognized status effect kind.
// EffectNone is valid on projectile definitions (plain shot) but is not a
// status effect, so it reports false here.
func KnownEffect(k EffectKind) bool {
	switch k {
	case EffectBurn, EffectFreeze, EffectPoison, EffectHeal, EffectShield, EffectSpeed, EffectStun:
		return true
	}
	return false
}

// ActiveEffect is a timed status applied to a combatant. Remaining
// decreases monotonically each tick and the effect is removed the same
// tick it reaches zero. Periodic effects (TickInterval > 0) re-apply every
// time the elapsed match time crosses LastTick + TickInterval.
type ActiveEffect struct {
	ID           int        `json:"id"`
	Kind         EffectKind `json:"kind"`
	Remaining    float64    `json:"remaining"`
	Intensity    float64    `json:"intensity"`
	TickInterval float64    `json:"tick_interval"`
	// LastTick is the absolute match time of the most recent periodic
	// application (the application time for freshly applied effects).
	LastTick float64 `json:"last_tick"`
	SourceID string  `json:"source_id"`
	TargetID string  `json:"target_id"`
}

// EffectSpec is the immutable description of an effect carried by a
// projectile; it is instantiated into an ActiveEffect on hit.
type EffectSpec struct {
	Kind         EffectKind `json:"kind"`
	Intensity    float64    `json:"intensity"`
	Duration     float64    `json:"duration"`
	TickInterval float64    `json:"tick_interval"`
}
