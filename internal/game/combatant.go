package game

// CombatStats aggregates per-combatant counters maintained by the match
// pipeline and archived when the match ends.
type CombatStats struct {
	ShotsFired  int     `json:"shots_fired"`
	ShotsHit    int     `json:"shots_hit"`
	Kills       int     `json:"kills"`
	DamageDealt float64 `json:"damage_dealt"`
	DamageTaken float64 `json:"damage_taken"`
}

// Accuracy returns hit ratio in [0,1], zero when nothing was fired.
func (s CombatStats) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.ShotsHit) / float64(s.ShotsFired)
}

// Combatant is one side of the duel. It is created at match initialization
// from a deck and mutated only by the MatchController. A dead combatant
// (Alive == false) fires nothing and cannot be damaged further.
type Combatant struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Position Vec2    `json:"position"`
	Radius   float64 `json:"radius"`

	Health    float64 `json:"health"`
	MaxHealth float64 `json:"max_health"`
	Shield    float64 `json:"shield"`
	MaxShield float64 `json:"max_shield"`

	// FireRate is shots per second before effect modifiers.
	FireRate  float64 `json:"fire_rate"`
	MoveSpeed float64 `json:"move_speed"`

	Deck    Deck            `json:"deck"`
	Effects []*ActiveEffect `json:"effects"`

	// FireTimer counts down to the next automatic shot.
	FireTimer float64 `json:"fire_timer"`
	// StrafePhase drives the deterministic vertical drift pattern.
	StrafePhase float64 `json:"strafe_phase"`

	// LuckyBonus is extra critical-hit chance granted by a lucky passive;
	// ReflectFraction is the share of incoming hit damage returned to the
	// attacker while a reflect passive is active. Both revert through the
	// scheduled-event queue, never through host timers.
	LuckyBonus      float64 `json:"lucky_bonus"`
	ReflectFraction float64 `json:"reflect_fraction"`

	Stats CombatStats `json:"stats"`
	Alive bool        `json:"alive"`
}

// HealthRatio returns Health/MaxHealth, the timeout tie-break metric.
func (c *Combatant) HealthRatio() float64 {
	if c.MaxHealth <= 0 {
		return 0
	}
	return c.Health / c.MaxHealth
}
