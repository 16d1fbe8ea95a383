package game

// TrajectoryKind selects the motion rule applied to a projectile each tick.
type TrajectoryKind string

const (
	TrajectoryStraight TrajectoryKind = "straight"
	TrajectoryWave     TrajectoryKind = "wave"
	TrajectoryArc      TrajectoryKind = "arc"
	TrajectorySpiral   TrajectoryKind = "spiral"
	TrajectoryHoming   TrajectoryKind = "homing"
)

// KnownTrajectory reports whether k is one of the closed trajectory kinds.
func KnownTrajectory(k TrajectoryKind) bool {
	switch k {
	case TrajectoryStraight, TrajectoryWave, TrajectoryArc, TrajectorySpiral, TrajectoryHoming:
		return true
	}
	return false
}

// ProjectileDefinition describes the attack a card contributes to its
// owner's fire sequence. Definitions come from the content configuration
// (memes_config.json) and are immutable during a match.
type ProjectileDefinition struct {
	Damage     float64        `json:"damage"`
	Speed      float64        `json:"speed"`
	Radius     float64        `json:"radius"`
	Trajectory TrajectoryKind `json:"trajectory"`

	// Optional status effect attached to the projectile and applied to
	// the target on hit. EffectNone means a plain damaging shot.
	Effect          EffectKind `json:"effect"`
	EffectIntensity float64    `json:"effect_intensity"`
	EffectDuration  float64    `json:"effect_duration"`
	TickInterval    float64    `json:"tick_interval"`

	MaxBounces  int     `json:"max_bounces"`
	MaxLifespan float64 `json:"max_lifespan"`
}

// Card is one entry of a deck. Health contributes to the combatant's
// hit-point pool, Tags feed synergy detection and Weight controls how many
// slots the card occupies in the weighted fire sequence (min 1).
type Card struct {
	Name       string               `json:"name"`
	Health     float64              `json:"health"`
	Tags       []string             `json:"tags"`
	Weight     int                  `json:"weight"`
	Projectile ProjectileDefinition `json:"projectile"`
}

// Deck is an ordered list of cards fielded by one side of the duel.
type Deck struct {
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}
