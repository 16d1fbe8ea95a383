package game

// Projectile is an in-flight attack. Created on a fire event, destroyed on
// hit, lifespan expiry or when a contact occurs with no bounces left.
type Projectile struct {
	ID       int    `json:"id"`
	OwnerID  string `json:"owner_id"`
	TargetID string `json:"target_id"`

	Position Vec2 `json:"position"`
	Velocity Vec2 `json:"velocity"`
	// BaseSpeed is the launch speed after synergy adjustment; homing
	// re-aims are capped relative to it.
	BaseSpeed float64 `json:"base_speed"`

	Damage     float64        `json:"damage"`
	Radius     float64        `json:"radius"`
	Trajectory TrajectoryKind `json:"trajectory"`

	Bounces    int `json:"bounces"`
	MaxBounces int `json:"max_bounces"`

	Lifespan    float64 `json:"lifespan"`
	MaxLifespan float64 `json:"max_lifespan"`

	// SpawnedAt is the absolute match time of the fire event; wave and
	// spiral perturbations are functions of elapsed match time.
	SpawnedAt float64 `json:"spawned_at"`

	Effects []EffectSpec `json:"effects"`
	Active  bool         `json:"active"`
}
