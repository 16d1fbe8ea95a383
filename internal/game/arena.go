package game

// Obstacle is an axis-aligned box inside the arena. Bouncy obstacles
// reflect projectiles (consuming a bounce), solid obstacles absorb them.
type Obstacle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Bouncy bool    `json:"bouncy"`
}

// Contains reports whether the point p lies inside the obstacle box.
func (o Obstacle) Contains(p Vec2) bool {
	return p.X >= o.X && p.X <= o.X+o.Width && p.Y >= o.Y && p.Y <= o.Y+o.Height
}

// Arena is the battle space and its physics configuration. The Y axis
// points down, so positive Gravity pulls projectiles toward Y = Height.
// Arenas are built by the caller before the match and never mutated.
type Arena struct {
	Width            float64    `json:"width"`
	Height           float64    `json:"height"`
	Gravity          float64    `json:"gravity"`
	BounceMultiplier float64    `json:"bounce_multiplier"`
	Obstacles        []Obstacle `json:"obstacles"`
	// RoundDuration is the match time limit in seconds.
	RoundDuration float64 `json:"round_duration"`
	// SpawnPoints holds the starting position for each side (A then B).
	// When empty the engine places combatants at the horizontal edges.
	SpawnPoints []Vec2 `json:"spawn_points"`
}

// SpawnPoint returns the configured spawn position for side idx, or a
// default near the left/right edge at mid height.
func (a Arena) SpawnPoint(idx int) Vec2 {
	if idx < len(a.SpawnPoints) {
		return a.SpawnPoints[idx]
	}
	if idx == 0 {
		return Vec2{X: a.Width * 0.1, Y: a.Height * 0.5}
	}
	return Vec2{X: a.Width * 0.9, Y: a.Height * 0.5}
}
