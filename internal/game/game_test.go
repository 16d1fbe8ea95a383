package game

import (
	"math"
	"testing"
)

func TestVec2Normalized(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Normalized()
	if math.Abs(v.Len()-1) > 1e-12 {
		t.Fatalf("normalized length not 1: %f", v.Len())
	}
	if v.X != 0.6 || v.Y != 0.8 {
		t.Fatalf("wrong direction: %+v", v)
	}

	zero := Vec2{}.Normalized()
	if zero.X != 0 || zero.Y != 0 {
		t.Fatalf("zero vector changed by normalization: %+v", zero)
	}
}

func TestVec2Dist(t *testing.T) {
	a := Vec2{X: 1, Y: 1}
	b := Vec2{X: 4, Y: 5}
	if d := a.Dist(b); d != 5 {
		t.Fatalf("expected distance 5, got %f", d)
	}
}

func TestObstacleContains(t *testing.T) {
	o := Obstacle{X: 10, Y: 20, Width: 30, Height: 40}
	inside := []Vec2{{X: 10, Y: 20}, {X: 40, Y: 60}, {X: 25, Y: 30}}
	outside := []Vec2{{X: 9, Y: 30}, {X: 41, Y: 30}, {X: 25, Y: 61}}

	for _, p := range inside {
		if !o.Contains(p) {
			t.Errorf("point %+v should be inside", p)
		}
	}
	for _, p := range outside {
		if o.Contains(p) {
			t.Errorf("point %+v should be outside", p)
		}
	}
}

func TestArenaSpawnPointDefaults(t *testing.T) {
	a := Arena{Width: 1000, Height: 600}
	if p := a.SpawnPoint(0); p.X != 100 || p.Y != 300 {
		t.Fatalf("side A default spawn wrong: %+v", p)
	}
	if p := a.SpawnPoint(1); p.X != 900 || p.Y != 300 {
		t.Fatalf("side B default spawn wrong: %+v", p)
	}

	a.SpawnPoints = []Vec2{{X: 50, Y: 50}}
	if p := a.SpawnPoint(0); p.X != 50 {
		t.Fatalf("configured spawn ignored: %+v", p)
	}
	if p := a.SpawnPoint(1); p.X != 900 {
		t.Fatalf("missing configured spawn should fall back: %+v", p)
	}
}

func TestHealthRatio(t *testing.T) {
	c := &Combatant{Health: 40, MaxHealth: 100}
	if r := c.HealthRatio(); r != 0.4 {
		t.Fatalf("expected ratio 0.4, got %f", r)
	}
	broken := &Combatant{Health: 40}
	if r := broken.HealthRatio(); r != 0 {
		t.Fatalf("zero max health should yield ratio 0, got %f", r)
	}
}

func TestAccuracy(t *testing.T) {
	s := CombatStats{ShotsFired: 8, ShotsHit: 2}
	if a := s.Accuracy(); a != 0.25 {
		t.Fatalf("expected accuracy 0.25, got %f", a)
	}
	if a := (CombatStats{}).Accuracy(); a != 0 {
		t.Fatalf("expected zero accuracy with no shots, got %f", a)
	}
}

func TestClosedEnumChecks(t *testing.T) {
	for _, k := range []TrajectoryKind{TrajectoryStraight, TrajectoryWave, TrajectoryArc, TrajectorySpiral, TrajectoryHoming} {
		if !KnownTrajectory(k) {
			t.Errorf("trajectory %q should be known", k)
		}
	}
	if KnownTrajectory("zigzag") {
		t.Errorf("zigzag should be unknown")
	}

	for _, k := range []EffectKind{EffectBurn, EffectFreeze, EffectPoison, EffectHeal, EffectShield, EffectSpeed, EffectStun} {
		if !KnownEffect(k) {
			t.Errorf("effect %q should be known", k)
		}
	}
	if KnownEffect("confusion") {
		t.Errorf("confusion should be unknown")
	}
	if KnownEffect(EffectNone) {
		t.Errorf("the none effect is not an applicable kind")
	}
}
