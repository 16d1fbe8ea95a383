package passives

import (
	"testing"

	"github.com/yoh91asakura/memes-wars-sub001/internal/game"
)

func healOnFire(id string, chance, cooldown float64) game.PassiveDefinition {
	return game.PassiveDefinition{
		ID:        id,
		CardName:  "doge",
		Trigger:   game.TriggerOnFire,
		Chance:    chance,
		Effect:    game.PassiveHeal,
		Magnitude: 10,
		Cooldown:  cooldown,
	}
}

func boundCombatant(s *Service, id string, cards ...string) *game.Combatant {
	c := &game.Combatant{ID: id, Health: 100, MaxHealth: 100, Alive: true}
	deck := make([]game.Card, 0, len(cards))
	for _, name := range cards {
		deck = append(deck, game.Card{Name: name, Health: 100})
	}
	s.InitializePassives(c, deck)
	return c
}

func TestTriggerFiresOnlyForMatchingTriggerKind(t *testing.T) {
	s := NewService([]game.PassiveDefinition{healOnFire("p1", 1, 0)}, 1)
	boundCombatant(s, "A", "doge")

	if acts := s.TriggerPassives(game.TriggerOnHit, "A", 0); len(acts) != 0 {
		t.Fatalf("on_hit fired an on_fire passive")
	}
	acts := s.TriggerPassives(game.TriggerOnFire, "A", 0)
	if len(acts) != 1 {
		t.Fatalf("expected 1 activation, got %d", len(acts))
	}
	if acts[0].PassiveID != "p1" || acts[0].OwnerID != "A" || acts[0].Magnitude != 10 {
		t.Fatalf("activation fields wrong: %+v", acts[0])
	}
}

func TestPassivesOnlyBindToCardsThatCarryThem(t *testing.T) {
	s := NewService([]game.PassiveDefinition{healOnFire("p1", 1, 0)}, 1)
	boundCombatant(s, "A", "cat") // no doge in deck

	if acts := s.TriggerPassives(game.TriggerOnFire, "A", 0); len(acts) != 0 {
		t.Fatalf("passive fired for a combatant without the card")
	}
}

func TestDuplicateCardsBindIndependentInstances(t *testing.T) {
	s := NewService([]game.PassiveDefinition{healOnFire("p1", 1, 100)}, 1)
	boundCombatant(s, "A", "doge", "doge")

	acts := s.TriggerPassives(game.TriggerOnFire, "A", 0)
	if len(acts) != 2 {
		t.Fatalf("expected both copies to fire, got %d", len(acts))
	}
}

func TestCooldownGatesRefires(t *testing.T) {
	s := NewService([]game.PassiveDefinition{healOnFire("p1", 1, 2.0)}, 1)
	boundCombatant(s, "A", "doge")

	if acts := s.TriggerPassives(game.TriggerOnFire, "A", 0); len(acts) != 1 {
		t.Fatalf("first trigger did not fire")
	}
	if acts := s.TriggerPassives(game.TriggerOnFire, "A", 0); len(acts) != 0 {
		t.Fatalf("cooldown ignored on immediate retrigger")
	}

	s.ProcessPeriodicEffects(2.5) // advances the service clock past the cooldown
	if acts := s.TriggerPassives(game.TriggerOnFire, "A", 0); len(acts) != 1 {
		t.Fatalf("passive did not refire after cooldown elapsed")
	}
}

func TestZeroChanceNeverFires(t *testing.T) {
	s := NewService([]game.PassiveDefinition{healOnFire("p1", 0, 0)}, 1)
	boundCombatant(s, "A", "doge")

	for i := 0; i < 50; i++ {
		if acts := s.TriggerPassives(game.TriggerOnFire, "A", 0); len(acts) != 0 {
			t.Fatalf("zero-chance passive fired on attempt %d", i)
		}
	}
}

func TestPeriodicFiresOncePerPeriod(t *testing.T) {
	def := game.PassiveDefinition{
		ID:        "regen",
		CardName:  "doge",
		Trigger:   game.TriggerPeriodic,
		Chance:    1,
		Effect:    game.PassiveHeal,
		Magnitude: 5,
		Cooldown:  1.0,
	}
	s := NewService([]game.PassiveDefinition{def}, 1)
	boundCombatant(s, "A", "doge")

	fired := 0
	for i := 0; i < 200; i++ { // just over 3 simulated seconds at 60hz
		fired += len(s.ProcessPeriodicEffects(1.0 / 60.0))
	}
	if fired != 3 {
		t.Fatalf("expected 3 periodic activations, got %d", fired)
	}
}

func TestPeriodicDefaultsPeriodWhenCooldownUnset(t *testing.T) {
	def := game.PassiveDefinition{
		ID:       "pulse",
		CardName: "doge",
		Trigger:  game.TriggerPeriodic,
		Chance:   1,
		Effect:   game.PassiveShield,
	}
	s := NewService([]game.PassiveDefinition{def}, 1)
	boundCombatant(s, "A", "doge")

	if acts := s.ProcessPeriodicEffects(0.5); len(acts) != 0 {
		t.Fatalf("periodic fired before its first period elapsed")
	}
	if acts := s.ProcessPeriodicEffects(0.5); len(acts) != 1 {
		t.Fatalf("periodic did not fire at the default 1s period")
	}
}

func TestLowHPFiresAtThresholdAndRespectsCooldown(t *testing.T) {
	def := game.PassiveDefinition{
		ID:        "survival",
		CardName:  "doge",
		Trigger:   game.TriggerLowHP,
		Chance:    1,
		Effect:    game.PassiveShield,
		Magnitude: 25,
		Cooldown:  5.0,
	}
	s := NewService([]game.PassiveDefinition{def}, 1)
	c := boundCombatant(s, "A", "doge")

	if acts := s.CheckLowHPTriggers(c); len(acts) != 0 {
		t.Fatalf("low-hp fired at full health")
	}

	c.Health = 30 // exactly the threshold ratio
	if acts := s.CheckLowHPTriggers(c); len(acts) != 1 {
		t.Fatalf("low-hp did not fire at the threshold")
	}
	if acts := s.CheckLowHPTriggers(c); len(acts) != 0 {
		t.Fatalf("low-hp refired inside its cooldown")
	}

	s.ProcessPeriodicEffects(6.0)
	if acts := s.CheckLowHPTriggers(c); len(acts) != 1 {
		t.Fatalf("low-hp did not refire after cooldown while still low")
	}
}

func TestLowHPIgnoresDeadCombatants(t *testing.T) {
	def := game.PassiveDefinition{
		ID:       "survival",
		CardName: "doge",
		Trigger:  game.TriggerLowHP,
		Chance:   1,
		Effect:   game.PassiveShield,
	}
	s := NewService([]game.PassiveDefinition{def}, 1)
	c := boundCombatant(s, "A", "doge")
	c.Health = 0
	c.Alive = false

	if acts := s.CheckLowHPTriggers(c); len(acts) != 0 {
		t.Fatalf("low-hp fired for a dead combatant")
	}
}

func TestIdenticalSeedsRollIdentically(t *testing.T) {
	defs := []game.PassiveDefinition{healOnFire("p1", 0.5, 0)}

	run := func() []int {
		s := NewService(defs, 7)
		boundCombatant(s, "A", "doge")
		var out []int
		for i := 0; i < 100; i++ {
			out = append(out, len(s.TriggerPassives(game.TriggerOnFire, "A", 0)))
		}
		return out
	}

	r1, r2 := run(), run()
	for i := range r1 {
		if r1[i] != r2[i] {
			t.Fatalf("roll %d diverged: %d vs %d", i, r1[i], r2[i])
		}
	}
}
