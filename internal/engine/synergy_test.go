package engine

import (
	"testing"

	"github.com/yoh91asakura/memes-wars-sub001/internal/game"
)

func taggedCard(name string, tags ...string) game.Card {
	c := testCard(name, 100, 10, game.TrajectoryStraight)
	c.Tags = tags
	return c
}

func TestDetectSynergiesMatchesTagCounts(t *testing.T) {
	defs := []game.Synergy{
		{ID: "doge_pair", RequiredTags: map[string]int{"doge": 2}},
		{ID: "frog_trio", RequiredTags: map[string]int{"frog": 3}},
		{ID: "mixed", RequiredTags: map[string]int{"doge": 1, "frog": 1}},
		{ID: "untagged", RequiredTags: nil}, // never activates
	}
	s := NewSynergyModifier(defs)

	cards := []game.Card{
		taggedCard("a", "doge"),
		taggedCard("b", "doge", "frog"),
		taggedCard("c", "frog"),
	}
	active := s.DetectSynergies(cards)

	if len(active) != 2 {
		t.Fatalf("expected 2 active synergies, got %d", len(active))
	}
	// ordered by requirement count descending: doge_pair (2) then mixed (2)
	// tie broken by id, so doge_pair first
	if active[0].ID != "doge_pair" || active[1].ID != "mixed" {
		t.Fatalf("wrong activation order: %s, %s", active[0].ID, active[1].ID)
	}
}

func TestDetectSynergiesIsDeterministic(t *testing.T) {
	defs := []game.Synergy{
		{ID: "z", RequiredTags: map[string]int{"x": 1}},
		{ID: "a", RequiredTags: map[string]int{"x": 1}},
		{ID: "m", RequiredTags: map[string]int{"x": 1}},
	}
	cards := []game.Card{taggedCard("c", "x")}

	first := NewSynergyModifier(defs).DetectSynergies(cards)
	for i := 0; i < 20; i++ {
		got := NewSynergyModifier(defs).DetectSynergies(cards)
		for j := range first {
			if got[j].ID != first[j].ID {
				t.Fatalf("iteration %d: order diverged at %d: %s vs %s", i, j, got[j].ID, first[j].ID)
			}
		}
	}
	// equal requirement counts fall back to id order
	if first[0].ID != "a" || first[1].ID != "m" || first[2].ID != "z" {
		t.Fatalf("tie-break order wrong: %s %s %s", first[0].ID, first[1].ID, first[2].ID)
	}
}

func TestApplyBonusesBakesHealthAndFireRate(t *testing.T) {
	s := NewSynergyModifier(nil)
	c := &game.Combatant{ID: SideA, Health: 100, MaxHealth: 100, FireRate: 1.0, Alive: true}

	s.ApplyBonuses(c, []game.Synergy{
		{
			ID:       "tanky",
			Strength: 1,
			Bonuses: []game.SynergyBonus{
				{Kind: game.BonusHealthFlat, Value: 50},
				{Kind: game.BonusHealthPercent, Value: 0.1},
				{Kind: game.BonusFireRatePercent, Value: 0.25},
			},
		},
	})

	if c.MaxHealth != 165 { // 100 + 50, then +10% of 150
		t.Fatalf("expected max health 165, got %f", c.MaxHealth)
	}
	if c.Health != 165 {
		t.Fatalf("expected current health to grow with max, got %f", c.Health)
	}
	if c.FireRate != 1.25 {
		t.Fatalf("expected fire rate 1.25, got %f", c.FireRate)
	}
}

func TestLookupBonusesArePureAndScaled(t *testing.T) {
	s := NewSynergyModifier(nil)
	c := &game.Combatant{ID: SideA, Alive: true}

	s.ApplyBonuses(c, []game.Synergy{
		{
			ID:       "sharp",
			Strength: 2,
			Bonuses: []game.SynergyBonus{
				{Kind: game.BonusDamagePercent, Value: 0.1},
				{Kind: game.BonusSpeedPercent, Value: 0.05},
				{Kind: game.BonusCritChance, Value: 0.1},
				{Kind: game.BonusChainChance, Value: 0.15},
			},
		},
	})

	for i := 0; i < 3; i++ {
		if got := s.DamageBonus(SideA, 100); got != 120 { // 0.1 * strength 2
			t.Fatalf("damage bonus call %d: expected 120, got %f", i, got)
		}
		if got := s.SpeedBonus(SideA, 200); got != 220 {
			t.Fatalf("speed bonus call %d: expected 220, got %f", i, got)
		}
	}
	if got := s.CritChance(SideA); got != 0.2 {
		t.Fatalf("expected crit chance 0.2, got %f", got)
	}
	if got := s.ChainChance(SideA); got != 0.3 {
		t.Fatalf("expected chain chance 0.3, got %f", got)
	}
}

func TestNoSynergiesMeansNeutralBonuses(t *testing.T) {
	s := NewSynergyModifier(nil)
	if got := s.DamageBonus("nobody", 42); got != 42 {
		t.Fatalf("neutral damage bonus changed the value: %f", got)
	}
	if got := s.SpeedBonus("nobody", 300); got != 300 {
		t.Fatalf("neutral speed bonus changed the value: %f", got)
	}
	if s.CritChance("nobody") != 0 || s.ChainChance("nobody") != 0 {
		t.Fatalf("neutral chances not zero")
	}
}
