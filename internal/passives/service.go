// Package passives carries the default PassiveTriggerService: it owns
// trigger evaluation (chance rolls, cooldowns, the low-hp threshold) and
// hands concrete activations back to the engine, which applies them. The
// service is constructed per match so no trigger state leaks across
// matches.
package passives

import (
	"math/rand"

	"github.com/yoh91asakura/memes-wars-sub001/internal/game"
)

const (
	lowHPThreshold = 0.3
	defaultPeriod  = 1.0
)

// passiveState is one instance of a passive bound to a combatant. Decks
// with several copies of a card get several independent instances.
type passiveState struct {
	def       game.PassiveDefinition
	ownerID   string
	lastFired float64
	fired     bool
}

// Service evaluates passive trigger conditions for all combatants of a
// single match.
type Service struct {
	defsByCard map[string][]game.PassiveDefinition
	byOwner    map[string][]*passiveState
	// owners preserves registration order so periodic evaluation is
	// deterministic (map iteration order is not).
	owners []string
	rng    *rand.Rand
	now    float64
}

// NewService builds a per-match trigger service from the configured
// passive definitions. The seed keeps chance rolls reproducible.
func NewService(defs []game.PassiveDefinition, seed int64) *Service {
	byCard := make(map[string][]game.PassiveDefinition)
	for _, d := range defs {
		byCard[d.CardName] = append(byCard[d.CardName], d)
	}
	return &Service{
		defsByCard: byCard,
		byOwner:    make(map[string][]*passiveState),
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// InitializePassives binds every passive carried by the combatant's cards
// to that combatant.
func (s *Service) InitializePassives(c *game.Combatant, cards []game.Card) {
	if _, seen := s.byOwner[c.ID]; !seen {
		s.owners = append(s.owners, c.ID)
		s.byOwner[c.ID] = nil
	}
	for _, card := range cards {
		for _, def := range s.defsByCard[card.Name] {
			s.byOwner[c.ID] = append(s.byOwner[c.ID], &passiveState{def: def, ownerID: c.ID})
		}
	}
}

func (s *Service) ready(st *passiveState) bool {
	if !st.fired {
		return true
	}
	return s.now-st.lastFired >= st.def.Cooldown
}

func (s *Service) roll(chance float64) bool {
	if chance >= 1 {
		return true
	}
	if chance <= 0 {
		return false
	}
	return s.rng.Float64() < chance
}

func (s *Service) activate(st *passiveState) game.Activation {
	st.fired = true
	st.lastFired = s.now
	return game.Activation{
		PassiveID: st.def.ID,
		OwnerID:   st.ownerID,
		Effect:    st.def.Effect,
		Magnitude: st.def.Magnitude,
		Duration:  st.def.Duration,
		Count:     st.def.Count,
	}
}

// TriggerPassives evaluates every passive of the combatant bound to the
// given event trigger and returns the activations whose chance and
// cooldown allow them to fire.
func (s *Service) TriggerPassives(trigger game.PassiveTriggerKind, combatantID string, amount float64) []game.Activation {
	var out []game.Activation
	for _, st := range s.byOwner[combatantID] {
		if st.def.Trigger != trigger {
			continue
		}
		if !s.ready(st) || !s.roll(st.def.Chance) {
			continue
		}
		out = append(out, s.activate(st))
	}
	return out
}

// ProcessPeriodicEffects advances the service clock and fires periodic
// passives whose period (the cooldown, min 1s) has elapsed.
func (s *Service) ProcessPeriodicEffects(dt float64) []game.Activation {
	s.now += dt
	var out []game.Activation
	for _, owner := range s.owners {
		for _, st := range s.byOwner[owner] {
			if st.def.Trigger != game.TriggerPeriodic {
				continue
			}
			period := st.def.Cooldown
			if period <= 0 {
				period = defaultPeriod
			}
			if st.fired && s.now-st.lastFired < period {
				continue
			}
			if !st.fired && s.now < period {
				continue
			}
			if !s.roll(st.def.Chance) {
				// a failed roll still consumes this period
				st.fired = true
				st.lastFired = s.now
				continue
			}
			out = append(out, s.activate(st))
		}
	}
	return out
}

// CheckLowHPTriggers fires low-hp passives once the combatant drops to or
// below the threshold ratio; the cooldown gates re-fires while it stays
// low.
func (s *Service) CheckLowHPTriggers(c *game.Combatant) []game.Activation {
	if c == nil || !c.Alive || c.HealthRatio() > lowHPThreshold {
		return nil
	}
	var out []game.Activation
	for _, st := range s.byOwner[c.ID] {
		if st.def.Trigger != game.TriggerLowHP {
			continue
		}
		if !s.ready(st) || !s.roll(st.def.Chance) {
			continue
		}
		out = append(out, s.activate(st))
	}
	return out
}
