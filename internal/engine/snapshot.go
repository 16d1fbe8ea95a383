package engine

import "github.com/yoh91asakura/memes-wars-sub001/internal/game"

// State is a read-only snapshot of the match. Everything is copied;
// mutating a snapshot never touches live state.
type State struct {
	Phase         game.MatchPhase   `json:"phase"`
	Elapsed       float64           `json:"elapsed"`
	TimeRemaining float64           `json:"time_remaining"`
	Countdown     float64           `json:"countdown,omitempty"`
	WinnerID      string            `json:"winner_id,omitempty"`
	Draw          bool              `json:"draw,omitempty"`
	Combatants    []game.Combatant  `json:"combatants"`
	Projectiles   []game.Projectile `json:"projectiles"`
}

// State returns an immutable snapshot of the current match state.
func (m *MatchController) State() State {
	s := State{
		Phase:         m.phase,
		Elapsed:       m.now,
		TimeRemaining: m.timeRemaining,
		Countdown:     m.countdown,
		WinnerID:      m.winnerID,
		Draw:          m.draw,
		Combatants:    make([]game.Combatant, 0, len(m.combatants)),
		Projectiles:   make([]game.Projectile, 0, len(m.projectiles.list)),
	}
	for _, c := range m.combatants {
		cc := *c
		cc.Effects = make([]*game.ActiveEffect, 0, len(c.Effects))
		for _, e := range c.Effects {
			ee := *e
			cc.Effects = append(cc.Effects, &ee)
		}
		cc.Deck.Cards = append([]game.Card(nil), c.Deck.Cards...)
		s.Combatants = append(s.Combatants, cc)
	}
	for _, p := range m.projectiles.list {
		if !p.Active {
			continue
		}
		pp := *p
		pp.Effects = append([]game.EffectSpec(nil), p.Effects...)
		s.Projectiles = append(s.Projectiles, pp)
	}
	return s
}
