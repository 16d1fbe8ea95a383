package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/yoh91asakura/memes-wars-sub001/internal/config"
	"github.com/yoh91asakura/memes-wars-sub001/internal/constants"
	"github.com/yoh91asakura/memes-wars-sub001/internal/engine"
	"github.com/yoh91asakura/memes-wars-sub001/internal/game"
	"github.com/yoh91asakura/memes-wars-sub001/internal/keys"
	"github.com/yoh91asakura/memes-wars-sub001/internal/logging"
	"github.com/yoh91asakura/memes-wars-sub001/internal/passives"
	"github.com/yoh91asakura/memes-wars-sub001/internal/storage"
)

const (
	// fixedDT keeps headless simulations bit-reproducible for a seed.
	fixedDT = 1.0 / 60.0

	// Slack beyond countdown + round duration before the tick cap trips;
	// the cap only guards against a win-condition bug looping forever.
	tickCapSlack = 5.0

	// maxArchivedEvents bounds the per-match event log rows.
	maxArchivedEvents = 5000
)

var ErrDeckEmpty = errors.New("deck must contain at least one card")

// MatchRequest names the two decks to simulate and the seed that makes
// the run reproducible.
type MatchRequest struct {
	DeckAName  string   `json:"deck_a_name"`
	DeckACards []string `json:"deck_a"`
	DeckBName  string   `json:"deck_b_name"`
	DeckBCards []string `json:"deck_b"`
	Seed       int64    `json:"seed"`
}

// Key returns the dedupe key for this request: canonical deck keys plus
// the seed, so identical concurrent requests collapse to one simulation.
func (r MatchRequest) Key() string {
	return fmt.Sprintf("%s|%s|%d",
		keys.DeckKeyFromCardNames(r.DeckACards),
		keys.DeckKeyFromCardNames(r.DeckBCards),
		r.Seed)
}

// RunMatch simulates a full headless match at a fixed tick rate, archives
// the outcome and its event log, and updates deck standings. The provided
// record is persisted before returning.
func RunMatch(repo storage.Repository, cfg *config.LoadedConfig, req MatchRequest) (*game.MatchRecord, error) {
	if len(req.DeckACards) == 0 || len(req.DeckBCards) == 0 {
		return nil, ErrDeckEmpty
	}
	deckA, err := cfg.Deck(deckName(req.DeckAName, "Deck A"), req.DeckACards)
	if err != nil {
		return nil, err
	}
	deckB, err := cfg.Deck(deckName(req.DeckBName, "Deck B"), req.DeckBCards)
	if err != nil {
		return nil, err
	}

	// Separate seed stream for trigger rolls so adding a passive does not
	// perturb the engine's own rolls.
	triggers := passives.NewService(cfg.Passives, req.Seed+1)
	m, err := engine.NewMatch(deckA, deckB, cfg.Arena, cfg.Synergies, triggers, req.Seed)
	if err != nil {
		return nil, err
	}
	if err := m.StartBattle(); err != nil {
		return nil, err
	}

	maxTicks := int((cfg.Arena.RoundDuration + tickCapSlack + 4) / fixedDT)
	ticks := 0
	for m.Phase() != game.PhaseEnded && ticks < maxTicks {
		m.ProcessFrame(fixedDT)
		ticks++
	}
	events := m.DrainEvents()
	winnerID, decided := m.DetermineWinner()
	if !decided {
		// tick cap tripped; archive what we have as a draw
		logging.Warn("match hit tick cap before resolving", logging.Fields{
			constants.LogFieldDeckA: deckA.Name,
			constants.LogFieldDeckB: deckB.Name,
			constants.LogFieldSeed:  req.Seed,
		})
	}

	st := m.State()
	rec := &game.MatchRecord{
		MatchUUID: newMatchUUID(),
		DeckAName: deckA.Name,
		DeckBName: deckB.Name,
		DeckAKey:  keys.DeckKeyFromCardNames(req.DeckACards),
		DeckBKey:  keys.DeckKeyFromCardNames(req.DeckBCards),
		Seed:      req.Seed,
		WinnerID:  winnerID,
		Draw:      decided && winnerID == "",
		Duration:  st.Elapsed,
		Ticks:     ticks,
	}
	for _, c := range st.Combatants {
		switch c.ID {
		case engine.SideA:
			rec.ShotsFiredA = c.Stats.ShotsFired
			rec.ShotsHitA = c.Stats.ShotsHit
			rec.DamageDealtA = c.Stats.DamageDealt
		case engine.SideB:
			rec.ShotsFiredB = c.Stats.ShotsFired
			rec.ShotsHitB = c.Stats.ShotsHit
			rec.DamageDealtB = c.Stats.DamageDealt
		}
	}
	for i, ev := range events {
		if i >= maxArchivedEvents {
			break
		}
		rec.Events = append(rec.Events, game.MatchEventRecord{
			Kind:        string(ev.Kind),
			Timestamp:   ev.Timestamp,
			CombatantID: ev.Payload.CombatantID,
			TargetID:    ev.Payload.TargetID,
			Amount:      ev.Payload.Amount,
			Detail:      ev.Payload.Detail,
		})
	}

	if err := repo.CreateMatch(rec); err != nil {
		return nil, err
	}
	if err := repo.UpdateStandingsOnMatchEnd(rec); err != nil {
		logging.Error("failed to update deck standings", err, logging.Fields{
			constants.LogFieldMatchUUID: rec.MatchUUID,
		})
	}
	logging.Info("match archived", logging.Fields{
		constants.LogFieldMatchUUID: rec.MatchUUID,
		constants.LogFieldDeckA:     deckA.Name,
		constants.LogFieldDeckB:     deckB.Name,
		constants.LogFieldSeed:      req.Seed,
		"winner":                    winnerID,
		"ticks":                     ticks,
	})
	return rec, nil
}

func deckName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

func newMatchUUID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// extremely unlikely; a zero id still round-trips
		return "00000000000000000000000000000000"
	}
	return hex.EncodeToString(b)
}
