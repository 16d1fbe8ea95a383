package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/yoh91asakura/memes-wars-sub001/internal/game"
)

type rawConfig struct {
	CardList    []game.Card              `json:"card_list"`
	SynergyList []game.Synergy           `json:"synergy_list"`
	PassiveList []game.PassiveDefinition `json:"passive_list"`
	Arena       *game.Arena              `json:"arena"`
	Server      *struct {
		Address string `json:"address"`
	} `json:"server"`
}

// LoadedConfig contains the card catalog, synergy and passive definitions,
// the default arena and the server address to bind to.
type LoadedConfig struct {
	Cards      []game.Card
	CardByName map[string]game.Card
	Synergies  []game.Synergy
	Passives   []game.PassiveDefinition
	Arena      game.Arena
	// ServerAddress defaults to ":8080" when the config omits it.
	ServerAddress string
}

// Deck builds a deck from card names against the loaded catalog. Unknown
// names are an error; lookups are case-insensitive.
func (c *LoadedConfig) Deck(name string, cardNames []string) (game.Deck, error) {
	d := game.Deck{Name: name}
	for _, n := range cardNames {
		card, ok := c.CardByName[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return game.Deck{}, fmt.Errorf("unknown card %q", n)
		}
		d.Cards = append(d.Cards, card)
	}
	return d, nil
}

// LoadConfig reads the configuration file at path and returns the content
// catalog. It requires the key `card_list` (snake_case).
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.CardList) == 0 {
		return nil, fmt.Errorf("config file %s: card_list is empty (provide a 'card_list' array)", path)
	}

	byName := make(map[string]game.Card, len(rc.CardList))
	for _, card := range rc.CardList {
		if card.Name == "" {
			return nil, fmt.Errorf("config file %s: card entry missing 'name'", path)
		}
		ln := strings.ToLower(strings.TrimSpace(card.Name))
		if _, exists := byName[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate card name '%s'", path, card.Name)
		}
		if card.Health <= 0 {
			return nil, fmt.Errorf("config file %s: card '%s' needs positive health", path, card.Name)
		}
		p := card.Projectile
		if p.Speed <= 0 {
			return nil, fmt.Errorf("config file %s: card '%s' needs positive projectile speed", path, card.Name)
		}
		if p.Damage < 0 {
			return nil, fmt.Errorf("config file %s: card '%s' has negative projectile damage", path, card.Name)
		}
		if !game.KnownTrajectory(p.Trajectory) {
			return nil, fmt.Errorf("config file %s: card '%s' has unknown trajectory '%s'", path, card.Name, p.Trajectory)
		}
		if p.Effect != game.EffectNone && !game.KnownEffect(p.Effect) {
			return nil, fmt.Errorf("config file %s: card '%s' has unknown effect '%s'", path, card.Name, p.Effect)
		}
		byName[ln] = card
	}

	// Cross-entry validation for synergies: unique ids, known bonus kinds
	// and at least one tag requirement so every synergy is reachable.
	synSet := make(map[string]struct{}, len(rc.SynergyList))
	for _, syn := range rc.SynergyList {
		if syn.ID == "" {
			return nil, fmt.Errorf("config file %s: synergy entry missing 'id'", path)
		}
		if _, exists := synSet[syn.ID]; exists {
			return nil, fmt.Errorf("config file %s: duplicate synergy id '%s'", path, syn.ID)
		}
		synSet[syn.ID] = struct{}{}
		if len(syn.RequiredTags) == 0 {
			return nil, fmt.Errorf("config file %s: synergy '%s' has no required tags", path, syn.ID)
		}
		for tag, n := range syn.RequiredTags {
			if tag == "" || n <= 0 {
				return nil, fmt.Errorf("config file %s: synergy '%s' has an invalid tag requirement", path, syn.ID)
			}
		}
		for _, b := range syn.Bonuses {
			if !game.KnownSynergyBonus(b.Kind) {
				return nil, fmt.Errorf("config file %s: synergy '%s' has unknown bonus kind '%s'", path, syn.ID, b.Kind)
			}
		}
	}

	passiveSet := make(map[string]struct{}, len(rc.PassiveList))
	for _, pd := range rc.PassiveList {
		if pd.ID == "" {
			return nil, fmt.Errorf("config file %s: passive entry missing 'id'", path)
		}
		if _, exists := passiveSet[pd.ID]; exists {
			return nil, fmt.Errorf("config file %s: duplicate passive id '%s'", path, pd.ID)
		}
		passiveSet[pd.ID] = struct{}{}
		if _, ok := byName[strings.ToLower(pd.CardName)]; !ok {
			return nil, fmt.Errorf("config file %s: passive '%s' references unknown card '%s'", path, pd.ID, pd.CardName)
		}
		if !game.KnownPassiveTrigger(pd.Trigger) {
			return nil, fmt.Errorf("config file %s: passive '%s' has unknown trigger '%s'", path, pd.ID, pd.Trigger)
		}
		if pd.Chance < 0 || pd.Chance > 1 {
			return nil, fmt.Errorf("config file %s: passive '%s' chance must be within [0,1]", path, pd.ID)
		}
		switch pd.Effect {
		case game.PassiveHeal, game.PassiveBoost, game.PassiveShield, game.PassiveBurn,
			game.PassiveFreeze, game.PassivePoison, game.PassiveLucky, game.PassiveBurst,
			game.PassiveReflect, game.PassiveMultiply:
		default:
			return nil, fmt.Errorf("config file %s: passive '%s' has unknown effect '%s'", path, pd.ID, pd.Effect)
		}
		// Extra-shot passives without a cooldown would chain into
		// unbounded fire loops; require one.
		if pd.Effect == game.PassiveBurst || pd.Effect == game.PassiveMultiply {
			if pd.Count <= 0 {
				return nil, fmt.Errorf("config file %s: passive '%s' needs a positive 'count'", path, pd.ID)
			}
			if pd.Cooldown <= 0 {
				return nil, fmt.Errorf("config file %s: passive '%s' needs a positive 'cooldown'", path, pd.ID)
			}
		}
	}

	arena := game.Arena{
		Width:            1200,
		Height:           800,
		Gravity:          0,
		BounceMultiplier: 0.8,
		RoundDuration:    60,
	}
	if rc.Arena != nil {
		arena = *rc.Arena
		if arena.Width <= 0 || arena.Height <= 0 {
			return nil, fmt.Errorf("config file %s: arena dimensions must be positive", path)
		}
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	return &LoadedConfig{
		Cards:         rc.CardList,
		CardByName:    byName,
		Synergies:     rc.SynergyList,
		Passives:      rc.PassiveList,
		Arena:         arena,
		ServerAddress: addr,
	}, nil
}
