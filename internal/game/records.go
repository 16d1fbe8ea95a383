package game

import "gorm.io/gorm"

// MatchRecord is the persisted outcome of one simulated match. Live match
// state never touches the database; only the final record and its event
// log are archived.
type MatchRecord struct {
	gorm.Model
	MatchUUID string `json:"match_uuid" gorm:"uniqueIndex"`

	DeckAName string `json:"deck_a_name"`
	DeckBName string `json:"deck_b_name"`
	// Canonical deck keys (see internal/keys) used for standings lookups.
	DeckAKey string `json:"deck_a_key" gorm:"index"`
	DeckBKey string `json:"deck_b_key" gorm:"index"`

	Seed int64 `json:"seed"`

	// WinnerID is "A" or "B"; empty with Draw=true for draws.
	WinnerID string  `json:"winner_id"`
	Draw     bool    `json:"draw"`
	Duration float64 `json:"duration"`
	Ticks    int     `json:"ticks"`

	ShotsFiredA  int     `json:"shots_fired_a"`
	ShotsHitA    int     `json:"shots_hit_a"`
	DamageDealtA float64 `json:"damage_dealt_a"`
	ShotsFiredB  int     `json:"shots_fired_b"`
	ShotsHitB    int     `json:"shots_hit_b"`
	DamageDealtB float64 `json:"damage_dealt_b"`

	Events []MatchEventRecord `json:"events,omitempty"`
}

// MatchEventRecord is one archived combat event row.
type MatchEventRecord struct {
	gorm.Model
	MatchRecordID uint    `json:"-" gorm:"index"`
	Kind          string  `json:"kind"`
	Timestamp     float64 `json:"timestamp"`
	CombatantID   string  `json:"combatant_id"`
	TargetID      string  `json:"target_id"`
	Amount        float64 `json:"amount"`
	Detail        string  `json:"detail"`
}

// TableName keeps the archived event rows under a descriptive table name.
func (MatchEventRecord) TableName() string { return "match_event_log" }

// DeckStanding aggregates results per canonical deck key for the
// leaderboard endpoint.
type DeckStanding struct {
	gorm.Model
	DeckKey  string `json:"deck_key" gorm:"uniqueIndex"`
	DeckName string `json:"deck_name"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Draws    int    `json:"draws"`
}
