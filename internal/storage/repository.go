package storage

import "github.com/yoh91asakura/memes-wars-sub001/internal/game"

type Repository interface {
	// CreateMatch stores a finished match record together with its event
	// log rows.
	CreateMatch(rec *game.MatchRecord) error
	GetMatchByUUID(uuid string) (*game.MatchRecord, error)
	ListRecentMatches(limit int) ([]game.MatchRecord, error)
	// GetMatchEvents returns the archived event log for a match record id.
	GetMatchEvents(matchRecordID uint) ([]game.MatchEventRecord, error)
	// UpdateStandingsOnMatchEnd upserts both decks' standings rows from
	// the match outcome.
	UpdateStandingsOnMatchEnd(rec *game.MatchRecord) error
	// Leaderboard
	GetTopDecks(limit int) ([]game.DeckStanding, error)
}
