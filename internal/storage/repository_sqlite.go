package storage

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yoh91asakura/memes-wars-sub001/internal/game"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateMatch(rec *game.MatchRecord) error {
	return r.db.Create(rec).Error
}

func (r *sqliteRepository) GetMatchByUUID(uuid string) (*game.MatchRecord, error) {
	var rec game.MatchRecord
	if err := r.db.Where("match_uuid = ?", uuid).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *sqliteRepository) ListRecentMatches(limit int) ([]game.MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var recs []game.MatchRecord
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *sqliteRepository) GetMatchEvents(matchRecordID uint) ([]game.MatchEventRecord, error) {
	var events []game.MatchEventRecord
	err := r.db.Where("match_record_id = ?", matchRecordID).
		Order("timestamp ASC, id ASC").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// UpdateStandingsOnMatchEnd upserts one standings row per deck. The upsert
// uses ON CONFLICT on the unique deck key so concurrent hosts stay safe
// under SQLite.
func (r *sqliteRepository) UpdateStandingsOnMatchEnd(rec *game.MatchRecord) error {
	apply := func(key, name string, wins, losses, draws int) error {
		row := game.DeckStanding{DeckKey: key, DeckName: name, Wins: wins, Losses: losses, Draws: draws}
		return r.db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "deck_key"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"wins":   gorm.Expr("wins + ?", wins),
				"losses": gorm.Expr("losses + ?", losses),
				"draws":  gorm.Expr("draws + ?", draws),
			}),
		}).Create(&row).Error
	}

	var aW, aL, aD, bW, bL, bD int
	switch {
	case rec.Draw:
		aD, bD = 1, 1
	case rec.WinnerID == "A":
		aW, bL = 1, 1
	case rec.WinnerID == "B":
		bW, aL = 1, 1
	}
	if err := apply(rec.DeckAKey, rec.DeckAName, aW, aL, aD); err != nil {
		return err
	}
	return apply(rec.DeckBKey, rec.DeckBName, bW, bL, bD)
}

func (r *sqliteRepository) GetTopDecks(limit int) ([]game.DeckStanding, error) {
	if limit <= 0 {
		limit = 10
	}
	var standings []game.DeckStanding
	err := r.db.Order("wins DESC, draws DESC, losses ASC").Limit(limit).Find(&standings).Error
	if err != nil {
		return nil, err
	}
	return standings, nil
}
