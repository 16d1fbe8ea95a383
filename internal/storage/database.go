package storage

import (
	"github.com/yoh91asakura/memes-wars-sub001/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the match archive database and keeps its schema
// updated via AutoMigrate. Live match state never touches the database;
// only finished matches and their event logs are stored here.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.MatchRecord{}, &game.MatchEventRecord{}, &game.DeckStanding{}); err != nil {
		return nil, err
	}
	return db, nil
}
