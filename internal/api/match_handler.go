package api

import (
	"github.com/yoh91asakura/memes-wars-sub001/internal/config"
	"github.com/yoh91asakura/memes-wars-sub001/internal/storage"
)

// MatchHandler groups all simulation-related HTTP handlers.
type MatchHandler struct {
	repo storage.Repository
	cfg  *config.LoadedConfig
}

// NewMatchHandler creates a new MatchHandler with the given repository and
// loaded content configuration.
func NewMatchHandler(repo storage.Repository, cfg *config.LoadedConfig) *MatchHandler {
	return &MatchHandler{repo: repo, cfg: cfg}
}
