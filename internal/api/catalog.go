package api

import (
	"net/http"

	"github.com/yoh91asakura/memes-wars-sub001/internal/constants"

	"github.com/gin-gonic/gin"
)

// ListCards returns the configured card catalog.
func (h *MatchHandler) ListCards(c *gin.Context) {
	c.JSON(http.StatusOK, h.cfg.Cards)
}

// ListSynergies returns the configured synergy definitions.
func (h *MatchHandler) ListSynergies(c *gin.Context) {
	c.JSON(http.StatusOK, h.cfg.Synergies)
}

// ListLeaderboard returns deck standings ordered by wins.
func (h *MatchHandler) ListLeaderboard(c *gin.Context) {
	standings, err := h.repo.GetTopDecks(10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, standings)
}
