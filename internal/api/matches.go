package api

import (
	"net/http"

	"github.com/yoh91asakura/memes-wars-sub001/internal/constants"
	"github.com/yoh91asakura/memes-wars-sub001/internal/dedupe"
	"github.com/yoh91asakura/memes-wars-sub001/internal/game"
	"github.com/yoh91asakura/memes-wars-sub001/internal/logging"
	"github.com/yoh91asakura/memes-wars-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateMatch runs a headless simulation between two decks and returns the
// archived record. Identical concurrent requests (same decks, same seed)
// collapse into a single simulation via the dedupe group.
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req service.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	v, err, _ := dedupe.SimulationGroup.Do(req.Key(), func() (interface{}, error) {
		return service.RunMatch(h.repo, h.cfg, req)
	})
	if err != nil {
		logging.Error("match simulation failed", err, logging.Fields{
			constants.LogFieldDeckA: req.DeckAName,
			constants.LogFieldDeckB: req.DeckBName,
			constants.LogFieldSeed:  req.Seed,
		})
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrFailedRunMatch, constants.JSONKeyMessage: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, v.(*game.MatchRecord))
}

// ListMatches returns recently archived matches.
func (h *MatchHandler) ListMatches(c *gin.Context) {
	recs, err := h.repo.ListRecentMatches(20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMatches})
		return
	}
	c.JSON(http.StatusOK, recs)
}

// GetMatch returns one archived match by its uuid.
func (h *MatchHandler) GetMatch(c *gin.Context) {
	rec, ok := h.findMatch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetMatchEvents returns the archived event log for a match.
func (h *MatchHandler) GetMatchEvents(c *gin.Context) {
	rec, ok := h.findMatch(c)
	if !ok {
		return
	}
	events, err := h.repo.GetMatchEvents(rec.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchEvents})
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *MatchHandler) findMatch(c *gin.Context) (*game.MatchRecord, bool) {
	uuid := c.Param("matchID")
	if uuid == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchID})
		return nil, false
	}
	rec, err := h.repo.GetMatchByUUID(uuid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return nil, false
	}
	return rec, true
}
