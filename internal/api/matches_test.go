package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yoh91asakura/memes-wars-sub001/internal/config"
	"github.com/yoh91asakura/memes-wars-sub001/internal/constants"
	"github.com/yoh91asakura/memes-wars-sub001/internal/game"

	"github.com/gin-gonic/gin"
)

type memoryRepo struct {
	matches   []*game.MatchRecord
	standings []game.DeckStanding
	nextID    uint
	failAll   bool
}

func (m *memoryRepo) CreateMatch(rec *game.MatchRecord) error {
	if m.failAll {
		return errors.New("storage down")
	}
	m.nextID++
	rec.ID = m.nextID
	m.matches = append(m.matches, rec)
	return nil
}

func (m *memoryRepo) GetMatchByUUID(uuid string) (*game.MatchRecord, error) {
	if m.failAll {
		return nil, errors.New("storage down")
	}
	for _, r := range m.matches {
		if r.MatchUUID == uuid {
			return r, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *memoryRepo) ListRecentMatches(limit int) ([]game.MatchRecord, error) {
	if m.failAll {
		return nil, errors.New("storage down")
	}
	var out []game.MatchRecord
	for _, r := range m.matches {
		out = append(out, *r)
	}
	return out, nil
}

func (m *memoryRepo) GetMatchEvents(id uint) ([]game.MatchEventRecord, error) {
	if m.failAll {
		return nil, errors.New("storage down")
	}
	for _, r := range m.matches {
		if r.ID == id {
			return r.Events, nil
		}
	}
	return nil, nil
}

func (m *memoryRepo) UpdateStandingsOnMatchEnd(rec *game.MatchRecord) error { return nil }

func (m *memoryRepo) GetTopDecks(limit int) ([]game.DeckStanding, error) {
	if m.failAll {
		return nil, errors.New("storage down")
	}
	return m.standings, nil
}

func testRouter(repo *memoryRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	doge := game.Card{
		Name:   "doge",
		Health: 100,
		Projectile: game.ProjectileDefinition{
			Damage:     25,
			Speed:      600,
			Trajectory: game.TrajectoryHoming,
		},
	}
	cfg := &config.LoadedConfig{
		Cards:      []game.Card{doge},
		CardByName: map[string]game.Card{"doge": doge},
		Synergies:  []game.Synergy{{ID: "s1", RequiredTags: map[string]int{"meme": 2}}},
		Arena: game.Arena{
			Width:            1200,
			Height:           800,
			BounceMultiplier: 0.8,
			RoundDuration:    15,
		},
	}
	h := NewMatchHandler(repo, cfg)

	router := gin.New()
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteCards, h.ListCards)
		apiRoutes.GET(constants.RouteSynergies, h.ListSynergies)
		apiRoutes.GET(constants.RouteLeaderboard, h.ListLeaderboard)
		apiRoutes.POST(constants.RouteMatches, h.CreateMatch)
		apiRoutes.GET(constants.RouteMatches, h.ListMatches)
		apiRoutes.GET(constants.RouteMatchByID, h.GetMatch)
		apiRoutes.GET(constants.RouteMatchEvents, h.GetMatchEvents)
	}
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListCards(t *testing.T) {
	router := testRouter(&memoryRepo{})
	w := doRequest(t, router, http.MethodGet, "/api/cards", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var cards []game.Card
	if err := json.Unmarshal(w.Body.Bytes(), &cards); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(cards) != 1 || cards[0].Name != "doge" {
		t.Fatalf("unexpected catalog: %+v", cards)
	}
}

func TestListSynergies(t *testing.T) {
	router := testRouter(&memoryRepo{})
	w := doRequest(t, router, http.MethodGet, "/api/synergies", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCreateMatchSimulatesAndArchives(t *testing.T) {
	repo := &memoryRepo{}
	router := testRouter(repo)

	w := doRequest(t, router, http.MethodPost, "/api/matches", map[string]interface{}{
		"deck_a_name": "alpha",
		"deck_a":      []string{"doge"},
		"deck_b_name": "beta",
		"deck_b":      []string{"doge"},
		"seed":        42,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var rec game.MatchRecord
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if rec.MatchUUID == "" || rec.Ticks == 0 {
		t.Fatalf("response missing simulation outcome: %+v", rec)
	}
	if len(repo.matches) != 1 {
		t.Fatalf("match not archived")
	}
}

func TestCreateMatchRejectsUnknownCard(t *testing.T) {
	router := testRouter(&memoryRepo{})
	w := doRequest(t, router, http.MethodPost, "/api/matches", map[string]interface{}{
		"deck_a": []string{"harambe"},
		"deck_b": []string{"doge"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateMatchRejectsMalformedBody(t *testing.T) {
	router := testRouter(&memoryRepo{})
	req := httptest.NewRequest(http.MethodPost, "/api/matches", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed json, got %d", w.Code)
	}
}

func TestGetMatchByUUID(t *testing.T) {
	repo := &memoryRepo{}
	router := testRouter(repo)
	repo.CreateMatch(&game.MatchRecord{
		MatchUUID: "abc123",
		WinnerID:  "A",
		Events: []game.MatchEventRecord{
			{Kind: "match_ended", Timestamp: 9.5},
		},
	})

	w := doRequest(t, router, http.MethodGet, "/api/matches/abc123", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/api/matches/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown match, got %d", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/api/matches/abc123/events", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for events, got %d", w.Code)
	}
	var events []game.MatchEventRecord
	if err := json.Unmarshal(w.Body.Bytes(), &events); err != nil {
		t.Fatalf("bad events body: %v", err)
	}
	if len(events) != 1 || events[0].Kind != "match_ended" {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestLeaderboardFailurePropagatesAs500(t *testing.T) {
	router := testRouter(&memoryRepo{failAll: true})
	w := doRequest(t, router, http.MethodGet, "/api/leaderboard", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
