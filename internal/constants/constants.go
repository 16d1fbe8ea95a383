package constants

// Centralized constants for env keys, routes, messages and log fields.
const (
	// Environment variable keys
	EnvConfigPath = "MEMES_CONFIG"
	EnvDBPath     = "MEMES_DB"

	// Defaults
	DefaultConfigPath    = "./memes_config.json"
	DefaultDBPath        = "./data/memes-wars.db"
	DefaultServerAddress = ":8080"
)

// Routes used by the backend router
const (
	RouteAPIPrefix   = "/api"
	RouteCards       = "/cards"
	RouteSynergies   = "/synergies"
	RouteMatches     = "/matches"
	RouteMatchByID   = "/matches/:matchID"
	RouteMatchEvents = "/matches/:matchID/events"
	RouteLeaderboard = "/leaderboard"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrInvalidMatchID         = "Invalid match ID"
	ErrMatchNotFound          = "Match not found"
	ErrUnknownCard            = "Unknown card in deck"
	ErrFailedRunMatch         = "Failed to run match"
	ErrFailedFetchMatches     = "Failed to fetch matches"
	ErrFailedFetchEvents      = "Failed to fetch match events"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
)

// Logging field names
const (
	LogFieldMatchUUID  = "match_uuid"
	LogFieldDeckA      = "deck_a"
	LogFieldDeckB      = "deck_b"
	LogFieldSeed       = "seed"
	LogFieldCombatant  = "combatant_id"
	LogFieldEffectKind = "effect_kind"
	LogFieldPassiveID  = "passive_id"
	LogFieldAddr       = "addr"
)
