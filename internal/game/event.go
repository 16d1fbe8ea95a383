package game

// MatchPhase is the lifecycle state of a match.
type MatchPhase string

const (
	PhaseWaiting   MatchPhase = "waiting"
	PhaseCountdown MatchPhase = "countdown"
	PhaseActive    MatchPhase = "active"
	PhasePaused    MatchPhase = "paused"
	PhaseEnded     MatchPhase = "ended"
)

// EventKind is the closed set of observable match events. Events carry a
// typed payload struct instead of string-keyed maps so consumers get
// ordering guarantees and exhaustive handling.
type EventKind string

const (
	EventMatchStarted         EventKind = "match_started"
	EventPhaseChanged         EventKind = "phase_changed"
	EventCountdownTick        EventKind = "countdown_tick"
	EventProjectileFired      EventKind = "projectile_fired"
	EventProjectileHit        EventKind = "projectile_hit"
	EventPlayerDamaged        EventKind = "player_damaged"
	EventPlayerKilled         EventKind = "player_killed"
	EventSynergiesInitialized EventKind = "synergies_initialized"
	EventPassiveTriggered     EventKind = "passive_triggered"
	EventProjectileCapReached EventKind = "projectile_cap_reached"
	EventMatchEnded           EventKind = "match_ended"
)

// EventPayload is the data attached to a CombatEvent. Only the fields
// relevant to the event kind are set; the rest stay zero.
type EventPayload struct {
	CombatantID  string     `json:"combatant_id,omitempty"`
	SourceID     string     `json:"source_id,omitempty"`
	TargetID     string     `json:"target_id,omitempty"`
	ProjectileID int        `json:"projectile_id,omitempty"`
	Amount       float64    `json:"amount,omitempty"`
	Count        int        `json:"count,omitempty"`
	Phase        MatchPhase `json:"phase,omitempty"`
	WinnerID     string     `json:"winner_id,omitempty"`
	Draw         bool       `json:"draw,omitempty"`
	Detail       string     `json:"detail,omitempty"`
}

// CombatEvent is one observable record of a state change. Timestamp is
// absolute match time in seconds (0 at the start of the active phase).
type CombatEvent struct {
	Kind      EventKind    `json:"kind"`
	Timestamp float64      `json:"timestamp"`
	Payload   EventPayload `json:"payload"`
}
