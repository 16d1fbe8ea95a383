package engine

import (
	"math"
	"math/rand"

	"github.com/yoh91asakura/memes-wars-sub001/internal/game"
)

// MatchController orchestrates the fixed per-tick pipeline and owns every
// piece of mutable match state: the combatants, the projectile list, the
// active effects, the scheduled-action queue and the event log. All
// mutation is synchronous within one ProcessFrame call; external consumers
// read snapshots (State) and issue commands only through the public
// surface. One controller simulates exactly one match.
type MatchController struct {
	arena      game.Arena
	combatants []*game.Combatant

	projectiles *projectileSystem
	collisions  *collisionResolver
	effects     *effectEngine
	synergies   *SynergyModifier
	passives    PassiveService
	schedule    *actionSchedule
	rng         *rand.Rand

	phase         game.MatchPhase
	now           float64
	timeRemaining float64
	countdown     float64
	winnerID      string
	draw          bool

	listeners      map[game.EventKind]map[int]EventListener
	nextListenerID int
	log            []game.CombatEvent
	nextEffectID   int
}

// SideA and SideB are the fixed combatant identifiers of a duel.
const (
	SideA = "A"
	SideB = "B"
)

// NewMatch validates the configuration, builds both combatants, runs
// synergy detection once per side and initializes passive state. A
// ConfigurationError rejects the match before any state is observable.
func NewMatch(deckA, deckB game.Deck, arena game.Arena, synergyDefs []game.Synergy, passives PassiveService, seed int64) (*MatchController, error) {
	if err := validateArena(arena); err != nil {
		return nil, err
	}
	if err := validateDeck(SideA, deckA); err != nil {
		return nil, err
	}
	if err := validateDeck(SideB, deckB); err != nil {
		return nil, err
	}
	if arena.RoundDuration <= 0 {
		arena.RoundDuration = defaultRoundDuration
	}
	if passives == nil {
		passives = nopPassives{}
	}

	m := &MatchController{
		arena:         arena,
		projectiles:   newProjectileSystem(arena),
		collisions:    newCollisionResolver(arena),
		effects:       newEffectEngine(),
		synergies:     NewSynergyModifier(synergyDefs),
		passives:      passives,
		schedule:      newActionSchedule(),
		rng:           rand.New(rand.NewSource(seed)),
		phase:         game.PhaseWaiting,
		timeRemaining: arena.RoundDuration,
	}

	m.combatants = []*game.Combatant{
		buildCombatant(SideA, deckA, arena.SpawnPoint(0)),
		buildCombatant(SideB, deckB, arena.SpawnPoint(1)),
	}

	for _, c := range m.combatants {
		active := m.synergies.DetectSynergies(c.Deck.Cards)
		m.synergies.ApplyBonuses(c, active)
		m.emit(game.EventSynergiesInitialized, game.EventPayload{
			CombatantID: c.ID,
			Count:       len(active),
		})
		m.passives.InitializePassives(c, c.Deck.Cards)
		m.projectiles.buildSequence(c)
	}
	return m, nil
}

func validateArena(a game.Arena) error {
	if a.Width <= 0 || a.Height <= 0 {
		return configErrorf("arena dimensions must be positive, got %.0fx%.0f", a.Width, a.Height)
	}
	if a.BounceMultiplier < 0 {
		return configErrorf("bounce multiplier must not be negative")
	}
	for i, o := range a.Obstacles {
		if o.Width <= 0 || o.Height <= 0 {
			return configErrorf("obstacle %d has non-positive size", i)
		}
	}
	return nil
}

func validateDeck(side string, d game.Deck) error {
	if len(d.Cards) == 0 {
		return configErrorf("deck %s is empty", side)
	}
	for _, card := range d.Cards {
		if card.Name == "" {
			return configErrorf("deck %s contains a card without a name", side)
		}
		if card.Health <= 0 {
			return configErrorf("card %q has non-positive health", card.Name)
		}
		p := card.Projectile
		if p.Damage < 0 {
			return configErrorf("card %q has negative projectile damage", card.Name)
		}
		if p.Speed <= 0 {
			return configErrorf("card %q has non-positive projectile speed", card.Name)
		}
		if !game.KnownTrajectory(p.Trajectory) {
			return configErrorf("card %q has unknown trajectory %q", card.Name, p.Trajectory)
		}
		if p.Effect != game.EffectNone && !game.KnownEffect(p.Effect) {
			return configErrorf("card %q has unknown effect %q", card.Name, p.Effect)
		}
		if p.MaxBounces < 0 {
			return configErrorf("card %q has negative max bounces", card.Name)
		}
	}
	return nil
}

func buildCombatant(id string, deck game.Deck, spawn game.Vec2) *game.Combatant {
	health := 0.0
	for _, card := range deck.Cards {
		health += card.Health
	}
	return &game.Combatant{
		ID:        id,
		Name:      deck.Name,
		Position:  spawn,
		Radius:    defaultCombatantRadius,
		Health:    health,
		MaxHealth: health,
		MaxShield: health * shieldHealthRatio,
		FireRate:  defaultFireRate,
		MoveSpeed: defaultMoveSpeed,
		Deck:      deck,
		Alive:     true,
	}
}

// StartBattle transitions waiting → countdown and emits match_started.
// The 3-2-1 sequence then runs on subsequent ProcessFrame calls.
func (m *MatchController) StartBattle() error {
	if m.phase != game.PhaseWaiting {
		return configErrorf("battle already started (phase %s)", m.phase)
	}
	m.countdown = countdownSeconds
	m.setPhase(game.PhaseCountdown)
	m.emit(game.EventMatchStarted, game.EventPayload{
		SourceID: m.combatants[0].ID,
		TargetID: m.combatants[1].ID,
	})
	m.emit(game.EventCountdownTick, game.EventPayload{Count: int(countdownSeconds)})
	return nil
}

// Pause suspends frame processing; in-flight state is untouched.
func (m *MatchController) Pause() {
	if m.phase == game.PhaseActive {
		m.setPhase(game.PhasePaused)
	}
}

// Resume re-enables frame processing after a pause.
func (m *MatchController) Resume() {
	if m.phase == game.PhasePaused {
		m.setPhase(game.PhaseActive)
	}
}

// Phase returns the current lifecycle phase.
func (m *MatchController) Phase() game.MatchPhase { return m.phase }

// Elapsed returns the absolute match time in seconds.
func (m *MatchController) Elapsed() float64 { return m.now }

// ProcessFrame advances the simulation by dt seconds. It is a no-op
// outside the countdown and active phases; dt is clamped to a maximum
// per-tick value so an abnormally large delta cannot tunnel projectiles
// through collision checks. Subsystems execute in fixed order, exactly
// once per call.
func (m *MatchController) ProcessFrame(dt float64) {
	if dt <= 0 {
		return
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	switch m.phase {
	case game.PhaseCountdown:
		m.advanceCountdown(dt)
		return
	case game.PhaseActive:
	default:
		return
	}

	m.now += dt

	m.drainSchedule()
	m.projectiles.advance(m, dt)                                  // 1. advance projectiles
	m.effects.update(m, dt)                                       // 2. tick active effects
	m.applyActivations(m.passives.ProcessPeriodicEffects(dt))     // 3. periodic passives
	m.autoFire(dt)                                                // 4. auto-fire
	m.collisions.resolve(m)                                       // 5. resolve collisions
	m.timeRemaining -= dt                                         // 6. round clock
	m.checkWinCondition()                                         // 7. win condition
	m.updateAggregates()                                          // 8. aggregate statistics
	m.projectiles.compact()
}

func (m *MatchController) advanceCountdown(dt float64) {
	before := int(math.Ceil(m.countdown))
	m.countdown -= dt
	after := int(math.Ceil(m.countdown))
	if after < before && after > 0 {
		m.emit(game.EventCountdownTick, game.EventPayload{Count: after})
	}
	if m.countdown <= 0 {
		m.setPhase(game.PhaseActive)
		for _, c := range m.combatants {
			m.applyActivations(m.passives.TriggerPassives(game.TriggerBattleStart, c.ID, 0))
		}
	}
}

// autoFire drifts each alive combatant along its deterministic strafe
// pattern and fires whenever the fire timer elapses. Stunned combatants
// (effective fire rate zero) hold fire but keep their timer.
func (m *MatchController) autoFire(dt float64) {
	for _, c := range m.combatants {
		if !c.Alive {
			continue
		}

		if ms := effectiveMoveSpeed(c); ms > 0 {
			c.StrafePhase += dt
			c.Position.Y += math.Sin(c.StrafePhase*strafeFrequency) * ms * dt
			if c.Position.Y < c.Radius {
				c.Position.Y = c.Radius
			}
			if c.Position.Y > m.arena.Height-c.Radius {
				c.Position.Y = m.arena.Height - c.Radius
			}
		}

		rate := effectiveFireRate(c)
		if rate <= 0 {
			continue
		}
		c.FireTimer -= dt
		for c.FireTimer <= 0 {
			m.projectiles.fire(m, c)
			c.FireTimer += 1.0 / rate
		}
	}
}

// applyDamage resolves a hit against target: synergy damage bonus and
// critical roll for the source, shield absorption before health, reflect
// return, passive triggers and the kill check. Dead targets cannot be
// damaged further.
func (m *MatchController) applyDamage(source, target *game.Combatant, amount float64, allowReflect bool) {
	if target == nil || !target.Alive || amount <= 0 {
		return
	}

	detail := ""
	if source != nil {
		if chance := m.synergies.CritChance(source.ID) + source.LuckyBonus; chance > 0 && m.rng.Float64() < chance {
			amount *= critDamageMultiplier
			detail = "crit"
		}
		amount = m.synergies.DamageBonus(source.ID, amount)
	}

	absorbed := amount
	if absorbed > target.Shield {
		absorbed = target.Shield
	}
	target.Shield -= absorbed
	hp := amount - absorbed
	target.Health -= hp
	if target.Health < 0 {
		target.Health = 0
	}

	target.Stats.DamageTaken += amount
	if source != nil {
		source.Stats.DamageDealt += amount
	}

	sourceID := ""
	if source != nil {
		sourceID = source.ID
	}
	m.emit(game.EventPlayerDamaged, game.EventPayload{
		CombatantID: target.ID,
		SourceID:    sourceID,
		Amount:      amount,
		Detail:      detail,
	})

	if allowReflect && target.ReflectFraction > 0 && source != nil && source.Alive {
		m.applyDamage(target, source, amount*target.ReflectFraction, false)
	}

	m.applyActivations(m.passives.TriggerPassives(game.TriggerOnDamage, target.ID, amount))
	if target.Alive && target.Health > 0 {
		m.applyActivations(m.passives.CheckLowHPTriggers(target))
	}

	if target.Health <= 0 && target.Alive {
		m.kill(target, source)
	}
}

// applyEffectDamage is the burn/poison tick path: straight to health,
// bypassing shield, crit and reflect.
func (m *MatchController) applyEffectDamage(target *game.Combatant, sourceID string, amount float64) {
	if target == nil || !target.Alive || amount <= 0 {
		return
	}
	target.Health -= amount
	if target.Health < 0 {
		target.Health = 0
	}
	target.Stats.DamageTaken += amount
	if source := m.combatant(sourceID); source != nil {
		source.Stats.DamageDealt += amount
	}
	m.emit(game.EventPlayerDamaged, game.EventPayload{
		CombatantID: target.ID,
		SourceID:    sourceID,
		Amount:      amount,
		Detail:      "effect",
	})
	if target.Health <= 0 {
		m.kill(target, m.combatant(sourceID))
	}
}

func (m *MatchController) kill(target, source *game.Combatant) {
	target.Alive = false
	target.Health = 0
	target.Effects = nil
	if source != nil {
		source.Stats.Kills++
	}
	sourceID := ""
	if source != nil {
		sourceID = source.ID
	}
	m.emit(game.EventPlayerKilled, game.EventPayload{
		CombatantID: target.ID,
		SourceID:    sourceID,
	})
}

// DetermineWinner reports the match outcome: the winner's id when decided,
// ("", true) for a draw and ("", false) while there is no winner yet. It
// is safe to poll externally at any time.
func (m *MatchController) DetermineWinner() (string, bool) {
	if m.phase == game.PhaseEnded {
		return m.winnerID, true
	}
	alive := m.aliveCombatants()
	switch {
	case len(alive) == 1:
		return alive[0].ID, true
	case len(alive) == 0:
		return "", true
	case m.timeRemaining <= 0:
		return m.timeoutWinner(), true
	}
	return "", false
}

// timeoutWinner picks the combatant with the higher health/maxHealth
// ratio; an exact tie is a draw.
func (m *MatchController) timeoutWinner() string {
	a, b := m.combatants[0], m.combatants[1]
	ra, rb := a.HealthRatio(), b.HealthRatio()
	switch {
	case ra > rb:
		return a.ID
	case rb > ra:
		return b.ID
	}
	return ""
}

func (m *MatchController) checkWinCondition() {
	alive := m.aliveCombatants()
	switch {
	case len(alive) == 1:
		m.endMatch(alive[0].ID)
	case len(alive) == 0:
		// both died the same tick: a draw, not a win for either
		m.endMatch("")
	case m.timeRemaining <= 0:
		m.endMatch(m.timeoutWinner())
	}
}

func (m *MatchController) endMatch(winnerID string) {
	m.winnerID = winnerID
	m.draw = winnerID == ""
	m.setPhase(game.PhaseEnded)
	m.emit(game.EventMatchEnded, game.EventPayload{
		WinnerID: winnerID,
		Draw:     m.draw,
		Amount:   m.now,
	})
}

// updateAggregates is step 8 of the pipeline. Counters are maintained in
// place as the earlier steps run; this hook exists to keep derived
// aggregates (currently nothing beyond the stats structs) consistent at
// tick end.
func (m *MatchController) updateAggregates() {}

func (m *MatchController) setPhase(p game.MatchPhase) {
	if m.phase == p {
		return
	}
	m.phase = p
	m.emit(game.EventPhaseChanged, game.EventPayload{Phase: p})
}

func (m *MatchController) combatant(id string) *game.Combatant {
	for _, c := range m.combatants {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (m *MatchController) aliveCombatants() []*game.Combatant {
	var out []*game.Combatant
	for _, c := range m.combatants {
		if c.Alive {
			out = append(out, c)
		}
	}
	return out
}

// nearestOpponent returns the closest alive opposing combatant, breaking
// exact distance ties randomly.
func (m *MatchController) nearestOpponent(c *game.Combatant) *game.Combatant {
	var best *game.Combatant
	bestDist := math.MaxFloat64
	for _, o := range m.combatants {
		if o.ID == c.ID || !o.Alive {
			continue
		}
		d := c.Position.Dist(o.Position)
		if d < bestDist || (d == bestDist && m.rng.Intn(2) == 0) {
			best = o
			bestDist = d
		}
	}
	return best
}
