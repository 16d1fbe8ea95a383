package engine

// Simulation tuning. Values are plain numbers on purpose: the engine
// implements mechanics exactly as configured and takes no position on
// game balance.
const (
	// MaxFrameDelta clamps caller-supplied dt so a stalled host cannot
	// tunnel projectiles through collision checks.
	maxFrameDelta = 0.25

	countdownSeconds = 3.0

	// Hard cap on concurrently active projectiles; spawns beyond it are
	// dropped with a warning event.
	maxActiveProjectiles = 256

	defaultFireRate         = 1.2
	defaultMoveSpeed        = 90.0
	defaultCombatantRadius  = 24.0
	defaultProjectileRadius = 8.0
	defaultMaxLifespan      = 6.0
	defaultRoundDuration    = 60.0

	// MaxShield is derived from max health at initialization.
	shieldHealthRatio = 0.5

	critDamageMultiplier   = 2.0
	burnDamageMultiplier   = 1.0
	poisonDamageMultiplier = 0.8
	healTickInterval       = 1.0

	// Trajectory perturbation parameters.
	waveAmplitude   = 140.0
	waveFrequency   = 6.0
	spiralAmplitude = 120.0
	spiralRate      = 8.0
	arcLaunchBoost  = 0.45
	homingSpeedCap  = 1.6

	strafeFrequency = 1.7

	// Stagger offsets for scheduled extra shots.
	chainShotDelay  = 0.15
	burstStagger    = 0.1
	multiplyStagger = 0.2
)
