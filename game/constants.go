package game

// Default movement tuning. Distances are in metres, speeds in metres per second
// and durations in seconds.
const (
	DefaultWalkSpeed         = float32(5)
	DefaultSprintSpeed       = float32(8)
	DefaultCrouchSpeedFactor = float32(0.5)
	DefaultJumpHeight        = float32(2)
	DefaultGravity           = float32(-9.81)
	DefaultAirControl        = float32(0.3)
	DefaultAirMomentumDecay  = float32(1.5)

	DefaultCoyoteTime      = 0.15
	DefaultLandingCooldown = 0.3

	DefaultGroundProbeOffset   = float32(0.1)
	DefaultGroundProbeDistance = float32(0.15)
	DefaultLookAheadDistance   = float32(0.4)
	DefaultMaxSlopeAngle       = float32(45)
	DefaultSnapDistance        = float32(0.3)

	DefaultStandHeight  = float32(2)
	DefaultCrouchHeight = float32(1)
	DefaultBodyWidth    = float32(0.6)
	DefaultEyeOffset    = float32(0.2)

	DefaultMaxStamina         = float32(100)
	DefaultStaminaDrain       = float32(20)
	DefaultStaminaRegen       = float32(15)
	DefaultExhaustionCooldown = 3.0

	DefaultLookSensitivity = float32(0.1)
	DefaultMaxPitch        = float32(85)

	DefaultNormalFOV    = float32(60)
	DefaultSprintFOV    = float32(70)
	DefaultFOVLerpSpeed = float32(8)

	DefaultFootstepInterval = float32(0.5)
	DefaultSprintStepScale  = float32(0.6)
	DefaultCrouchStepScale  = float32(1.5)
	DefaultFastMoveSpeed    = float32(6)
)

// Default gauntlet tuning.
const (
	DefaultMaxHeat          = float32(100)
	DefaultHeatPerScan      = float32(20)
	DefaultHeatDecayRate    = float32(1)
	DefaultOverheatDuration = 10.0
	// DefaultScanCooldown is the minimum time between two accepted scans. Some
	// builds of the gauntlet used five seconds; one second is the shipped value.
	DefaultScanCooldown = 1.0
	// HeatAfterOverheat is the heat level the gauntlet is left at once an
	// overheat expires. Heat stays at its maximum for the whole lockout.
	HeatAfterOverheat = float32(0)

	DefaultScanRange         = float32(20)
	DefaultScanConeAngle     = float32(90)
	DefaultSweepDuration     = 1.0
	DefaultSweepMinRadius    = float32(0.5)
	DefaultHighlightDuration = 5.0
)

// Default interaction and item tuning.
const (
	DefaultInteractionRange = float32(3)
	DefaultThrowForce       = float32(10)
	DefaultInventorySlots   = 4

	DefaultPebbleNoiseRadius    = float32(5)
	DefaultGlowstickNoiseRadius = float32(3)
	DefaultGlowstickDuration    = 30.0
	DefaultGlowstickIntensity   = float32(2)
	DefaultPlantGelRestore      = float32(50)
	DefaultPlantGelStamina      = float32(25)

	DefaultMaxHealth    = float32(100)
	DefaultMaxRadiation = float32(100)

	DefaultRadiationInterval = 1.0
	DefaultRadiationAmount   = float32(10)
)

// Default host timing.
const (
	DefaultFixedStep    = 1.0 / 60.0
	DefaultMaxFrameTime = 0.25
)
