package locomotion

import (
	"github.com/oomph-ac/scout/game"
	"github.com/oomph-ac/scout/world"
)

// Params is the flat tuning set of a Controller. Distances are in metres, speeds in
// metres per second, angles in degrees and durations in seconds.
type Params struct {
	WalkSpeed         float32
	SprintSpeed       float32
	CrouchSpeedFactor float32
	JumpHeight        float32
	// Gravity is the vertical acceleration applied every step. It is negative.
	Gravity          float32
	AirControl       float32
	AirMomentumDecay float32

	CoyoteTime      float64
	LandingCooldown float64

	GroundProbeOffset   float32
	GroundProbeDistance float32
	LookAheadDistance   float32
	MaxSlopeAngle       float32
	SnapDistance        float32
	// ProjectOnGround projects grounded movement onto the plane of the surface below.
	ProjectOnGround bool
	// GroundLayers are the layers the ground and headroom probes collide with.
	GroundLayers world.LayerMask

	StandHeight  float32
	CrouchHeight float32
	BodyWidth    float32
	// EyeOffset is the distance between the top of the body and the eyes.
	EyeOffset float32

	MaxStamina         float32
	StaminaDrain       float32
	StaminaRegen       float32
	ExhaustionCooldown float64

	LookSensitivity float32
	MaxPitch        float32

	NormalFOV    float32
	SprintFOV    float32
	FOVLerpSpeed float32

	FootstepInterval float32
	SprintStepScale  float32
	CrouchStepScale  float32
	FastMoveSpeed    float32
}

// DefaultParams returns the shipped tuning.
func DefaultParams() Params {
	return Params{
		WalkSpeed:         game.DefaultWalkSpeed,
		SprintSpeed:       game.DefaultSprintSpeed,
		CrouchSpeedFactor: game.DefaultCrouchSpeedFactor,
		JumpHeight:        game.DefaultJumpHeight,
		Gravity:           game.DefaultGravity,
		AirControl:        game.DefaultAirControl,
		AirMomentumDecay:  game.DefaultAirMomentumDecay,

		CoyoteTime:      game.DefaultCoyoteTime,
		LandingCooldown: game.DefaultLandingCooldown,

		GroundProbeOffset:   game.DefaultGroundProbeOffset,
		GroundProbeDistance: game.DefaultGroundProbeDistance,
		LookAheadDistance:   game.DefaultLookAheadDistance,
		MaxSlopeAngle:       game.DefaultMaxSlopeAngle,
		SnapDistance:        game.DefaultSnapDistance,
		ProjectOnGround:     true,
		GroundLayers:        world.AllLayers.Without(world.LayerPlayer, world.LayerItem),

		StandHeight:  game.DefaultStandHeight,
		CrouchHeight: game.DefaultCrouchHeight,
		BodyWidth:    game.DefaultBodyWidth,
		EyeOffset:    game.DefaultEyeOffset,

		MaxStamina:         game.DefaultMaxStamina,
		StaminaDrain:       game.DefaultStaminaDrain,
		StaminaRegen:       game.DefaultStaminaRegen,
		ExhaustionCooldown: game.DefaultExhaustionCooldown,

		LookSensitivity: game.DefaultLookSensitivity,
		MaxPitch:        game.DefaultMaxPitch,

		NormalFOV:    game.DefaultNormalFOV,
		SprintFOV:    game.DefaultSprintFOV,
		FOVLerpSpeed: game.DefaultFOVLerpSpeed,

		FootstepInterval: game.DefaultFootstepInterval,
		SprintStepScale:  game.DefaultSprintStepScale,
		CrouchStepScale:  game.DefaultCrouchStepScale,
		FastMoveSpeed:    game.DefaultFastMoveSpeed,
	}
}

// jumpVelocity returns the initial vertical velocity that reaches JumpHeight.
func (p Params) jumpVelocity() float32 {
	return sqrt32(2 * abs32(p.Gravity) * p.JumpHeight)
}
