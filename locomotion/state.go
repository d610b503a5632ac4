package locomotion

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/scout/world"
)

// GroundState is the classification of the actor against the ground below it.
type GroundState uint8

const (
	Airborne GroundState = iota
	Grounded
)

func (g GroundState) String() string {
	if g == Grounded {
		return "grounded"
	}
	return "airborne"
}

// State is the full locomotion state of one actor. It is only changed by
// Controller.Update.
type State struct {
	// Position is the position of the actor's feet.
	Position mgl32.Vec3
	// Yaw is the body rotation in degrees, Pitch is the look rotation in degrees.
	Yaw, Pitch float32

	VerticalVelocity       float32
	HorizontalIntent       mgl32.Vec2
	AirMomentum            mgl32.Vec3
	LastHorizontalVelocity mgl32.Vec3

	GroundState  GroundState
	GroundNormal mgl32.Vec3

	// GroundRejected is set while the actor is over RejectedGround, a surface it may
	// not stand on because of its slope or a ledge ahead.
	GroundRejected bool
	RejectedGround world.Handle

	Stamina           float32
	Exhausted         bool
	ExhaustionEndTime float64
	Sprinting         bool
	// SprintingWhenAirborne is the sprint state at the moment the actor left the ground.
	SprintingWhenAirborne bool

	CrouchIntent bool
	CrouchActual bool
	Height       float32

	LastGroundedTime float64
	LastLandTime     float64

	FOV             float32
	StepAccumulator float32

	// Now is the controller clock: the sum of every step's delta time.
	Now float64
}

// newState returns the state of an actor spawned at pos. The spawn counts as a
// landing, so touching the ground right away does not play a landing cue.
func newState(p Params, pos mgl32.Vec3) State {
	return State{
		Position:         pos,
		GroundState:      Airborne,
		GroundNormal:     mgl32.Vec3{0, 1, 0},
		Stamina:          p.MaxStamina,
		Height:           p.StandHeight,
		LastGroundedTime: math.Inf(-1),
		FOV:              p.NormalFOV,
	}
}

// box returns the collision box of the actor at its current position and height.
func (s *State) box(width float32) cube.BBox {
	hw := width / 2
	return cube.Box(
		s.Position.X()-hw, s.Position.Y(), s.Position.Z()-hw,
		s.Position.X()+hw, s.Position.Y()+s.Height, s.Position.Z()+hw,
	)
}

// Moving returns true if the actor has any movement intent.
func (s *State) Moving() bool {
	return s.HorizontalIntent.LenSqr() > 1e-6
}

func sqrt32(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	return math32.Sqrt(v)
}

func abs32(v float32) float32 {
	return math32.Abs(v)
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

func finite2(v mgl32.Vec2) bool {
	return finite(v.X()) && finite(v.Y())
}
