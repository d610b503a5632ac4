package locomotion

import "github.com/go-gl/mathgl/mgl32"

// Input is the per-step input of a Controller.
type Input struct {
	// Move is the raw movement axis: X strafes right and Y moves forward. Its
	// magnitude is clamped to 1.
	Move mgl32.Vec2
	// Look is the look delta: X turns right and Y looks up.
	Look mgl32.Vec2

	// Jump is set on the step the jump button was pressed.
	Jump bool
	// Sprint is held for as long as the actor wants to sprint.
	Sprint bool
	// CrouchToggle is set on the step the crouch button was pressed.
	CrouchToggle bool
}
