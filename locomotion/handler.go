package locomotion

// Handler receives the presentation cues of a Controller. Implementations must not
// call back into the Controller.
type Handler interface {
	// HandleLand is called when the actor touches the ground after being airborne,
	// at most once every LandingCooldown seconds. impactSpeed is the downward speed
	// at the moment of landing.
	HandleLand(impactSpeed float32)
	// HandleJump is called when a jump is performed.
	HandleJump()
	// HandleFootstep is called every time the footstep cadence elapses.
	HandleFootstep(sprinting, crouching bool)
}

// NopHandler implements Handler and does nothing.
type NopHandler struct{}

func (NopHandler) HandleLand(float32) {}
func (NopHandler) HandleJump() {}
func (NopHandler) HandleFootstep(bool, bool) {}
