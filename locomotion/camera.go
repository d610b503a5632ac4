package locomotion

import "github.com/oomph-ac/scout/game"

func (ctx *stepContext) updateCamera() {
	s, p := &ctx.c.s, ctx.c.params
	grounded := s.GroundState == Grounded

	target := p.NormalFOV
	if (grounded && s.Sprinting) || (!grounded && s.SprintingWhenAirborne) {
		target = p.SprintFOV
	}
	s.FOV += (target - s.FOV) * game.ExpFactor(p.FOVLerpSpeed, ctx.dt)

	if !s.Moving() {
		s.StepAccumulator = 0
		return
	}
	if !grounded {
		return
	}

	interval := p.FootstepInterval
	if s.Sprinting || game.Horizontal(s.LastHorizontalVelocity).Len() > p.FastMoveSpeed {
		interval *= p.SprintStepScale
	}
	if s.CrouchActual {
		interval *= p.CrouchStepScale
	}
	s.StepAccumulator += ctx.dt
	if interval > 0 && s.StepAccumulator >= interval {
		s.StepAccumulator -= interval
		ctx.c.handler.HandleFootstep(s.Sprinting, s.CrouchActual)
	}
}
