package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/scout/game"
)

func (ctx *stepContext) travel() {
	s, p := &ctx.c.s, ctx.c.params

	if s.GroundState == Grounded {
		speed := p.WalkSpeed
		if ctx.sprinting {
			speed = p.SprintSpeed
		}
		if s.CrouchActual {
			speed *= p.CrouchSpeedFactor
		}
		vel := ctx.moveDir.Mul(speed)
		if p.ProjectOnGround {
			vel = game.ProjectOnPlane(vel, s.GroundNormal)
		}
		ctx.planarVel = vel
		return
	}

	ctx.planarVel = s.AirMomentum.Add(ctx.moveDir.Mul(p.WalkSpeed * p.AirControl))
	s.AirMomentum = s.AirMomentum.Mul(1 - game.ExpFactor(p.AirMomentumDecay, ctx.dt))
}

// move applies the step's displacement through the resolver.
func (ctx *stepContext) move() {
	s, c := &ctx.c.s, ctx.c
	if ctx.dt == 0 {
		return
	}

	delta := ctx.planarVel.Add(mgl32.Vec3{0, s.VerticalVelocity}).Mul(ctx.dt)
	delta[1] -= ctx.snap

	resolved := delta
	if c.resolver != nil {
		resolved = c.resolver.Move(s.box(c.params.BodyWidth), delta)
	}
	if !finite(resolved.X()) || !finite(resolved.Y()) || !finite(resolved.Z()) {
		ctx.debugf("move: discarded non-finite displacement %v", resolved)
		return
	}
	s.Position = s.Position.Add(resolved)

	if delta.Y() > 0 && resolved.Y() < delta.Y()-1e-5 {
		ctx.debugf("move: hit ceiling, clipped %.4f to %.4f", delta.Y(), resolved.Y())
		s.VerticalVelocity = 0
	}
	s.LastHorizontalVelocity = game.Horizontal(resolved).Mul(1 / ctx.dt)
}
