package locomotion

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/scout/game"
	"github.com/oomph-ac/scout/world"
)

var down = mgl32.Vec3{0, -1, 0}

// castDown probes for ground below the feet position passed. The ray starts
// GroundProbeOffset above the feet and reaches extra below them.
func (ctx *stepContext) castDown(feet mgl32.Vec3, extra float32) (world.Hit, bool) {
	q, p := ctx.c.querier, ctx.c.params
	if q == nil {
		return world.Hit{}, false
	}
	origin := feet.Add(mgl32.Vec3{0, p.GroundProbeOffset})
	return q.Raycast(origin, down, p.GroundProbeOffset+extra, p.GroundLayers)
}

// gap returns the distance between the feet and the ground hit passed.
func (ctx *stepContext) gap(hit world.Hit) float32 {
	return hit.Distance - ctx.c.params.GroundProbeOffset
}

func (ctx *stepContext) probeGround() {
	s, p := &ctx.c.s, ctx.c.params
	ctx.wasGrounded = s.GroundState == Grounded

	hit, ok := ctx.castDown(s.Position, p.GroundProbeDistance)
	ctx.ground, ctx.hasGround = hit, ok
	// A rejection holds for as long as the probe keeps finding the rejected surface.
	if s.GroundRejected && (!ok || hit.Handle != s.RejectedGround) {
		s.GroundRejected = false
		ctx.debugf("probeGround: left rejected surface %d", s.RejectedGround)
	}
	ctx.resumed = s.GroundRejected
	grounded := ok && s.VerticalVelocity <= 0

	if grounded {
		if angle := game.AngleBetween(hit.Normal, game.Up); angle > p.MaxSlopeAngle {
			grounded = false
			ctx.debugf("probeGround: slope of %.1f degrees too steep", angle)
		}
	}
	// The look-ahead only guards a surface the actor is standing on, or was rejected from.
	if grounded && (ctx.wasGrounded || ctx.resumed) {
		if dir, moving := game.Normalize(ctx.moveDir); moving {
			ahead := s.Position.Add(dir.Mul(p.LookAheadDistance))
			if _, ok := ctx.castDown(ahead, p.GroundProbeDistance); !ok {
				grounded = false
				ctx.debugf("probeGround: no ground %.2fm ahead at %v", p.LookAheadDistance, ahead)
			}
		}
	}

	switch {
	case grounded:
		s.GroundState = Grounded
		s.GroundNormal = hit.Normal
		s.GroundRejected = false
	case ok && s.VerticalVelocity <= 0:
		s.GroundState = Airborne
		s.GroundNormal = game.Up
		s.GroundRejected, s.RejectedGround = true, hit.Handle
	default:
		s.GroundState = Airborne
		s.GroundNormal = game.Up
	}
}

func (ctx *stepContext) transition() {
	s, p := &ctx.c.s, ctx.c.params
	grounded := s.GroundState == Grounded

	switch {
	case ctx.wasGrounded && !grounded:
		s.AirMomentum = s.LastHorizontalVelocity
		s.SprintingWhenAirborne = s.Sprinting
		ctx.debugf("transition: airborne with momentum %v (sprinting=%t)", s.AirMomentum, s.SprintingWhenAirborne)
	case !ctx.wasGrounded && grounded && ctx.resumed:
		// Back on a surface that was only rejected, never left: not a landing.
		s.AirMomentum = mgl32.Vec3{}
		ctx.debugf("transition: standing again at %v", s.Position)
	case !ctx.wasGrounded && grounded:
		ctx.landed = true
		if s.Now-s.LastLandTime >= p.LandingCooldown {
			s.LastLandTime = s.Now
			ctx.c.handler.HandleLand(-s.VerticalVelocity)
		}
		s.AirMomentum = mgl32.Vec3{}
		ctx.debugf("transition: landed at %v", s.Position)
	}

	if grounded {
		s.LastGroundedTime = s.Now
		if s.VerticalVelocity < 0 {
			s.VerticalVelocity = 0
		}
	}
}

func (ctx *stepContext) tryJump() {
	if !ctx.in.Jump {
		return
	}
	s, p := &ctx.c.s, ctx.c.params
	if s.GroundState != Grounded && s.Now-s.LastGroundedTime > p.CoyoteTime {
		return
	}
	s.VerticalVelocity = p.jumpVelocity()
	s.LastGroundedTime = math.Inf(-1)
	ctx.c.handler.HandleJump()
	ctx.debugf("tryJump: jumped with velocity %.3f", s.VerticalVelocity)
}

// snapToGround keeps a moving grounded actor in contact with the ground below it,
// and settles a landing actor onto the surface it was classified against.
func (ctx *stepContext) snapToGround() {
	s, p := &ctx.c.s, ctx.c.params
	if s.GroundState != Grounded || s.VerticalVelocity > 0 {
		return
	}
	switch {
	case s.Moving():
		if hit, ok := ctx.castDown(s.Position, p.GroundProbeDistance+p.SnapDistance); ok {
			if gap := ctx.gap(hit); gap > 0 {
				ctx.snap = gap
			}
		}
	case ctx.landed && ctx.hasGround:
		if gap := ctx.gap(ctx.ground); gap > 0 {
			ctx.snap = gap
		}
	}
}
