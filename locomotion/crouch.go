package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/scout/game"
)

// negotiateCrouch brings the actual crouch state in line with the intent. Standing up
// needs headroom; when there is none the intent is put back to crouching.
func (ctx *stepContext) negotiateCrouch() {
	s, p := &ctx.c.s, ctx.c.params
	if ctx.in.CrouchToggle {
		s.CrouchIntent = !s.CrouchIntent
	}

	switch {
	case s.CrouchIntent && !s.CrouchActual:
		s.CrouchActual = true
		s.Height = p.CrouchHeight
	case !s.CrouchIntent && s.CrouchActual:
		if ctx.headroomBlocked() {
			s.CrouchIntent = true
			ctx.debugf("crouch: no room to stand at %v", s.Position)
			return
		}
		s.CrouchActual = false
		s.Height = p.StandHeight
	}
}

func (ctx *stepContext) headroomBlocked() bool {
	s, p, q := &ctx.c.s, ctx.c.params, ctx.c.querier
	if q == nil {
		return false
	}
	head := s.Position.Add(mgl32.Vec3{0, p.CrouchHeight})
	_, hit := q.Raycast(head, game.Up, p.StandHeight-p.CrouchHeight, p.GroundLayers)
	return hit
}
