package locomotion

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/scout/world"
)

var ctxPool = sync.Pool{
	New: func() any {
		return &stepContext{}
	},
}

func newCtx(c *Controller, in Input, dt float32) *stepContext {
	ctx := ctxPool.Get().(*stepContext)
	ctx.c = c
	ctx.in = in
	ctx.dt = dt
	return ctx
}

func putCtx(ctx *stepContext) {
	ctx.reset()
	ctxPool.Put(ctx)
}

func (ctx *stepContext) reset() {
	ctx.c = nil
	ctx.in = Input{}
	ctx.dt = 0
	ctx.moveDir = mgl32.Vec3{}
	ctx.sprinting = false
	ctx.wasGrounded = false
	ctx.resumed = false
	ctx.landed = false
	ctx.ground = world.Hit{}
	ctx.hasGround = false
	ctx.planarVel = mgl32.Vec3{}
	ctx.snap = 0
}
