package locomotion

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/scout/game"
	"github.com/oomph-ac/scout/world"
)

// Controller runs the movement of one first-person actor. It classifies the actor as
// grounded or airborne from downward probes, integrates its velocity and moves it
// through a world.Resolver. A Controller is not safe for concurrent use.
type Controller struct {
	params   Params
	querier  world.Querier
	resolver world.Resolver
	handler  Handler

	// Debugf receives internal step trace logs for callers that need deep diagnostics.
	Debugf func(format string, args ...any)

	s State
}

// New returns a Controller for an actor with its feet at pos. Either of q and r may be
// nil, in which case the behaviour depending on them is skipped.
func New(params Params, q world.Querier, r world.Resolver, pos mgl32.Vec3) *Controller {
	return &Controller{
		params:   params,
		querier:  q,
		resolver: r,
		handler:  NopHandler{},
		s:        newState(params, pos),
	}
}

// Handle sets the handler receiving the controller's cues. A nil handler resets it
// to a NopHandler.
func (c *Controller) Handle(h Handler) {
	if h == nil {
		h = NopHandler{}
	}
	c.handler = h
}

// Update advances the controller by dt seconds. A negative or non-finite dt is
// treated as zero: probes still run, but nothing is integrated.
func (c *Controller) Update(in Input, dt float32) {
	ctx := newCtx(c, in, game.SanitiseDelta(dt))
	defer putCtx(ctx)

	c.s.Now += float64(ctx.dt)
	ctx.look()
	ctx.applyIntent()
	ctx.applyGravity()
	ctx.probeGround()
	ctx.transition()
	ctx.tryJump()
	ctx.travel()
	ctx.snapToGround()
	ctx.move()
	ctx.updateStamina()
	ctx.negotiateCrouch()
	ctx.updateCamera()
}

// State returns a copy of the current locomotion state.
func (c *Controller) State() State {
	return c.s
}

// Params returns the tuning the controller runs with.
func (c *Controller) Params() Params {
	return c.params
}

// Teleport moves the actor to pos and clears its velocity.
func (c *Controller) Teleport(pos mgl32.Vec3) {
	c.s.Position = pos
	c.s.VerticalVelocity = 0
	c.s.AirMomentum = mgl32.Vec3{}
	c.s.LastHorizontalVelocity = mgl32.Vec3{}
	c.s.GroundState = Airborne
	c.s.GroundRejected = false
	c.debugf("teleported to %v", pos)
}

// Position returns the position of the actor's feet.
func (c *Controller) Position() mgl32.Vec3 {
	return c.s.Position
}

// EyePosition returns the position the actor looks from.
func (c *Controller) EyePosition() mgl32.Vec3 {
	return c.s.Position.Add(mgl32.Vec3{0, c.s.Height - c.params.EyeOffset})
}

// LookDirection returns the unit vector the actor looks along.
func (c *Controller) LookDirection() mgl32.Vec3 {
	return game.DirectionVector(c.s.Yaw, c.s.Pitch)
}

// BBox returns the collision box of the actor.
func (c *Controller) BBox() cube.BBox {
	return c.s.box(c.params.BodyWidth)
}

// Velocity returns the velocity the actor moved at during the last step.
func (c *Controller) Velocity() mgl32.Vec3 {
	return c.s.LastHorizontalVelocity.Add(mgl32.Vec3{0, c.s.VerticalVelocity})
}

// Grounded ...
func (c *Controller) Grounded() bool {
	return c.s.GroundState == Grounded
}

// Crouching ...
func (c *Controller) Crouching() bool {
	return c.s.CrouchActual
}

// Sprinting ...
func (c *Controller) Sprinting() bool {
	return c.s.Sprinting
}

// FOV returns the current field of view in degrees.
func (c *Controller) FOV() float32 {
	return c.s.FOV
}

func (c *Controller) debugf(format string, args ...any) {
	if c.Debugf != nil {
		c.Debugf(format, args...)
	}
}

type stepContext struct {
	c  *Controller
	in Input
	dt float32

	// moveDir is the world-space movement intent. Its length is the intent magnitude.
	moveDir   mgl32.Vec3
	sprinting bool

	wasGrounded bool
	// resumed is set while the probe still finds a surface the actor was rejected from.
	resumed     bool
	landed      bool
	ground      world.Hit
	hasGround   bool

	planarVel mgl32.Vec3
	snap      float32
}

func (ctx *stepContext) look() {
	s, p := &ctx.c.s, ctx.c.params
	look := ctx.in.Look
	if !finite2(look) {
		return
	}
	s.Yaw = game.WrapYaw(s.Yaw + look.X()*p.LookSensitivity)
	s.Pitch = game.ClampFloat(s.Pitch+look.Y()*p.LookSensitivity, -p.MaxPitch, p.MaxPitch)
}

func (ctx *stepContext) applyIntent() {
	s := &ctx.c.s
	move := ctx.in.Move
	if !finite2(move) {
		move = mgl32.Vec2{}
	}
	s.HorizontalIntent = game.ClampMagnitude2(move, 1)

	forward, right := game.FlatAxes(s.Yaw)
	ctx.moveDir = forward.Mul(s.HorizontalIntent.Y()).Add(right.Mul(s.HorizontalIntent.X()))

	ctx.expireExhaustion()
	ctx.sprinting = ctx.in.Sprint && ctx.c.SprintEligible() && s.Moving()
}

func (ctx *stepContext) applyGravity() {
	ctx.c.s.VerticalVelocity += ctx.c.params.Gravity * ctx.dt
}

func (ctx *stepContext) debugf(format string, args ...any) {
	ctx.c.debugf(format, args...)
}
