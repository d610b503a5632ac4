// Package interact implements how an actor finds, picks up, drops, throws and uses items.
package interact

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/scout/entity"
	"github.com/oomph-ac/scout/game"
	"github.com/oomph-ac/scout/world"
)

// World is the part of a world an interaction handler needs: queries to find items and
// body management to take them out of and put them back into the world.
type World interface {
	world.Querier
	Body(h world.Handle) (world.Body, bool)
	Add(b world.Body)
	Remove(h world.Handle) bool
}

// Action is what an interaction call ended up doing.
type Action uint8

const (
	ActionNone Action = iota
	ActionPickUp
	ActionDrop
	ActionThrow
	ActionConsume
)

// String ...
func (a Action) String() string {
	switch a {
	case ActionPickUp:
		return "pick up"
	case ActionDrop:
		return "drop"
	case ActionThrow:
		return "throw"
	case ActionConsume:
		return "consume"
	}
	return "none"
}

// Result describes the outcome of an interaction call.
type Result struct {
	Action Action
	Slot   Slot
	// Position is where the item came to rest after a drop or throw.
	Position mgl32.Vec3
	// Noise is the radius of the noise the item made landing after a throw.
	Noise float32
	// Restored is the health restored by a consumed item.
	Restored float32
	// Stamina is the stamina restored by a consumed item.
	Stamina float32
}

var (
	down         = mgl32.Vec3{0, -1, 0}
	groundLayers = world.AllLayers.Without(world.LayerPlayer, world.LayerItem)
)

// maxSettleDistance is how far below its landing point a released item looks for ground.
const maxSettleDistance = 50

// Handler tracks the pickup target and the inventory of one actor.
type Handler struct {
	params   Params
	actor    uuid.UUID
	w        World
	registry *entity.Registry
	inv      *Inventory

	target world.Handle
}

// NewHandler returns a Handler for the actor with the id passed.
func NewHandler(params Params, actor uuid.UUID, w World, registry *entity.Registry) *Handler {
	return &Handler{
		params:   params,
		actor:    actor,
		w:        w,
		registry: registry,
		inv:      NewInventory(params.Slots),
	}
}

// Inventory ...
func (h *Handler) Inventory() *Inventory {
	return h.inv
}

// Update picks the current pickup target: the item hit by a ray along forward, or
// otherwise the closest item within range.
func (h *Handler) Update(eye, forward mgl32.Vec3) {
	h.target = world.NoHandle
	if h.w == nil {
		return
	}
	if hit, ok := h.w.Raycast(eye, forward, h.params.Range, h.params.Layers); ok {
		if _, ok := h.pickable(hit.Handle); ok {
			h.target = hit.Handle
			return
		}
	}
	for _, hit := range h.w.OverlapSphere(eye, h.params.Range, h.params.Layers) {
		if _, ok := h.pickable(hit.Handle); ok {
			h.target = hit.Handle
			return
		}
	}
}

// Target returns the current pickup target.
func (h *Handler) Target() (world.Handle, bool) {
	return h.target, h.target != world.NoHandle
}

// Interact drops the held item if there is one and picks up the target otherwise.
func (h *Handler) Interact(eye, forward mgl32.Vec3) Result {
	if _, ok := h.inv.Held(); ok {
		return h.Drop(eye, forward)
	}
	return h.PickUp()
}

// PickUp takes the current target out of the world and puts it in the selected slot.
func (h *Handler) PickUp() Result {
	if h.w == nil || h.target == world.NoHandle {
		return Result{}
	}
	if _, ok := h.inv.Held(); ok {
		return Result{}
	}
	item, ok := h.pickable(h.target)
	if !ok {
		return Result{}
	}
	body, ok := h.w.Body(h.target)
	// Another actor may have taken the item first.
	if !ok || !h.w.Remove(h.target) {
		return Result{}
	}
	item.PickUp(h.actor)

	slot := Slot{Handle: h.target, Item: item, Body: body}
	h.inv.put(slot)
	h.target = world.NoHandle
	return Result{Action: ActionPickUp, Slot: slot, Position: body.Centre()}
}

// Drop puts the held item down in front of the actor.
func (h *Handler) Drop(eye, forward mgl32.Vec3) Result {
	slot, ok := h.inv.take()
	if !ok {
		return Result{}
	}
	slot.Item.Release()

	at := eye
	if dir, ok := game.Normalize(game.Horizontal(forward)); ok {
		at = h.reach(eye, dir, h.params.DropDistance)
	}
	return Result{Action: ActionDrop, Slot: slot, Position: h.place(slot, at)}
}

// Throw throws the held item along forward. Items that break on impact are removed
// from the game.
func (h *Handler) Throw(eye, forward mgl32.Vec3) Result {
	dir, ok := game.Normalize(forward)
	if !ok {
		return Result{}
	}
	slot, ok := h.inv.take()
	if !ok {
		return Result{}
	}
	slot.Item.Release()

	res := Result{Action: ActionThrow, Slot: slot}
	if t, ok := slot.Item.(entity.Throwable); ok {
		res.Noise = t.OnThrown()
	}
	at := h.reach(eye, dir, h.params.ThrowDistance)
	if b, ok := slot.Item.(interface{ Broken() bool }); ok && b.Broken() {
		res.Position = at
		if h.registry != nil {
			h.registry.Unregister(slot.Handle)
		}
		return res
	}
	res.Position = h.place(slot, at)
	return res
}

// Use consumes the held item if it is consumable.
func (h *Handler) Use() Result {
	slot, ok := h.inv.Held()
	if !ok {
		return Result{}
	}
	c, ok := slot.Item.(entity.Consumable)
	if !ok {
		return Result{}
	}
	h.inv.take()
	res := Result{Action: ActionConsume, Slot: slot, Restored: c.Consume()}
	if e, ok := c.(entity.Energizer); ok {
		res.Stamina = e.StaminaRestore()
	}
	if h.registry != nil {
		h.registry.Unregister(slot.Handle)
	}
	return res
}

func (h *Handler) pickable(hd world.Handle) (entity.Pickupable, bool) {
	if h.registry == nil {
		return nil, false
	}
	p, ok := h.registry.Pickupable(hd)
	if !ok || !p.CanBePickedUp() {
		return nil, false
	}
	return p, true
}

// reach returns the point dist along dir from origin, stopping short of any obstacle.
func (h *Handler) reach(origin, dir mgl32.Vec3, dist float32) mgl32.Vec3 {
	if h.w == nil {
		return origin.Add(dir.Mul(dist))
	}
	if hit, ok := h.w.Raycast(origin, dir, dist, groundLayers); ok {
		dist = max(0, hit.Distance-0.3)
	}
	return origin.Add(dir.Mul(dist))
}

// place puts the body of the slot back into the world, resting on the ground below at.
// It returns the bottom centre of the placed body.
func (h *Handler) place(slot Slot, at mgl32.Vec3) mgl32.Vec3 {
	if h.w == nil {
		return at
	}
	rest := at
	if hit, ok := h.w.Raycast(at, down, maxSettleDistance, groundLayers); ok {
		rest = hit.Position
	}

	size := slot.Body.Box.Max().Sub(slot.Body.Box.Min())
	body := slot.Body
	body.Box = cube.Box(
		rest.X()-size.X()/2, rest.Y(), rest.Z()-size.Z()/2,
		rest.X()+size.X()/2, rest.Y()+size.Y(), rest.Z()+size.Z()/2,
	)
	h.w.Add(body)
	return rest
}
