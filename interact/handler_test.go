package interact

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/scout/entity"
	"github.com/oomph-ac/scout/item"
	"github.com/oomph-ac/scout/world"
)

var (
	eye     = mgl32.Vec3{0, 1.6, 0}
	forward = mgl32.Vec3{0, 0, 1}
)

type scene struct {
	world    *world.World
	registry *entity.Registry
}

func newScene() *scene {
	w := world.New(nil)
	w.Add(world.Body{Handle: 100, Layer: world.LayerEnvironment, Solid: true, Box: cube.Box(-50, -1, -50, 50, 0, 50)})
	return &scene{world: w, registry: entity.NewRegistry()}
}

// place adds a small item box resting on the floor at pos.
func (sc *scene) place(h world.Handle, pos mgl32.Vec3, obj any) {
	sc.world.Add(world.Body{Handle: h, Layer: world.LayerItem, Box: cube.Box(-0.1, 0, -0.1, 0.1, 0.2, 0.1).Translate(pos)})
	sc.registry.Register(h, obj)
}

func onFloor(b world.Body) bool {
	y := b.Box.Min().Y()
	return y > -1e-3 && y < 1e-3
}

func (sc *scene) handler() *Handler {
	return NewHandler(DefaultParams(), uuid.New(), sc.world, sc.registry)
}

func TestRayTargetPreferredOverCloserItem(t *testing.T) {
	sc := newScene()
	sc.place(1, mgl32.Vec3{0, 1.5, 2.5}, item.NewPebble())
	sc.place(2, mgl32.Vec3{1, 0, 0.5}, item.NewPebble())
	h := sc.handler()

	h.Update(eye, forward)
	if target, ok := h.Target(); !ok || target != 1 {
		t.Fatalf("expected the item under the crosshair to be targeted, got %d", target)
	}

	h.Update(eye, mgl32.Vec3{0, 1, 0})
	if target, ok := h.Target(); !ok || target != 2 {
		t.Fatalf("expected the closest item to be targeted when the ray misses, got %d", target)
	}
}

func TestNoTargetOutOfRange(t *testing.T) {
	sc := newScene()
	sc.place(1, mgl32.Vec3{0, 0, 10}, item.NewPebble())
	sc.place(2, mgl32.Vec3{0, 0, 1}, "not an item")
	h := sc.handler()

	h.Update(eye, forward)
	if _, ok := h.Target(); ok {
		t.Fatalf("expected no target")
	}
	if res := h.Interact(eye, forward); res.Action != ActionNone {
		t.Fatalf("interact without a target did %d", res.Action)
	}
}

func TestPickUpAndDrop(t *testing.T) {
	sc := newScene()
	gel := item.NewPlantGel()
	sc.place(1, mgl32.Vec3{0, 0, 1}, gel)
	h := sc.handler()

	h.Update(eye, forward)
	res := h.Interact(eye, forward)
	if res.Action != ActionPickUp || res.Slot.Handle != 1 {
		t.Fatalf("expected pickup, got %+v", res)
	}
	if _, ok := sc.world.Body(1); ok {
		t.Fatalf("picked up item should leave the world")
	}
	if gel.CanBePickedUp() {
		t.Fatalf("held item must not be pickable")
	}
	if held, ok := h.Inventory().Held(); !ok || held.Item != gel {
		t.Fatalf("expected the item to be held")
	}

	res = h.Interact(eye, forward)
	if res.Action != ActionDrop {
		t.Fatalf("expected the second interaction to drop, got %d", res.Action)
	}
	body, ok := sc.world.Body(1)
	if !ok {
		t.Fatalf("dropped item should be back in the world")
	}
	if !onFloor(body) || res.Position.Z() < 1.4 || res.Position.Z() > 1.6 {
		t.Fatalf("unexpected drop position %v", res.Position)
	}
	if !gel.CanBePickedUp() {
		t.Fatalf("dropped item should be pickable again")
	}
}

func TestPickUpRace(t *testing.T) {
	sc := newScene()
	sc.place(1, mgl32.Vec3{0, 0, 1}, item.NewPebble())
	a, b := sc.handler(), sc.handler()

	a.Update(eye, forward)
	b.Update(eye, forward)
	if a.PickUp().Action != ActionPickUp {
		t.Fatalf("first actor should get the item")
	}
	if b.PickUp().Action != ActionNone {
		t.Fatalf("second actor should not get the item")
	}
	if _, ok := b.Inventory().Held(); ok {
		t.Fatalf("second actor holds an item it never got")
	}
}

func TestThrowPebbleBreaks(t *testing.T) {
	sc := newScene()
	pebble := item.NewPebble()
	sc.place(1, mgl32.Vec3{0, 0, 1}, pebble)
	h := sc.handler()
	h.Update(eye, forward)
	h.PickUp()

	res := h.Throw(eye, forward)
	if res.Action != ActionThrow || res.Noise != pebble.NoiseRadius {
		t.Fatalf("unexpected throw result %+v", res)
	}
	if !pebble.Broken() {
		t.Fatalf("pebble should break when thrown")
	}
	if _, ok := sc.world.Body(1); ok {
		t.Fatalf("broken pebble must not return to the world")
	}
	if _, ok := sc.registry.Object(1); ok {
		t.Fatalf("broken pebble should be unregistered")
	}
}

func TestThrowGlowstickLands(t *testing.T) {
	sc := newScene()
	stick := item.NewGlowstick()
	sc.place(1, mgl32.Vec3{0, 0, 1}, stick)
	sc.world.Add(world.Body{Handle: 101, Layer: world.LayerEnvironment, Solid: true, Box: cube.Box(-5, 0, 6, 5, 4, 7)})
	h := sc.handler()
	h.Update(eye, forward)
	h.PickUp()

	res := h.Throw(eye, forward)
	if res.Action != ActionThrow || !stick.Lit() {
		t.Fatalf("glowstick should light up when thrown")
	}
	body, ok := sc.world.Body(1)
	if !ok {
		t.Fatalf("thrown glowstick should be back in the world")
	}
	if !onFloor(body) || res.Position.Z() >= 6 || res.Position.Z() < 5 {
		t.Fatalf("glowstick should land on the floor in front of the wall, got %v", res.Position)
	}
}

func TestThrowWithoutItemOrDirection(t *testing.T) {
	sc := newScene()
	sc.place(1, mgl32.Vec3{0, 0, 1}, item.NewPebble())
	h := sc.handler()
	if res := h.Throw(eye, forward); res.Action != ActionNone {
		t.Fatalf("throw with empty hands did something")
	}
	h.Update(eye, forward)
	h.PickUp()
	if res := h.Throw(eye, mgl32.Vec3{}); res.Action != ActionNone {
		t.Fatalf("throw without a direction did something")
	}
	if _, ok := h.Inventory().Held(); !ok {
		t.Fatalf("rejected throw lost the item")
	}
}

func TestUseConsumable(t *testing.T) {
	sc := newScene()
	gel := item.NewPlantGel()
	sc.place(1, mgl32.Vec3{0, 0, 1}, gel)
	sc.place(2, mgl32.Vec3{0, 0, 1.5}, item.NewPebble())
	h := sc.handler()

	h.Update(eye, forward)
	h.PickUp()
	res := h.Use()
	if res.Action != ActionConsume || res.Restored != gel.HealthRestore || res.Stamina != gel.Stamina {
		t.Fatalf("unexpected use result %+v", res)
	}
	if _, ok := h.Inventory().Held(); ok {
		t.Fatalf("consumed item should leave the inventory")
	}
	if _, ok := sc.registry.Object(1); ok {
		t.Fatalf("consumed item should be unregistered")
	}

	h.Update(eye, forward)
	h.PickUp()
	if res := h.Use(); res.Action != ActionNone {
		t.Fatalf("pebbles cannot be consumed")
	}
}

func TestSlotSelection(t *testing.T) {
	sc := newScene()
	sc.place(1, mgl32.Vec3{0, 0, 1}, item.NewPebble())
	sc.place(2, mgl32.Vec3{0, 0, 1.5}, item.NewGlowstick())
	h := sc.handler()
	inv := h.Inventory()

	h.Update(eye, forward)
	h.PickUp()
	if !inv.Select(1) || inv.Select(inv.Size()) || inv.Select(-1) || inv.Selected() != 1 {
		t.Fatalf("unexpected selection behaviour")
	}
	if _, ok := inv.Held(); ok {
		t.Fatalf("the new slot should be empty")
	}
	h.Update(eye, forward)
	h.PickUp()
	if len(inv.Items()) != 2 {
		t.Fatalf("expected two items, got %d", len(inv.Items()))
	}
}
