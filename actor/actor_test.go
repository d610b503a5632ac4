package actor

import (
	"io"
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/scout/entity"
	"github.com/oomph-ac/scout/input"
	"github.com/oomph-ac/scout/interact"
	"github.com/oomph-ac/scout/item"
	"github.com/oomph-ac/scout/world"
	"github.com/sirupsen/logrus"
)

const tick = 1.0 / 60.0

type recorder struct {
	NopHandler

	pickups, throws, shakes, highlights int
	restored, radiation                 float32
	noises                              []float32
}

func (r *recorder) HandlePickUp(interact.Slot) { r.pickups++ }
func (r *recorder) HandleThrow(interact.Slot, mgl32.Vec3) { r.throws++ }
func (r *recorder) HandleConsume(_ interact.Slot, restored float32) { r.restored += restored }
func (r *recorder) HandleNoise(_ mgl32.Vec3, radius float32) { r.noises = append(r.noises, radius) }
func (r *recorder) HandleRadiation(_, total float32) { r.radiation = total }
func (r *recorder) HandleScreenShake() { r.shakes++ }
func (r *recorder) HandleHighlightStart(world.Handle, entity.Scannable) { r.highlights++ }

type scene struct {
	world    *world.World
	registry *entity.Registry
}

func newScene() *scene {
	w := world.New(nil)
	w.Add(world.Body{Handle: 100, Layer: world.LayerEnvironment, Solid: true, Box: cube.Box(-50, -1, -50, 50, 0, 50)})
	return &scene{world: w, registry: entity.NewRegistry()}
}

func (sc *scene) place(h world.Handle, pos mgl32.Vec3, obj any) {
	sc.world.Add(world.Body{Handle: h, Layer: world.LayerItem, Box: cube.Box(-0.1, 0, -0.1, 0.1, 0.2, 0.1).Translate(pos)})
	sc.registry.Register(h, obj)
}

func (sc *scene) actor() (*Actor, *recorder) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	conf := DefaultConfig()
	conf.Log = log
	a := New(conf, sc.world, sc.registry, mgl32.Vec3{})
	r := &recorder{}
	a.SetHandler(r)
	return a, r
}

func idle(a *Actor, seconds float64) {
	for i := 0; i < int(seconds/tick+0.5); i++ {
		a.Tick(input.Snapshot{Slot: input.NoSlot}, tick)
	}
}

func TestTickMovesActorBody(t *testing.T) {
	sc := newScene()
	a, _ := sc.actor()
	if _, ok := sc.world.Body(a.Handle()); !ok {
		t.Fatalf("actor body should be in the world")
	}

	for i := 0; i < 60; i++ {
		a.Tick(input.Snapshot{Move: mgl32.Vec2{0, 1}, Slot: input.NoSlot}, tick)
	}
	if z := a.Position().Z(); z < 4 {
		t.Fatalf("expected the actor to walk forward, got z=%f", z)
	}
	body, _ := sc.world.Body(a.Handle())
	if box := a.BBox(); body.Box.Min() != box.Min() || body.Box.Max() != box.Max() {
		t.Fatalf("world body not updated: %v != %v", body.Box, box)
	}
}

func TestScanEdgeHighlightsTarget(t *testing.T) {
	sc := newScene()
	sc.place(1, mgl32.Vec3{0, 0, 3}, item.NewPebble())
	a, r := sc.actor()

	a.Tick(input.Snapshot{Scan: true, Slot: input.NoSlot}, tick)
	idle(a, 1.1)
	if r.highlights != 1 || !a.Gauntlet().Highlighted(1) {
		t.Fatalf("expected the pebble to be highlighted, got %d highlights", r.highlights)
	}
	if h := a.Gauntlet().Heat(); h <= 0 || h > 20 {
		t.Fatalf("unexpected heat %f after one scan", h)
	}
}

func TestPickUpAndConsume(t *testing.T) {
	sc := newScene()
	sc.place(1, mgl32.Vec3{0, 0, 1}, item.NewPlantGel())
	a, r := sc.actor()
	a.Damage(30)

	a.Tick(input.Snapshot{Interact: true, Slot: input.NoSlot}, tick)
	if r.pickups != 1 {
		t.Fatalf("expected a pickup")
	}
	a.Tick(input.Snapshot{Use: true, Slot: input.NoSlot}, tick)
	if a.Health() != 100 || r.restored != 30 {
		t.Fatalf("expected health to be restored to the maximum: health=%f restored=%f", a.Health(), r.restored)
	}
}

func TestConsumeRestoresStamina(t *testing.T) {
	sc := newScene()
	sc.place(1, mgl32.Vec3{0, 0, 1}, item.NewPlantGel())
	a, _ := sc.actor()

	a.Tick(input.Snapshot{Interact: true, Slot: input.NoSlot}, tick)
	for i := 0; i < 120; i++ {
		a.Tick(input.Snapshot{Move: mgl32.Vec2{0, 1}, Sprint: true, Slot: input.NoSlot}, tick)
	}
	drained := a.Locomotion().Stamina()
	if drained > 61 {
		t.Fatalf("expected sprinting to drain stamina, got %f", drained)
	}

	a.Tick(input.Snapshot{Use: true, Slot: input.NoSlot}, tick)
	if got := a.Locomotion().Stamina(); got < drained+25 {
		t.Fatalf("expected the gel to restore 25 stamina: %f -> %f", drained, got)
	}
}

func TestThrowMakesNoise(t *testing.T) {
	sc := newScene()
	pebble := item.NewPebble()
	sc.place(1, mgl32.Vec3{0, 0, 1}, pebble)
	a, r := sc.actor()

	a.Tick(input.Snapshot{Interact: true, Slot: input.NoSlot}, tick)
	a.Tick(input.Snapshot{Throw: true, Slot: input.NoSlot}, tick)
	if r.throws != 1 {
		t.Fatalf("expected a throw")
	}
	if len(r.noises) != 2 || r.noises[0] != DefaultConfig().Interact.ThrowNoise || r.noises[1] != pebble.NoiseRadius {
		t.Fatalf("expected throw and impact noise, got %v", r.noises)
	}
}

func TestRadiationClamped(t *testing.T) {
	sc := newScene()
	a, r := sc.actor()
	for i := 0; i < 15; i++ {
		a.IncreaseRadiation(10)
	}
	a.IncreaseRadiation(0)
	a.IncreaseRadiation(-5)
	if a.Radiation() != 100 || r.radiation != 100 {
		t.Fatalf("expected radiation to be clamped to 100, got %f", a.Radiation())
	}
	if r.shakes != 15 {
		t.Fatalf("expected a screen shake per exposure, got %d", r.shakes)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	sc := newScene()
	a, r := sc.actor()
	idle(a, 0.1)

	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if _, ok := sc.world.Body(a.Handle()); ok {
		t.Fatalf("closed actor body should leave the world")
	}

	pos := a.Position()
	a.Tick(input.Snapshot{Move: mgl32.Vec2{0, 1}, Slot: input.NoSlot}, tick)
	a.IncreaseRadiation(10)
	if a.Position() != pos || a.Radiation() != 0 || r.shakes != 0 {
		t.Fatalf("closed actor kept simulating")
	}
}

func TestFormatParams(t *testing.T) {
	params := NewParams()
	params.Set("a", 1)
	params.Set("b", "x")
	if s := FormatParams(params); s != "[a=1 b=x]" {
		t.Fatalf("unexpected format %q", s)
	}
	if s := FormatParams(nil); s != "[]" {
		t.Fatalf("unexpected format %q", s)
	}
}
