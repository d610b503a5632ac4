package actor

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/scout/entity"
	"github.com/oomph-ac/scout/gauntlet"
	"github.com/oomph-ac/scout/interact"
	"github.com/oomph-ac/scout/locomotion"
	"github.com/oomph-ac/scout/world"
)

// Handler receives every presentation event of an actor: movement cues, gauntlet
// feedback, item interactions and hazard effects. Handler methods are called from the
// goroutine ticking the actor.
type Handler interface {
	locomotion.Handler
	gauntlet.Handler

	// HandlePickUp is called when the actor picks an item up.
	HandlePickUp(slot interact.Slot)
	// HandleDrop is called when the actor drops the held item at pos.
	HandleDrop(slot interact.Slot, pos mgl32.Vec3)
	// HandleThrow is called when the actor throws the held item and it lands at pos.
	HandleThrow(slot interact.Slot, pos mgl32.Vec3)
	// HandleConsume is called when the actor consumes the held item.
	HandleConsume(slot interact.Slot, restored float32)
	// HandleNoise is called for every noise the actor causes, audible within radius
	// of pos.
	HandleNoise(pos mgl32.Vec3, radius float32)
	// HandleRadiation is called when the actor gains radiation.
	HandleRadiation(amount, total float32)
	// HandleScreenShake is called when something should shake the actor's camera.
	HandleScreenShake()
}

// NopHandler implements Handler and does nothing.
type NopHandler struct{}

var _ Handler = NopHandler{}

func (NopHandler) HandleLand(float32) {}
func (NopHandler) HandleJump() {}
func (NopHandler) HandleFootstep(bool, bool) {}
func (NopHandler) HandleSweepStart(mgl32.Vec3, mgl32.Vec3) {}
func (NopHandler) HandleOverheat() {}
func (NopHandler) HandleCooledDown() {}
func (NopHandler) HandleHighlightStart(world.Handle, entity.Scannable) {}
func (NopHandler) HandleHighlightEnd(world.Handle) {}
func (NopHandler) HandlePickUp(interact.Slot) {}
func (NopHandler) HandleDrop(interact.Slot, mgl32.Vec3) {}
func (NopHandler) HandleThrow(interact.Slot, mgl32.Vec3) {}
func (NopHandler) HandleConsume(interact.Slot, float32) {}
func (NopHandler) HandleNoise(mgl32.Vec3, float32) {}
func (NopHandler) HandleRadiation(float32, float32) {}
func (NopHandler) HandleScreenShake() {}
