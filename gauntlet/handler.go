package gauntlet

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/scout/entity"
	"github.com/oomph-ac/scout/world"
)

// Handler receives the presentation events of a Scanner. Events are fire-and-forget:
// the scanner never reads anything back from them.
type Handler interface {
	// HandleSweepStart is called when a scan is accepted and its sweep begins.
	HandleSweepStart(origin, forward mgl32.Vec3)
	// HandleOverheat is called when an accepted scan pushes the heat to its maximum.
	HandleOverheat()
	// HandleCooledDown is called when an overheat ends.
	HandleCooledDown()
	// HandleHighlightStart is called when a sweep discovers a target.
	HandleHighlightStart(h world.Handle, target entity.Scannable)
	// HandleHighlightEnd is called when the highlight of a target runs out.
	HandleHighlightEnd(h world.Handle)
}

// NopHandler implements Handler and does nothing.
type NopHandler struct{}

func (NopHandler) HandleSweepStart(mgl32.Vec3, mgl32.Vec3) {}
func (NopHandler) HandleOverheat() {}
func (NopHandler) HandleCooledDown() {}
func (NopHandler) HandleHighlightStart(world.Handle, entity.Scannable) {}
func (NopHandler) HandleHighlightEnd(world.Handle) {}
