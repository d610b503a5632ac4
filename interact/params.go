package interact

import (
	"github.com/oomph-ac/scout/game"
	"github.com/oomph-ac/scout/world"
)

// Params is the tuning of a Handler.
type Params struct {
	// Range is the reach of the pickup ray and the radius of the fallback sphere.
	Range float32
	// Layers are the layers pickup targets are searched on.
	Layers world.LayerMask
	// ThrowDistance is how far along the look direction a thrown item travels before
	// it drops to the ground.
	ThrowDistance float32
	// DropDistance is how far in front of the actor a dropped item lands.
	DropDistance float32
	// ThrowNoise is the radius of the noise the actor makes when throwing.
	ThrowNoise float32
	Slots      int
}

// DefaultParams returns the shipped tuning.
func DefaultParams() Params {
	return Params{
		Range:         game.DefaultInteractionRange,
		Layers:        world.AllLayers.Without(world.LayerPlayer),
		ThrowDistance: game.DefaultThrowForce,
		DropDistance:  1.5,
		ThrowNoise:    1.5,
		Slots:         game.DefaultInventorySlots,
	}
}
