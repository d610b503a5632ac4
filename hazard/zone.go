// Package hazard implements areas of the world that harm actors standing in them.
package hazard

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/google/uuid"
	"github.com/oomph-ac/scout/game"
)

// Zone is a radiation area. An actor overlapping the box is exposed at most once per
// Interval, gaining Amount radiation each time.
type Zone struct {
	Box      cube.BBox
	Interval float64
	Amount   float32

	now  float64
	next map[uuid.UUID]float64
}

// NewZone returns a zone covering box with the default exposure interval and amount.
func NewZone(box cube.BBox) *Zone {
	return &Zone{
		Box:      box,
		Interval: game.DefaultRadiationInterval,
		Amount:   game.DefaultRadiationAmount,
	}
}

// Tick advances the clock of the zone.
func (z *Zone) Tick(dt float64) {
	if dt > 0 {
		z.now += dt
	}
}

// Expose checks whether the actor with the id and bounding box passed is exposed this
// step. If it is, the radiation gained is returned along with true and the actor is not
// exposed again until Interval has passed.
func (z *Zone) Expose(id uuid.UUID, box cube.BBox) (float32, bool) {
	if !z.Box.IntersectsWith(box) {
		return 0, false
	}
	if next, ok := z.next[id]; ok && z.now < next {
		return 0, false
	}
	if z.next == nil {
		z.next = make(map[uuid.UUID]float64)
	}
	z.next[id] = z.now + z.Interval
	return z.Amount, true
}

// Forget drops the exposure timer of an actor, for example when it leaves the game.
func (z *Zone) Forget(id uuid.UUID) {
	delete(z.next, id)
}
