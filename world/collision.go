package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// touchEpsilon is the overlap below which two boxes are considered to only touch.
const touchEpsilon = 1e-7

// clipAxis clips the movement d of the moving box along axis against a stationary box.
// Only a box overlapping moving on both other axes can block it, and a box that already
// overlaps moving never does, so an actor stuck inside geometry can still move out.
func clipAxis(stationary, moving cube.BBox, axis int, d float32) float32 {
	if d == 0 || stationary.Min() == stationary.Max() {
		return d
	}
	for i := 0; i < 3; i++ {
		if i == axis {
			continue
		}
		if moving.Max()[i]-stationary.Min()[i] <= touchEpsilon || stationary.Max()[i]-moving.Min()[i] <= touchEpsilon {
			return d
		}
	}

	if d > 0 {
		if gap := stationary.Min()[axis] - moving.Max()[axis]; gap >= -touchEpsilon {
			return min(d, max(gap, 0))
		}
		return d
	}
	if gap := stationary.Max()[axis] - moving.Min()[axis]; gap <= touchEpsilon {
		return max(d, min(gap, 0))
	}
	return d
}

// sweep moves box by delta against the boxes passed, resolving the vertical axis first
// and then each horizontal axis.
func sweep(box cube.BBox, delta mgl32.Vec3, boxes []cube.BBox) mgl32.Vec3 {
	var resolved mgl32.Vec3
	for _, axis := range [3]int{1, 0, 2} {
		d := delta[axis]
		for i := len(boxes) - 1; i >= 0; i-- {
			d = clipAxis(boxes[i], box, axis, d)
		}
		resolved[axis] = d

		var step mgl32.Vec3
		step[axis] = d
		box = box.Translate(step)
	}
	return resolved
}
