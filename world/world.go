package world

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

var currentWorldId atomic.Uint64

// World is an in-memory collection of axis-aligned bodies. It answers ray casts and
// sphere overlaps and resolves box movement against its solid bodies. It is safe for
// concurrent use.
type World struct {
	id     uint64
	bodies map[Handle]Body
	log    *logrus.Logger

	deadlock.RWMutex
}

// New returns an empty World. log may be nil.
func New(log *logrus.Logger) *World {
	return &World{
		id:     currentWorldId.Inc(),
		bodies: make(map[Handle]Body),
		log:    log,
	}
}

// ID returns the unique id of the world within this process.
func (w *World) ID() uint64 {
	return w.id
}

// Add adds a body to the world, replacing any body with the same handle.
func (w *World) Add(b Body) {
	if b.Handle == NoHandle {
		return
	}
	w.Lock()
	w.bodies[b.Handle] = b
	w.Unlock()

	if w.log != nil {
		w.log.Debugf("world %d: added body %d (layer=%d solid=%t tag=%q)", w.id, b.Handle, b.Layer, b.Solid, b.Tag)
	}
}

// Remove removes the body with the handle passed. It returns false if no such body exists.
func (w *World) Remove(h Handle) bool {
	w.Lock()
	_, ok := w.bodies[h]
	delete(w.bodies, h)
	w.Unlock()

	if ok && w.log != nil {
		w.log.Debugf("world %d: removed body %d", w.id, h)
	}
	return ok
}

// Body returns the body with the handle passed.
func (w *World) Body(h Handle) (Body, bool) {
	w.RLock()
	defer w.RUnlock()
	b, ok := w.bodies[h]
	return b, ok
}

// SetBox moves an existing body to a new box.
func (w *World) SetBox(h Handle, box cube.BBox) {
	w.Lock()
	defer w.Unlock()
	if b, ok := w.bodies[h]; ok {
		b.Box = box
		w.bodies[h] = b
	}
}

// Len returns the amount of bodies in the world.
func (w *World) Len() int {
	w.RLock()
	defer w.RUnlock()
	return len(w.bodies)
}

// Raycast ...
func (w *World) Raycast(origin, dir mgl32.Vec3, maxDist float32, mask LayerMask) (Hit, bool) {
	if !(maxDist > 0) {
		return Hit{}, false
	}
	l := dir.Len()
	if l < 1e-6 || math32.IsNaN(l) {
		return Hit{}, false
	}
	end := origin.Add(dir.Mul(maxDist / l))

	w.RLock()
	defer w.RUnlock()

	var (
		closest Hit
		found   bool
	)
	for _, b := range w.bodies {
		if !mask.Has(b.Layer) || contains(b.Box, origin) {
			continue
		}
		res, ok := trace.BBoxIntercept(b.Box, origin, end)
		if !ok {
			continue
		}
		dist := res.Position().Sub(origin).Len()
		if found && dist >= closest.Distance {
			continue
		}
		closest = Hit{
			Handle:   b.Handle,
			Layer:    b.Layer,
			Position: res.Position(),
			Normal:   faceNormal(b, res.Face()),
			Distance: dist,
		}
		found = true
	}
	return closest, found
}

// OverlapSphere ...
func (w *World) OverlapSphere(centre mgl32.Vec3, radius float32, mask LayerMask) []Hit {
	if !(radius > 0) {
		return nil
	}
	w.RLock()
	var hits []Hit
	for _, b := range w.bodies {
		if !mask.Has(b.Layer) {
			continue
		}
		closest := closestPoint(b.Box, centre)
		if closest.Sub(centre).LenSqr() > radius*radius {
			continue
		}
		pos := b.Centre()
		normal, ok := normalise(centre.Sub(closest))
		if !ok {
			normal = mgl32.Vec3{0, 1, 0}
		}
		hits = append(hits, Hit{
			Handle:   b.Handle,
			Layer:    b.Layer,
			Position: pos,
			Normal:   normal,
			Distance: pos.Sub(centre).Len(),
		})
	}
	w.RUnlock()

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Distance == hits[j].Distance {
			return hits[i].Handle < hits[j].Handle
		}
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// Move ...
func (w *World) Move(box cube.BBox, delta mgl32.Vec3) mgl32.Vec3 {
	if delta.LenSqr() == 0 {
		return delta
	}
	search := box.Extend(delta).Grow(0.01)

	w.RLock()
	var boxes []cube.BBox
	for _, b := range w.bodies {
		if b.Solid && b.Box.IntersectsWith(search) {
			boxes = append(boxes, b.Box)
		}
	}
	w.RUnlock()

	if len(boxes) == 0 {
		return delta
	}
	return sweep(box, delta, boxes)
}

func contains(bb cube.BBox, p mgl32.Vec3) bool {
	min, max := bb.Min(), bb.Max()
	return p.X() > min.X() && p.X() < max.X() &&
		p.Y() > min.Y() && p.Y() < max.Y() &&
		p.Z() > min.Z() && p.Z() < max.Z()
}

func closestPoint(bb cube.BBox, p mgl32.Vec3) mgl32.Vec3 {
	min, max := bb.Min(), bb.Max()
	return mgl32.Vec3{
		mgl32.Clamp(p.X(), min.X(), max.X()),
		mgl32.Clamp(p.Y(), min.Y(), max.Y()),
		mgl32.Clamp(p.Z(), min.Z(), max.Z()),
	}
}

func normalise(v mgl32.Vec3) (mgl32.Vec3, bool) {
	l := v.Len()
	if l < 1e-6 {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

func faceNormal(b Body, face cube.Face) mgl32.Vec3 {
	switch face {
	case cube.FaceUp:
		if n, ok := normalise(b.TopNormal); ok {
			return n
		}
		return mgl32.Vec3{0, 1, 0}
	case cube.FaceDown:
		return mgl32.Vec3{0, -1, 0}
	case cube.FaceNorth:
		return mgl32.Vec3{0, 0, -1}
	case cube.FaceSouth:
		return mgl32.Vec3{0, 0, 1}
	case cube.FaceWest:
		return mgl32.Vec3{-1, 0, 0}
	case cube.FaceEast:
		return mgl32.Vec3{1, 0, 0}
	}
	return mgl32.Vec3{0, 1, 0}
}
