package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Handle identifies a body in a world. Handles are stable for the lifetime of the body
// and are the only way simulation code refers to other objects.
type Handle uint64

// NoHandle is never assigned to a body.
const NoHandle Handle = 0

// Layer is the collision/query category of a body.
type Layer uint8

const (
	LayerDefault     Layer = 0
	LayerPlayer      Layer = 3
	LayerItem        Layer = 7
	LayerEnvironment Layer = 8
)

// LayerMask is a set of layers a query is filtered by.
type LayerMask uint32

// AllLayers matches every layer.
const AllLayers LayerMask = ^LayerMask(0)

// MaskOf returns a mask containing the layers passed.
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= 1 << l
	}
	return m
}

// Has returns true if the mask contains the layer passed.
func (m LayerMask) Has(l Layer) bool {
	return m&(1<<l) != 0
}

// Without returns the mask with the given layers removed.
func (m LayerMask) Without(layers ...Layer) LayerMask {
	return m &^ MaskOf(layers...)
}

// Hit is a single result of a spatial query.
type Hit struct {
	Handle Handle
	Layer  Layer
	// Position is the contact point for ray casts and the centre of the body for
	// overlap queries.
	Position mgl32.Vec3
	// Normal is the surface normal at the contact point.
	Normal mgl32.Vec3
	// Distance is measured from the query origin to Position.
	Distance float32
}

// Body is a static or kinematic axis-aligned box registered in a World.
type Body struct {
	Handle Handle
	Layer  Layer
	Box    cube.BBox
	// Solid bodies block movement resolved through the world. Non-solid bodies are
	// only visible to queries.
	Solid bool
	// Tag is a free-form label, for example "player".
	Tag string
	// TopNormal overrides the normal reported for hits on the top face of the box,
	// letting a box stand in for a ramp or uneven ground. A zero vector means up.
	TopNormal mgl32.Vec3
}

// Centre returns the centre of the body's box.
func (b Body) Centre() mgl32.Vec3 {
	return b.Box.Min().Add(b.Box.Max()).Mul(0.5)
}
