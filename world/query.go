package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Querier runs spatial queries against world geometry.
type Querier interface {
	// Raycast returns the closest hit along dir within maxDist on the layers in mask.
	// dir does not need to be normalised. Bodies containing origin are ignored.
	Raycast(origin, dir mgl32.Vec3, maxDist float32, mask LayerMask) (Hit, bool)
	// OverlapSphere returns every body on the layers in mask that overlaps the sphere,
	// closest first.
	OverlapSphere(centre mgl32.Vec3, radius float32, mask LayerMask) []Hit
}

// Resolver moves a box through solid world geometry.
type Resolver interface {
	// Move returns the part of delta the box can travel before colliding.
	Move(box cube.BBox, delta mgl32.Vec3) mgl32.Vec3
}

// Space is the full collaborator surface a world offers to simulation code.
type Space interface {
	Querier
	Resolver
}
