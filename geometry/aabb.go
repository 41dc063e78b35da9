package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap; touching faces count as overlapping
func (a AABB) Overlaps(other AABB) bool {
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// Intersection returns the box spanned by the per-axis max of the minima and
// min of the maxima. When the boxes are disjoint on an axis, Min exceeds Max
// on that axis.
func (a AABB) Intersection(other AABB) AABB {
	lower := coordinateFromVec3(a.Min).MaxWith(coordinateFromVec3(other.Min))
	upper := coordinateFromVec3(a.Max).MinWith(coordinateFromVec3(other.Max))

	return AABB{Min: lower.Vec3(), Max: upper.Vec3()}
}

// Size returns Max - Min per axis, possibly negative
func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// Volume returns the product of the sizes, each clamped at zero
func (a AABB) Volume() float64 {
	size := a.Size()
	return math.Max(0, size.X()) * math.Max(0, size.Y()) * math.Max(0, size.Z())
}

// SignedVolume returns the product of the raw sizes
func (a AABB) SignedVolume() float64 {
	size := a.Size()
	return size.X() * size.Y() * size.Z()
}
