package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ExtentPolicy selects how a negative per-axis extent is treated when
// multiplying extents into a volume.
type ExtentPolicy int

const (
	// ExtentClamped clamps every extent to max(0, extent), so disjoint cubes yield 0.
	ExtentClamped ExtentPolicy = iota
	// ExtentRaw multiplies the extents as computed. Cubes separated on an even
	// number of axes produce a positive volume with this policy.
	ExtentRaw
)

func (p ExtentPolicy) String() string {
	switch p {
	case ExtentClamped:
		return "clamped"
	case ExtentRaw:
		return "raw"
	default:
		return fmt.Sprintf("ExtentPolicy(%d)", int(p))
	}
}

// Cube is an axis-aligned cube described by its lower corner and side length
type Cube struct {
	corner Coordinate
	side   int
}

// NewCube creates a cube from its lower corner. A side of 0 gives a degenerate cube.
func NewCube(corner Coordinate, side int) (Cube, error) {
	if side < 0 {
		return Cube{}, fmt.Errorf("%w: got %d", ErrNegativeSide, side)
	}

	return Cube{corner: corner, side: side}, nil
}

func (c Cube) Corner() Coordinate {
	return c.corner
}

func (c Cube) Side() int {
	return c.side
}

// HigherCorner returns the lower corner shifted by side on every axis
func (c Cube) HigherCorner() Coordinate {
	return c.corner.Translate(float64(c.side))
}

func (c Cube) Bounds() AABB {
	return AABB{Min: c.corner.Vec3(), Max: c.HigherCorner().Vec3()}
}

// Volume returns side^3
func (c Cube) Volume() float64 {
	s := float64(c.side)
	return s * s * s
}

// Extents returns, per axis, the length of the span shared by both cubes.
// An axis on which the cubes are disjoint has a negative extent.
func (c Cube) Extents(other Cube) mgl64.Vec3 {
	closeCorner := c.corner.MaxWith(other.corner)
	farCorner := c.HigherCorner().MinWith(other.HigherCorner())

	return farCorner.Vec3().Sub(closeCorner.Vec3())
}

// IntersectionVolume returns the volume shared by both cubes, 0 when they are
// disjoint or only touch.
func (c Cube) IntersectionVolume(other Cube) float64 {
	return c.Bounds().Intersection(other.Bounds()).Volume()
}

// RawIntersectionVolume multiplies the unclamped extents. The result is only
// meaningful when the cubes overlap on all three axes.
func (c Cube) RawIntersectionVolume(other Cube) float64 {
	e := c.Extents(other)
	return e.X() * e.Y() * e.Z()
}

// VolumeWith computes the intersection volume under the given policy
func (c Cube) VolumeWith(other Cube, policy ExtentPolicy) float64 {
	if policy == ExtentRaw {
		return c.RawIntersectionVolume(other)
	}
	return c.IntersectionVolume(other)
}

// Intersects reports whether the cubes share a region of positive volume
func (c Cube) Intersects(other Cube) bool {
	return c.IntersectionVolume(other) > 0
}
