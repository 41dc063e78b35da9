package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// coordinateSeparator splits the axes of a textual coordinate
const coordinateSeparator = ","

// Coordinate is an immutable point in 3D space
type Coordinate struct {
	v mgl64.Vec3
}

// NewCoordinate creates a coordinate from raw axis values
func NewCoordinate(x, y, z int) Coordinate {
	return Coordinate{v: mgl64.Vec3{float64(x), float64(y), float64(z)}}
}

// NewCenteredCoordinate converts the center of a cube with the given side
// into its lower corner, shifting every axis by -side/2.
func NewCenteredCoordinate(x, y, z, side int) Coordinate {
	half := float64(side) / 2
	return Coordinate{v: mgl64.Vec3{float64(x) - half, float64(y) - half, float64(z) - half}}
}

func coordinateFromVec3(v mgl64.Vec3) Coordinate {
	return Coordinate{v: v}
}

// ParseCoordinate reads a center point formatted as "x,y,z" and returns the
// lower corner of a cube of the given side centered on it.
// Whitespace around each component is ignored, as are components past the third.
func ParseCoordinate(text string, side int) (Coordinate, error) {
	parts := strings.Split(text, coordinateSeparator)
	if len(parts) < 3 {
		return Coordinate{}, newFormatError(text, fmt.Sprintf("expected 3 components, got %d", len(parts)), nil)
	}

	var axes [3]int
	for i := range axes {
		component := strings.TrimSpace(parts[i])
		value, err := strconv.Atoi(component)
		if err != nil {
			return Coordinate{}, newFormatError(text, fmt.Sprintf("component %d (%q) is not an integer", i, component), err)
		}
		axes[i] = value
	}

	return NewCenteredCoordinate(axes[0], axes[1], axes[2], side), nil
}

// MaxWith returns the per-axis maximum of both coordinates
func (c Coordinate) MaxWith(other Coordinate) Coordinate {
	return Coordinate{v: mgl64.Vec3{
		math.Max(c.v.X(), other.v.X()),
		math.Max(c.v.Y(), other.v.Y()),
		math.Max(c.v.Z(), other.v.Z()),
	}}
}

// MinWith returns the per-axis minimum of both coordinates
func (c Coordinate) MinWith(other Coordinate) Coordinate {
	return Coordinate{v: mgl64.Vec3{
		math.Min(c.v.X(), other.v.X()),
		math.Min(c.v.Y(), other.v.Y()),
		math.Min(c.v.Z(), other.v.Z()),
	}}
}

// Translate returns the coordinate shifted by delta on all three axes
func (c Coordinate) Translate(delta float64) Coordinate {
	return Coordinate{v: c.v.Add(mgl64.Vec3{delta, delta, delta})}
}

func (c Coordinate) X() float64 {
	return c.v.X()
}

func (c Coordinate) Y() float64 {
	return c.v.Y()
}

func (c Coordinate) Z() float64 {
	return c.v.Z()
}

// Vec3 returns a copy of the underlying vector
func (c Coordinate) Vec3() mgl64.Vec3 {
	return c.v
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%g, %g, %g)", c.v.X(), c.v.Y(), c.v.Z())
}
