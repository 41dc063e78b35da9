// Package cubeintersect computes the overlap volume of two axis-aligned cubes
// given as textual center coordinates and integer side lengths.
package cubeintersect

import (
	"fmt"
	"strconv"

	"github.com/akmonengine/cubeintersect/geometry"
)

type IntersectionService struct {
	Policy geometry.ExtentPolicy
}

type Option func(*IntersectionService)

// WithExtentPolicy sets how disjoint axes contribute to the volume
func WithExtentPolicy(policy geometry.ExtentPolicy) Option {
	return func(s *IntersectionService) {
		s.Policy = policy
	}
}

// NewIntersectionService creates a service using the clamped extent policy
// unless overridden.
func NewIntersectionService(opts ...Option) *IntersectionService {
	s := &IntersectionService{Policy: geometry.ExtentClamped}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CalculateIntersectionVolume parses both center coordinates, builds the two
// cubes and returns the volume they share.
// A *geometry.FormatError from parsing is returned as is.
func (s *IntersectionService) CalculateIntersectionVolume(coord1Text string, side1 int, coord2Text string, side2 int) (float64, error) {
	cube1, err := buildCube(coord1Text, side1)
	if err != nil {
		return 0, err
	}
	cube2, err := buildCube(coord2Text, side2)
	if err != nil {
		return 0, err
	}

	return cube1.VolumeWith(cube2, s.Policy), nil
}

func buildCube(text string, side int) (geometry.Cube, error) {
	corner, err := geometry.ParseCoordinate(text, side)
	if err != nil {
		return geometry.Cube{}, err
	}

	cube, err := geometry.NewCube(corner, side)
	if err != nil {
		return geometry.Cube{}, fmt.Errorf("cube at %q: %w", text, err)
	}
	return cube, nil
}

var defaultService = NewIntersectionService()

// CalculateIntersectionVolume uses a service with the clamped extent policy
func CalculateIntersectionVolume(coord1Text string, side1 int, coord2Text string, side2 int) (float64, error) {
	return defaultService.CalculateIntersectionVolume(coord1Text, side1, coord2Text, side2)
}

// Describe renders a volume as a human readable sentence
func Describe(volume float64) string {
	if volume != 0 {
		return fmt.Sprintf("The cubes intersect and the intersection volume is %s cubic units.",
			strconv.FormatFloat(volume, 'f', -1, 64))
	}
	return "Cubes don't intersect!!!"
}
