package geometry_test

import (
	"errors"
	"testing"

	"github.com/akmonengine/cubeintersect/geometry"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinate(t *testing.T) {
	c := geometry.NewCoordinate(1, -2, 3)

	assert.Equal(t, 1.0, c.X())
	assert.Equal(t, -2.0, c.Y())
	assert.Equal(t, 3.0, c.Z())
	assert.Equal(t, mgl64.Vec3{1, -2, 3}, c.Vec3())
	assert.Equal(t, "(1, -2, 3)", c.String())
}

func TestNewCenteredCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		x, y, z  int
		side     int
		expected mgl64.Vec3
	}{
		{"odd side", 10, 10, 0, 5, mgl64.Vec3{7.5, 7.5, -2.5}},
		{"even side", 9, 9, 0, 2, mgl64.Vec3{8, 8, -1}},
		{"zero side", 4, 5, 6, 0, mgl64.Vec3{4, 5, 6}},
		{"negative center", -3, -3, -3, 4, mgl64.Vec3{-5, -5, -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := geometry.NewCenteredCoordinate(tt.x, tt.y, tt.z, tt.side)
			assert.Equal(t, tt.expected, c.Vec3())
		})
	}
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		side     int
		expected mgl64.Vec3
	}{
		{"plain", "10,10,0", 5, mgl64.Vec3{7.5, 7.5, -2.5}},
		{"spaces after commas", "9, 9, 0", 2, mgl64.Vec3{8, 8, -1}},
		{"surrounding whitespace", "  1 ,\t2 , 3  ", 0, mgl64.Vec3{1, 2, 3}},
		{"signed components", "-4,+4,0", 2, mgl64.Vec3{-5, 3, -1}},
		{"extra components ignored", "1,2,3,4", 0, mgl64.Vec3{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := geometry.ParseCoordinate(tt.text, tt.side)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.Vec3())
		})
	}
}

func TestParseCoordinate_FormatError(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		message string
	}{
		{"two components", "1,2", `invalid coordinate format: "1,2": expected 3 components, got 2`},
		{"empty", "", `invalid coordinate format: "": expected 3 components, got 1`},
		{"letter", "1,a,3", ""},
		{"empty component", "1,,3", ""},
		{"decimal", "1.5,2,3", ""},
		{"other separator", "1;2;3", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := geometry.ParseCoordinate(tt.text, 2)
			require.Error(t, err)
			require.ErrorIs(t, err, geometry.ErrInvalidFormat)

			var formatErr *geometry.FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, tt.text, formatErr.Input)
			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}
}

func TestParseCoordinate_FormatErrorCause(t *testing.T) {
	_, err := geometry.ParseCoordinate("1,a,3", 0)

	var formatErr *geometry.FormatError
	require.ErrorAs(t, err, &formatErr)
	require.Error(t, formatErr.Cause)
	assert.Equal(t, `component 1 ("a") is not an integer`, formatErr.Reason)
	assert.Contains(t, err.Error(), "(cause: ")
	assert.False(t, errors.Is(err, geometry.ErrNegativeSide))
}

func TestCoordinateMaxMin(t *testing.T) {
	a := geometry.NewCoordinate(1, 5, -3)
	b := geometry.NewCoordinate(4, 2, -3)

	assert.Equal(t, mgl64.Vec3{4, 5, -3}, a.MaxWith(b).Vec3())
	assert.Equal(t, mgl64.Vec3{1, 2, -3}, a.MinWith(b).Vec3())

	// inputs are left untouched
	assert.Equal(t, mgl64.Vec3{1, 5, -3}, a.Vec3())
	assert.Equal(t, mgl64.Vec3{4, 2, -3}, b.Vec3())
}

func TestCoordinateMaxMin_Commutative(t *testing.T) {
	values := []int{-7, -1, 0, 3, 12}
	for _, x := range values {
		for _, y := range values {
			a := geometry.NewCenteredCoordinate(x, y, x-y, 3)
			b := geometry.NewCoordinate(y, x-y, x)

			assert.Equal(t, a.MaxWith(b), b.MaxWith(a), "max of %s and %s", a, b)
			assert.Equal(t, a.MinWith(b), b.MinWith(a), "min of %s and %s", a, b)
		}
	}
}

func TestCoordinateTranslate(t *testing.T) {
	c := geometry.NewCoordinate(1, 2, 3).Translate(2.5)
	assert.Equal(t, mgl64.Vec3{3.5, 4.5, 5.5}, c.Vec3())
}
