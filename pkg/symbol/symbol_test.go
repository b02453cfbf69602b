package symbol

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryShapes(t *testing.T) {
	reg := Default()
	assert.Equal(t,
		[]string{"circle", "cross", "diamond", "square", "star", "triangle", "wye"},
		reg.Names())

	for _, name := range reg.Names() {
		t.Run(name, func(t *testing.T) {
			shape, err := reg.Lookup(name)
			require.NoError(t, err)
			d := shape.Path(64)
			assert.True(t, strings.HasPrefix(d, "M"), "path %q should start with a move", d)
			assert.True(t, strings.HasSuffix(d, "Z"), "path %q should be closed", d)
		})
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	_, err := Default().Lookup("Circle")
	require.NoError(t, err)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Default().Lookup("hexagon")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownShape))
	assert.Contains(t, err.Error(), "hexagon")
}

func TestSquareGeometry(t *testing.T) {
	assert.Equal(t, "M-4,-4L4,-4L4,4L-4,4Z", square(64))
}

func TestDiamondIsSymmetric(t *testing.T) {
	d := diamond(64)
	assert.True(t, strings.HasPrefix(d, "M0,-"))
	assert.Contains(t, d, "L0,")
}

func TestNonPositiveSizeUsesDefault(t *testing.T) {
	assert.Equal(t, square(DefaultSize), square(0))
	assert.Equal(t, circle(DefaultSize), circle(-3))
}

func TestCirclePath(t *testing.T) {
	// r = sqrt(pi/pi) = 1
	assert.Equal(t, "M1,0A1,1,0,1,1,-1,0A1,1,0,1,1,1,0Z", circle(3.141592653589793))
}

func TestRegisterCustomShape(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Dot", ShapeFunc(func(size float64) string { return "M0,0Z" }))

	shape, err := reg.Lookup("dot")
	require.NoError(t, err)
	assert.Equal(t, "M0,0Z", shape.Path(1))
}

func TestNumFormatting(t *testing.T) {
	assert.Equal(t, "0", num(-0.0001))
	assert.Equal(t, "1.235", num(1.23456))
	assert.Equal(t, "-3", num(-3))
}
