package art

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderColumnSolidLeavesNeighborsUntouched(t *testing.T) {
	img := NewImage(5, 8)
	c := Color{R: 1, G: 2, B: 3}

	require.NoError(t, img.RenderColumn(2, ColumnData{Solid: c}))

	for y := 0; y < 8; y++ {
		assert.Equal(t, c, img.At(2, y))
	}
	for _, x := range []int{0, 1, 3, 4} {
		for y := 0; y < 8; y++ {
			assert.Equal(t, Color{}, img.At(x, y), "column %d must stay default", x)
		}
	}
}

func TestRenderColumnStrip(t *testing.T) {
	img := NewImage(3, 4)
	strip := []Color{
		{R: 10}, {G: 20}, {B: 30}, {R: 40, G: 40, B: 40},
	}

	require.NoError(t, img.RenderColumn(1, ColumnData{Strip: strip}))

	for y, want := range strip {
		assert.Equal(t, want, img.At(1, y))
	}
}

func TestRenderColumnStripLengthMismatch(t *testing.T) {
	img := NewImage(3, 4)

	err := img.RenderColumn(0, ColumnData{Strip: make([]Color, 3)})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	err = img.RenderColumn(0, ColumnData{Strip: make([]Color, 5)})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestRenderColumnOutOfRangePanics(t *testing.T) {
	img := NewImage(3, 4)

	assert.Panics(t, func() { _ = img.RenderColumn(-1, ColumnData{}) })
	assert.Panics(t, func() { _ = img.RenderColumn(3, ColumnData{}) })
}

func TestRGBARoundTrip(t *testing.T) {
	img := NewImage(2, 2)
	require.NoError(t, img.RenderColumn(0, ColumnData{Solid: Color{R: 250, G: 5, B: 100}}))

	rgba := img.RGBA()
	require.Equal(t, 2, rgba.Bounds().Dx())
	require.Equal(t, 2, rgba.Bounds().Dy())

	px := rgba.RGBAAt(0, 1)
	assert.Equal(t, uint8(250), px.R)
	assert.Equal(t, uint8(5), px.G)
	assert.Equal(t, uint8(100), px.B)
	assert.Equal(t, uint8(0xff), px.A)

	// Unwritten column encodes as opaque black.
	px = rgba.RGBAAt(1, 0)
	assert.Equal(t, uint8(0), px.R)
	assert.Equal(t, uint8(0xff), px.A)
}
