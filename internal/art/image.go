package art

import (
	"fmt"
	"image"
	"image/color"
)

// Image is the wall-art output buffer: a fixed width×height grid of Color,
// allocated once and filled column by column. Rows and columns left unwritten
// keep the zero (black) color.
type Image struct {
	width  int
	height int
	pix    []Color // row-major
}

// NewImage allocates a zeroed output image.
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

func (m *Image) Width() int  { return m.width }
func (m *Image) Height() int { return m.height }

// At returns the pixel at column x, row y.
func (m *Image) At(x, y int) Color {
	return m.pix[y*m.width+x]
}

// RenderColumn paints one column of the image from reduced frame data. A solid
// color fills every row; a strip assigns one color per row and must match the
// image height exactly. A column index outside [0, width) is a caller bug and
// panics.
func (m *Image) RenderColumn(column int, data ColumnData) error {
	if column < 0 || column >= m.width {
		panic(fmt.Sprintf("art: column %d out of range [0,%d)", column, m.width))
	}

	if data.IsStrip() {
		if len(data.Strip) != m.height {
			return fmt.Errorf("%w: got %d, image height %d", ErrLengthMismatch, len(data.Strip), m.height)
		}
		for y := 0; y < m.height; y++ {
			m.pix[y*m.width+column] = data.Strip[y]
		}
		return nil
	}

	for y := 0; y < m.height; y++ {
		m.pix[y*m.width+column] = data.Solid
	}
	return nil
}

// RGBA copies the image into a stdlib image.RGBA for encoding.
func (m *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, m.width, m.height))
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			c := m.pix[y*m.width+x]
			out.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return out
}
