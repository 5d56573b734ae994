package art

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Frame is a single decoded video frame: a W×H grid of RGB pixels backed by
// a contiguous buffer, 3 bytes per pixel, row-major. Frames are transient --
// one is read, reduced and discarded before the next sample is requested.
type Frame struct {
	pix    []uint8
	width  int
	height int
}

// NewFrame allocates a zeroed (black) frame.
func NewFrame(width, height int) *Frame {
	return &Frame{
		pix:    make([]uint8, width*height*3),
		width:  width,
		height: height,
	}
}

// FrameFromRaw wraps a raw rgb24 buffer as a Frame. The buffer must hold
// exactly width*height*3 bytes; ownership passes to the frame.
func FrameFromRaw(raw []uint8, width, height int) (*Frame, error) {
	if len(raw) != width*height*3 {
		return nil, ErrShortFrame
	}
	return &Frame{pix: raw, width: width, height: height}, nil
}

func (f *Frame) Width() int  { return f.width }
func (f *Frame) Height() int { return f.height }

// At returns the pixel at column x, row y.
func (f *Frame) At(x, y int) Color {
	i := (y*f.width + x) * 3
	return Color{R: f.pix[i], G: f.pix[i+1], B: f.pix[i+2]}
}

// Set writes the pixel at column x, row y. Used by synthetic frames in tests
// and tooling; the pipeline itself never mutates a frame.
func (f *Frame) Set(x, y int, c Color) {
	i := (y*f.width + x) * 3
	f.pix[i] = c.R
	f.pix[i+1] = c.G
	f.pix[i+2] = c.B
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c Color) {
	for i := 0; i < len(f.pix); i += 3 {
		f.pix[i] = c.R
		f.pix[i+1] = c.G
		f.pix[i+2] = c.B
	}
}
