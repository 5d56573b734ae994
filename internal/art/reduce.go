package art

// ColumnData is the result of reducing one frame: either a single solid color
// or a full-height strip of colors. Strip is nil for solid columns.
type ColumnData struct {
	Solid Color
	Strip []Color
}

// IsStrip reports whether the data carries a per-row gradient.
func (d ColumnData) IsStrip() bool { return d.Strip != nil }

// Reduce collapses a frame's pixel grid to column data under the given style.
// outputLen is the height of the output image; only StylePixelStrip uses it.
func Reduce(f *Frame, style Style, outputLen int) (ColumnData, error) {
	switch style {
	case StyleCenterPixel:
		return ColumnData{Solid: reduceCenterPixel(f)}, nil
	case StyleAverageColor:
		return ColumnData{Solid: reduceAverageColor(f)}, nil
	case StylePixelStrip:
		return ColumnData{Strip: reducePixelStrip(f, outputLen)}, nil
	default:
		return ColumnData{}, ErrInvalidStyle
	}
}

func reduceCenterPixel(f *Frame) Color {
	return f.At(f.width/2, f.height/2)
}

func reduceAverageColor(f *Frame) Color {
	// int64 sums: a full 8K frame peaks around 2^33, past int32.
	var sumR, sumG, sumB int64
	for x := 0; x < f.width; x++ {
		for y := 0; y < f.height; y++ {
			c := f.At(x, y)
			sumR += int64(c.R)
			sumG += int64(c.G)
			sumB += int64(c.B)
		}
	}
	n := int64(f.width * f.height)
	return Color{
		R: uint8(sumR / n),
		G: uint8(sumG / n),
		B: uint8(sumB / n),
	}
}

// reducePixelStrip walks the frame column-major, averaging runs of pixels and
// replicating each run's mean into consecutive strip slots. Integer-division
// intervals can leave trailing slots at the zero color; that rounding artifact
// is part of the contract, not something to paper over.
func reducePixelStrip(f *Frame, outputLen int) []Color {
	strip := make([]Color, outputLen)

	sampleInterval := (f.width * f.height) / outputLen
	stripInterval := sampleInterval / outputLen

	var sumR, sumG, sumB int64
	count := 0
	cursor := 0

	for x := 0; x < f.width; x++ {
		for y := 0; y < f.height; y++ {
			c := f.At(x, y)
			sumR += int64(c.R)
			sumG += int64(c.G)
			sumB += int64(c.B)
			count++

			if count > sampleInterval {
				mean := Color{
					R: uint8(sumR / int64(count)),
					G: uint8(sumG / int64(count)),
					B: uint8(sumB / int64(count)),
				}
				for i := 0; i < stripInterval && cursor < outputLen; i++ {
					strip[cursor] = mean
					cursor++
				}
				sumR, sumG, sumB = 0, 0, 0
				count = 0
			}
		}
	}

	return strip
}
