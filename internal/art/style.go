package art

import "fmt"

// Style selects how a frame is reduced to column pixel data. It is fixed for
// an entire build, never per-column.
type Style int

const (
	StyleUnknown Style = iota
	// StyleCenterPixel paints the whole column with the frame's center pixel.
	StyleCenterPixel
	// StyleAverageColor paints the whole column with the frame's mean color.
	StyleAverageColor
	// StylePixelStrip paints the column with a vertical gradient of locally
	// averaged colors walked across the frame.
	StylePixelStrip
)

var styleNames = map[Style]string{
	StyleCenterPixel:  "center_pixel",
	StyleAverageColor: "average_color",
	StylePixelStrip:   "pixel_strip",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStyle maps a config or message value to a Style.
func ParseStyle(s string) (Style, error) {
	for style, name := range styleNames {
		if s == name {
			return style, nil
		}
	}
	return StyleUnknown, fmt.Errorf("%w: %q", ErrInvalidStyle, s)
}
