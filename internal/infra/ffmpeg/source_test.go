package ffmpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProbeOutput(t *testing.T) {
	out := "width=320\nheight=240\nnb_frames=48\nr_frame_rate=24/1\nduration=2.000000\n"

	props := parseProbeOutput(out)

	assert.Equal(t, "320", props["width"])
	assert.Equal(t, "240", props["height"])
	assert.Equal(t, "48", props["nb_frames"])
	assert.Equal(t, "24/1", props["r_frame_rate"])
	assert.Equal(t, "2.000000", props["duration"])
}

func TestParseProbeOutputSkipsBlankAndMalformedLines(t *testing.T) {
	props := parseProbeOutput("\nwidth=320\ngarbage\n\n")

	assert.Equal(t, map[string]string{"width": "320"}, props)
}

func TestParseFrameRate(t *testing.T) {
	assert.Equal(t, 24.0, parseFrameRate("24/1"))
	assert.InDelta(t, 29.97, parseFrameRate("30000/1001"), 0.001)
	assert.Equal(t, 25.0, parseFrameRate("25"))
	assert.Equal(t, 0.0, parseFrameRate("0/0"))
	assert.Equal(t, 0.0, parseFrameRate("N/A"))
}
