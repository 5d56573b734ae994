package art

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSource serves solid-color frames from a fixed palette, one per index.
type fakeSource struct {
	frames    []Color
	frameW    int
	frameH    int
	openErr   error
	failAfter int // reads before forced EndOfStream; 0 means never
	pos       int
	reads     int
	opened    bool
	closed    bool
}

func (s *fakeSource) Open(_ context.Context, _ string) error {
	if s.openErr != nil {
		return s.openErr
	}
	s.opened = true
	return nil
}

func (s *fakeSource) FrameCount() int { return len(s.frames) }

func (s *fakeSource) SeekTo(_ context.Context, index int) error {
	s.pos = index
	return nil
}

func (s *fakeSource) ReadFrame(_ context.Context) (*Frame, error) {
	if s.failAfter > 0 && s.reads >= s.failAfter {
		return nil, ErrEndOfStream
	}
	if s.pos >= len(s.frames) {
		return nil, ErrEndOfStream
	}
	s.reads++
	f := NewFrame(s.frameW, s.frameH)
	f.Fill(s.frames[s.pos])
	return f, nil
}

func (s *fakeSource) Close() error {
	s.closed = true
	return nil
}

func palette(n int) []Color {
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = Color{R: uint8(20 * i), G: uint8(255 - 20*i), B: uint8(10 + i)}
	}
	return colors
}

func TestBuildAverageColorPalette(t *testing.T) {
	src := &fakeSource{frames: palette(10), frameW: 8, frameH: 6}
	b := NewBuilder(zap.NewNop())

	res, err := b.Build(context.Background(), src, "movie.mp4", Spec{Width: 5, Height: 4, Style: StyleAverageColor})
	require.NoError(t, err)
	require.NotNil(t, res.Image)
	assert.Equal(t, 5, res.ColumnsRendered)
	assert.True(t, src.closed)

	// sample_interval = 10/5 = 2: columns carry frames 0,2,4,6,8, each solid.
	want := palette(10)
	for col := 0; col < 5; col++ {
		for y := 0; y < 4; y++ {
			assert.Equal(t, want[col*2], res.Image.At(col, y), "column %d row %d", col, y)
		}
	}
}

func TestBuildShortVideoRepeatsFrameZero(t *testing.T) {
	src := &fakeSource{frames: palette(3), frameW: 4, frameH: 4}
	b := NewBuilder(zap.NewNop())

	res, err := b.Build(context.Background(), src, "short.mp4", Spec{Width: 10, Height: 4, Style: StyleAverageColor})
	require.NoError(t, err)

	first := palette(3)[0]
	for col := 0; col < res.ColumnsRendered; col++ {
		assert.Equal(t, first, res.Image.At(col, 0), "every written column resamples frame 0")
	}
	for col := res.ColumnsRendered; col < 10; col++ {
		assert.Equal(t, Color{}, res.Image.At(col, 0), "unwritten columns stay default")
	}
}

func TestBuildEarlyStreamExhaustionIsNotAnError(t *testing.T) {
	src := &fakeSource{frames: palette(10), frameW: 4, frameH: 4, failAfter: 3}
	b := NewBuilder(zap.NewNop())

	res, err := b.Build(context.Background(), src, "truncated.mp4", Spec{Width: 5, Height: 4, Style: StyleAverageColor})
	require.NoError(t, err)
	assert.Equal(t, 3, res.ColumnsRendered)

	for _, col := range []int{3, 4} {
		for y := 0; y < 4; y++ {
			assert.Equal(t, Color{}, res.Image.At(col, y), "column %d must stay default", col)
		}
	}
}

func TestBuildUnopenableSource(t *testing.T) {
	src := &fakeSource{openErr: errors.New("no such file")}
	b := NewBuilder(zap.NewNop())

	res, err := b.Build(context.Background(), src, "missing.mp4", Spec{Width: 5, Height: 4, Style: StyleAverageColor})
	assert.ErrorIs(t, err, ErrUnopenableSource)
	assert.Nil(t, res)
}

func TestBuildInvalidStyleAborts(t *testing.T) {
	src := &fakeSource{frames: palette(4), frameW: 4, frameH: 4}
	b := NewBuilder(zap.NewNop())

	res, err := b.Build(context.Background(), src, "movie.mp4", Spec{Width: 2, Height: 4, Style: StyleUnknown})
	assert.ErrorIs(t, err, ErrInvalidStyle)
	assert.Nil(t, res)
}

func TestBuildPixelStripColumns(t *testing.T) {
	src := &fakeSource{frames: palette(6), frameW: 20, frameH: 20}
	b := NewBuilder(zap.NewNop())

	res, err := b.Build(context.Background(), src, "movie.mp4", Spec{Width: 3, Height: 5, Style: StylePixelStrip})
	require.NoError(t, err)
	require.Equal(t, 3, res.ColumnsRendered)

	// Uniform frames and 20x20 ≥ 5²: every strip slot equals the frame color.
	want := palette(6)
	for col := 0; col < 3; col++ {
		for y := 0; y < 5; y++ {
			assert.Equal(t, want[col*2], res.Image.At(col, y))
		}
	}
}

func TestBuildCancelledContext(t *testing.T) {
	src := &fakeSource{frames: palette(10), frameW: 4, frameH: 4}
	b := NewBuilder(zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Build(ctx, src, "movie.mp4", Spec{Width: 5, Height: 4, Style: StyleAverageColor})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildRejectsBadDimensions(t *testing.T) {
	b := NewBuilder(zap.NewNop())

	_, err := b.Build(context.Background(), &fakeSource{}, "movie.mp4", Spec{Width: 0, Height: 10, Style: StyleAverageColor})
	assert.Error(t, err)
}
