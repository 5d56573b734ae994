package pngsink

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wallart/wallart-processing-service/internal/art"
)

func TestEncodeAndWriteRoundTrip(t *testing.T) {
	img := art.NewImage(4, 3)
	require.NoError(t, img.RenderColumn(0, art.ColumnData{Solid: art.Color{R: 255}}))
	require.NoError(t, img.RenderColumn(3, art.ColumnData{Solid: art.Color{B: 255}}))

	dest := filepath.Join(t.TempDir(), "art.png")
	sink := NewSink()
	require.NoError(t, sink.EncodeAndWrite(context.Background(), img, dest))

	f, err := os.Open(dest)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 4, decoded.Bounds().Dx())
	require.Equal(t, 3, decoded.Bounds().Dy())

	r, g, b, _ := decoded.At(0, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)

	r, _, b, _ = decoded.At(3, 0).RGBA()
	assert.Equal(t, uint32(0), r)
	assert.Equal(t, uint32(0xffff), b)
}

func TestEncodeAndWriteCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dest := filepath.Join(t.TempDir(), "art.png")
	err := NewSink().EncodeAndWrite(ctx, art.NewImage(1, 1), dest)
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "no file may be written after cancellation")
}
