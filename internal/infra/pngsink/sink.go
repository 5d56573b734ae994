package pngsink

import (
	"context"
	"fmt"
	"image/png"
	"os"

	"github.com/wallart/wallart-processing-service/internal/art"
)

// Sink encodes a finished wall-art image as a PNG file.
type Sink struct{}

func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) EncodeAndWrite(ctx context.Context, img *art.Image, destPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create art file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img.RGBA()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
