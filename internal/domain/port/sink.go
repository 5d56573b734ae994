package port

import (
	"context"

	"github.com/wallart/wallart-processing-service/internal/art"
)

// ImageSink encodes a finished wall-art image to a file. The encoding format
// is opaque to the pipeline.
type ImageSink interface {
	EncodeAndWrite(ctx context.Context, img *art.Image, destPath string) error
}
