package port

import (
	"context"
	"io"
)

type ArtStorage interface {
	DownloadMovie(ctx context.Context, objectKey string, destPath string) error
	UploadArt(ctx context.Context, objectKey string, reader io.Reader, size int64) error
}
