package art

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// VideoSource is the builder's view of a decoded movie: a seek-by-index frame
// reader. Implementations own all container/codec detail; the builder only
// ever sees RGB frames.
type VideoSource interface {
	Open(ctx context.Context, path string) error
	FrameCount() int
	SeekTo(ctx context.Context, index int) error
	ReadFrame(ctx context.Context) (*Frame, error)
	Close() error
}

// Spec describes the art to build.
type Spec struct {
	Width  int
	Height int
	Style  Style
}

// Result reports what a build actually produced.
type Result struct {
	Image           *Image
	ColumnsRendered int
	FramesSampled   int
}

// Builder turns a movie into a single wall-art image: it plans which frames to
// sample, reduces each one to column data under the chosen style, and paints
// columns left to right. Strictly sequential; the image is owned by the
// builder until Build returns.
type Builder struct {
	logger *zap.Logger
}

func NewBuilder(logger *zap.Logger) *Builder {
	return &Builder{logger: logger}
}

// Build runs the full pipeline. On ErrUnopenableSource, ErrInvalidStyle or
// ErrLengthMismatch no image is returned and the caller must not write any
// output. Running out of frames mid-plan is normal: the build finishes and
// the trailing columns keep the default color.
func (b *Builder) Build(ctx context.Context, src VideoSource, moviePath string, spec Spec) (*Result, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("invalid art dimensions %dx%d", spec.Width, spec.Height)
	}

	if err := src.Open(ctx, moviePath); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrUnopenableSource, moviePath, err)
	}
	defer src.Close()

	frameCount := src.FrameCount()
	if frameCount <= 0 {
		return nil, fmt.Errorf("%w: %s: no frames reported", ErrUnopenableSource, moviePath)
	}

	plan := PlanSamples(frameCount, spec.Width)
	img := NewImage(spec.Width, spec.Height)

	b.logger.Debug("sampling plan computed",
		zap.Int("frame_count", frameCount),
		zap.Int("planned_samples", len(plan)),
		zap.String("style", spec.Style.String()),
	)

	rendered := 0
	sampled := 0
	for column, frameIndex := range plan {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := src.SeekTo(ctx, frameIndex); err != nil {
			return nil, fmt.Errorf("seek to frame %d: %w", frameIndex, err)
		}

		frame, err := src.ReadFrame(ctx)
		if errors.Is(err, ErrEndOfStream) {
			// Source ran dry before the plan did. The image so far is
			// valid; remaining columns stay default.
			b.logger.Debug("stream exhausted before plan",
				zap.Int("column", column),
				zap.Int("frame_index", frameIndex),
			)
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read frame %d: %w", frameIndex, err)
		}
		sampled++

		data, err := Reduce(frame, spec.Style, spec.Height)
		if err != nil {
			return nil, fmt.Errorf("reduce frame %d: %w", frameIndex, err)
		}

		if err := img.RenderColumn(column, data); err != nil {
			return nil, fmt.Errorf("render column %d: %w", column, err)
		}
		rendered++
	}

	return &Result{Image: img, ColumnsRendered: rendered, FramesSampled: sampled}, nil
}
