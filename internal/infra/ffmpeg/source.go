package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/wallart/wallart-processing-service/internal/art"
	"go.uber.org/zap"
)

// Source reads a movie frame by frame through ffmpeg/ffprobe. It implements
// art.VideoSource: ffprobe supplies the stream geometry and frame count at
// Open, and each ReadFrame shells one ffmpeg invocation that decodes exactly
// the requested frame to raw rgb24 on stdout.
type Source struct {
	ffmpegBin  string
	ffprobeBin string
	logger     *zap.Logger

	path       string
	width      int
	height     int
	frameCount int
	duration   float64
	next       int
	opened     bool
}

func NewSource(ffmpegBin, ffprobeBin string, logger *zap.Logger) *Source {
	return &Source{ffmpegBin: ffmpegBin, ffprobeBin: ffprobeBin, logger: logger}
}

func (s *Source) Open(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, s.ffprobeBin,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height,nb_frames,r_frame_rate,duration",
		"-of", "default=noprint_wrappers=1",
		path,
	)
	output, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("ffprobe %s: %w", path, err)
	}

	props := parseProbeOutput(string(output))

	s.width, _ = strconv.Atoi(props["width"])
	s.height, _ = strconv.Atoi(props["height"])
	if s.width <= 0 || s.height <= 0 {
		return fmt.Errorf("ffprobe %s: no video stream geometry", path)
	}

	s.duration, _ = strconv.ParseFloat(props["duration"], 64)

	s.frameCount, _ = strconv.Atoi(props["nb_frames"])
	if s.frameCount <= 0 {
		// Some containers report nb_frames as N/A; fall back to
		// duration times the declared frame rate.
		fps := parseFrameRate(props["r_frame_rate"])
		s.frameCount = int(s.duration * fps)
	}
	if s.frameCount <= 0 {
		return fmt.Errorf("ffprobe %s: cannot determine frame count", path)
	}

	s.path = path
	s.next = 0
	s.opened = true

	s.logger.Debug("video source opened",
		zap.String("path", path),
		zap.Int("width", s.width),
		zap.Int("height", s.height),
		zap.Int("frame_count", s.frameCount),
		zap.Float64("duration_secs", s.duration),
	)
	return nil
}

func (s *Source) FrameCount() int { return s.frameCount }

// Duration reports the probed movie length in seconds, 0 when unknown.
func (s *Source) Duration() float64 { return s.duration }

func (s *Source) SeekTo(_ context.Context, index int) error {
	if !s.opened {
		return fmt.Errorf("source not opened")
	}
	if index < 0 {
		return fmt.Errorf("negative frame index %d", index)
	}
	s.next = index
	return nil
}

func (s *Source) ReadFrame(ctx context.Context) (*art.Frame, error) {
	if !s.opened {
		return nil, fmt.Errorf("source not opened")
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.ffmpegBin,
		"-v", "error",
		"-i", s.path,
		"-vf", fmt.Sprintf("select=eq(n\\,%d)", s.next),
		"-frames:v", "1",
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"pipe:1",
	)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg frame %d: %w: %s", s.next, err, stderr.String())
	}

	raw := stdout.Bytes()
	if len(raw) == 0 {
		// Seeking past the last frame produces empty output, not an
		// ffmpeg error. That is the end of the stream.
		return nil, art.ErrEndOfStream
	}

	frame, err := art.FrameFromRaw(raw, s.width, s.height)
	if err != nil {
		return nil, fmt.Errorf("frame %d: %w (%d bytes for %dx%d)", s.next, err, len(raw), s.width, s.height)
	}

	s.next++
	return frame, nil
}

func (s *Source) Close() error {
	s.opened = false
	s.path = ""
	return nil
}

func parseProbeOutput(out string) map[string]string {
	props := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		key, value, found := strings.Cut(strings.TrimSpace(line), "=")
		if found {
			props[key] = value
		}
	}
	return props
}

func parseFrameRate(rate string) float64 {
	num, den, found := strings.Cut(rate, "/")
	if !found {
		f, _ := strconv.ParseFloat(rate, 64)
		return f
	}
	n, err1 := strconv.ParseFloat(num, 64)
	d, err2 := strconv.ParseFloat(den, 64)
	if err1 != nil || err2 != nil || d == 0 {
		return 0
	}
	return n / d
}
