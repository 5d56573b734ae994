package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJobDefaults(t *testing.T) {
	job := NewJob("user-1", "user-1/movie.mp4", 2048, 1080, 1920, "average_color", 5)

	assert.Equal(t, JobStatusPending, job.Status)
	assert.Equal(t, 0, job.Attempt)
	assert.Equal(t, 5, job.MaxAttempts)
	assert.Equal(t, 1080, job.ArtWidth)
	assert.Equal(t, 1920, job.ArtHeight)
	assert.NotEqual(t, job.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Nil(t, job.CompletedAt)
}

func TestJobLifecycle(t *testing.T) {
	job := NewJob("user-1", "movie.mp4", 0, 10, 10, "center_pixel", 2)

	require.True(t, job.CanRetry())
	job.MarkProcessing()
	assert.Equal(t, JobStatusProcessing, job.Status)
	assert.Equal(t, 1, job.Attempt)

	job.MarkCompleted("user-1/art.png", 10, 90.5)
	assert.Equal(t, JobStatusCompleted, job.Status)
	assert.Equal(t, "user-1/art.png", job.ArtKey)
	assert.Equal(t, 10, job.ColumnsRendered)
	assert.Equal(t, 90.5, job.MovieDuration)
	require.NotNil(t, job.CompletedAt)
}

func TestJobRetryExhaustion(t *testing.T) {
	job := NewJob("user-1", "movie.mp4", 0, 10, 10, "pixel_strip", 2)

	job.MarkProcessing()
	job.MarkFailed("download: timeout")
	assert.Equal(t, JobStatusFailed, job.Status)
	assert.True(t, job.CanRetry())

	job.MarkProcessing()
	job.MarkFailed("download: timeout")
	assert.False(t, job.CanRetry())
}
