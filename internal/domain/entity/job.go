package entity

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusPending    JobStatus = "PENDING"
	JobStatusProcessing JobStatus = "PROCESSING"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusFailed     JobStatus = "FAILED"
)

type Job struct {
	ID              uuid.UUID
	UserID          string
	MovieKey        string
	ArtKey          string
	Status          JobStatus
	ArtWidth        int
	ArtHeight       int
	Style           string
	ColumnsRendered int
	FileSize        int64
	MovieDuration   float64
	Attempt         int
	MaxAttempts     int
	ErrorMessage    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CompletedAt     *time.Time
}

func NewJob(userID, movieKey string, fileSize int64, width, height int, style string, maxAttempts int) *Job {
	now := time.Now().UTC()
	return &Job{
		ID:          uuid.New(),
		UserID:      userID,
		MovieKey:    movieKey,
		FileSize:    fileSize,
		ArtWidth:    width,
		ArtHeight:   height,
		Style:       style,
		Status:      JobStatusPending,
		Attempt:     0,
		MaxAttempts: maxAttempts,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (j *Job) MarkProcessing() {
	j.Status = JobStatusProcessing
	j.Attempt++
	j.UpdatedAt = time.Now().UTC()
}

func (j *Job) MarkCompleted(artKey string, columnsRendered int, movieDuration float64) {
	now := time.Now().UTC()
	j.Status = JobStatusCompleted
	j.ArtKey = artKey
	j.ColumnsRendered = columnsRendered
	j.MovieDuration = movieDuration
	j.UpdatedAt = now
	j.CompletedAt = &now
}

func (j *Job) MarkFailed(errMsg string) {
	j.Status = JobStatusFailed
	j.ErrorMessage = errMsg
	j.UpdatedAt = time.Now().UTC()
}

func (j *Job) CanRetry() bool {
	return j.Attempt < j.MaxAttempts
}
