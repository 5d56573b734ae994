package entity

import "github.com/google/uuid"

// ArtRequestMessage is the inbound message from the art.generate queue.
// Width, Height and Style are optional; zero values fall back to the worker's
// configured defaults.
type ArtRequestMessage struct {
	JobID     uuid.UUID `json:"job_id"`
	UserID    string    `json:"user_id"`
	MovieKey  string    `json:"movie_key"`
	FileSize  int64     `json:"file_size"`
	ArtWidth  int       `json:"art_width,omitempty"`
	ArtHeight int       `json:"art_height,omitempty"`
	Style     string    `json:"style,omitempty"`
	UserEmail string    `json:"user_email"`
}

// ArtStatusMessage is the outbound message published to the art.status queue.
type ArtStatusMessage struct {
	JobID           uuid.UUID `json:"job_id"`
	UserID          string    `json:"user_id"`
	Status          JobStatus `json:"status"`
	MovieKey        string    `json:"movie_key"`
	ArtKey          string    `json:"art_key,omitempty"`
	ArtWidth        int       `json:"art_width,omitempty"`
	ArtHeight       int       `json:"art_height,omitempty"`
	Style           string    `json:"style,omitempty"`
	ColumnsRendered int       `json:"columns_rendered,omitempty"`
	MovieDuration   float64   `json:"movie_duration_seconds,omitempty"`
	ErrorMessage    string    `json:"error_message,omitempty"`
	Attempt         int       `json:"attempt"`
	MaxAttempts     int       `json:"max_attempts"`
}
