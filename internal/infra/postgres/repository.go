package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wallart/wallart-processing-service/internal/domain/entity"
)

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func (r *JobRepository) Create(ctx context.Context, job *entity.Job) error {
	query := `
		INSERT INTO art_jobs (
			id, user_id, movie_key, art_key, status, art_width, art_height,
			style, columns_rendered, file_size, movie_duration, attempt,
			max_attempts, error_message, created_at, updated_at, completed_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`

	_, err := r.pool.Exec(ctx, query,
		job.ID, job.UserID, job.MovieKey, job.ArtKey, string(job.Status),
		job.ArtWidth, job.ArtHeight, job.Style, job.ColumnsRendered,
		job.FileSize, job.MovieDuration, job.Attempt, job.MaxAttempts,
		job.ErrorMessage, job.CreatedAt, job.UpdatedAt, job.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (r *JobRepository) Update(ctx context.Context, job *entity.Job) error {
	query := `
		UPDATE art_jobs SET
			status=$2, art_key=$3, columns_rendered=$4, movie_duration=$5,
			attempt=$6, error_message=$7, updated_at=$8, completed_at=$9
		WHERE id=$1`

	_, err := r.pool.Exec(ctx, query,
		job.ID, string(job.Status), job.ArtKey, job.ColumnsRendered,
		job.MovieDuration, job.Attempt, job.ErrorMessage,
		job.UpdatedAt, job.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	query := `
		SELECT id, user_id, movie_key, art_key, status, art_width, art_height,
			style, columns_rendered, file_size, movie_duration, attempt,
			max_attempts, error_message, created_at, updated_at, completed_at
		FROM art_jobs WHERE id=$1`

	job := &entity.Job{}
	var status string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.UserID, &job.MovieKey, &job.ArtKey, &status,
		&job.ArtWidth, &job.ArtHeight, &job.Style, &job.ColumnsRendered,
		&job.FileSize, &job.MovieDuration, &job.Attempt, &job.MaxAttempts,
		&job.ErrorMessage, &job.CreatedAt, &job.UpdatedAt, &job.CompletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("find job by id: %w", err)
	}
	job.Status = entity.JobStatus(status)
	return job, nil
}
