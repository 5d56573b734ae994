package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/wallart/wallart-processing-service/internal/art"
	"github.com/wallart/wallart-processing-service/internal/domain/entity"
	"github.com/wallart/wallart-processing-service/internal/domain/port"
	"github.com/wallart/wallart-processing-service/internal/infra/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// SourceFactory creates a fresh video source per job; workers run
// concurrently and a source holds per-movie state between Open and Close.
type SourceFactory func() art.VideoSource

type GenerateArtUseCase struct {
	repo      port.JobRepository
	storage   port.ArtStorage
	builder   *art.Builder
	newSource SourceFactory
	sink      port.ImageSink
	publisher port.StatusPublisher
	dlq       port.DLQPublisher
	notifier  port.FailureNotifier
	logger    *zap.Logger
	tempDir   string
	maxRetry  int
	defaults  art.Spec
}

type GenerateArtConfig struct {
	TempDir       string
	MaxRetries    int
	DefaultWidth  int
	DefaultHeight int
	DefaultStyle  art.Style
}

func NewGenerateArtUseCase(
	repo port.JobRepository,
	storage port.ArtStorage,
	builder *art.Builder,
	newSource SourceFactory,
	sink port.ImageSink,
	publisher port.StatusPublisher,
	dlq port.DLQPublisher,
	notifier port.FailureNotifier,
	logger *zap.Logger,
	cfg GenerateArtConfig,
) *GenerateArtUseCase {
	return &GenerateArtUseCase{
		repo:      repo,
		storage:   storage,
		builder:   builder,
		newSource: newSource,
		sink:      sink,
		publisher: publisher,
		dlq:       dlq,
		notifier:  notifier,
		logger:    logger,
		tempDir:   cfg.TempDir,
		maxRetry:  cfg.MaxRetries,
		defaults: art.Spec{
			Width:  cfg.DefaultWidth,
			Height: cfg.DefaultHeight,
			Style:  cfg.DefaultStyle,
		},
	}
}

func (uc *GenerateArtUseCase) Execute(ctx context.Context, rawMsg []byte) error {
	tracer := otel.Tracer("usecase")
	ctx, span := tracer.Start(ctx, "GenerateArtUseCase.Execute")
	defer span.End()

	totalTimer := time.Now()

	var msg entity.ArtRequestMessage
	if err := json.Unmarshal(rawMsg, &msg); err != nil {
		uc.logger.Error("failed to unmarshal message", zap.Error(err), zap.ByteString("body", rawMsg))
		_ = uc.dlq.PublishToDLQ(ctx, rawMsg, "unmarshal_error: "+err.Error())
		return nil
	}

	span.SetAttributes(
		attribute.String("job.id", msg.JobID.String()),
		attribute.String("job.movie_key", msg.MovieKey),
	)

	log := uc.logger.With(zap.String("job_id", msg.JobID.String()), zap.String("movie_key", msg.MovieKey))

	spec, err := uc.resolveSpec(msg)
	if err != nil {
		// A bad style or dimension is deterministic: retrying replays the
		// same message. Straight to the DLQ.
		log.Error("invalid art request", zap.Error(err))
		job := uc.findOrCreateJob(ctx, msg, uc.defaults, log)
		if job != nil {
			_ = uc.handlePermanentFailure(ctx, job, msg, rawMsg, "invalid_request: "+err.Error())
		}
		return nil
	}

	job := uc.findOrCreateJob(ctx, msg, spec, log)
	if job == nil {
		return fmt.Errorf("create job %s", msg.JobID)
	}

	if !job.CanRetry() {
		log.Warn("job exhausted retries, sending to DLQ")
		_ = uc.handlePermanentFailure(ctx, job, msg, rawMsg, "max retries exceeded")
		return nil
	}

	job.MarkProcessing()
	if err := uc.repo.Update(ctx, job); err != nil {
		log.Error("failed to update job to PROCESSING", zap.Error(err))
		return fmt.Errorf("update job: %w", err)
	}

	metrics.ActiveWorkers.Inc()
	defer metrics.ActiveWorkers.Dec()

	if err := uc.generateArtPipeline(ctx, job, msg, rawMsg, spec, log); err != nil {
		return err
	}

	metrics.JobsProcessedTotal.WithLabelValues("completed").Inc()
	metrics.JobProcessingDuration.WithLabelValues("total").Observe(time.Since(totalTimer).Seconds())

	return nil
}

func (uc *GenerateArtUseCase) resolveSpec(msg entity.ArtRequestMessage) (art.Spec, error) {
	spec := uc.defaults

	if msg.ArtWidth != 0 {
		spec.Width = msg.ArtWidth
	}
	if msg.ArtHeight != 0 {
		spec.Height = msg.ArtHeight
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return art.Spec{}, fmt.Errorf("invalid art dimensions %dx%d", spec.Width, spec.Height)
	}

	if msg.Style != "" {
		style, err := art.ParseStyle(msg.Style)
		if err != nil {
			return art.Spec{}, err
		}
		spec.Style = style
	}
	return spec, nil
}

func (uc *GenerateArtUseCase) findOrCreateJob(ctx context.Context, msg entity.ArtRequestMessage, spec art.Spec, log *zap.Logger) *entity.Job {
	job, err := uc.repo.FindByID(ctx, msg.JobID)
	if err != nil {
		job = entity.NewJob(msg.UserID, msg.MovieKey, msg.FileSize, spec.Width, spec.Height, spec.Style.String(), uc.maxRetry)
		job.ID = msg.JobID
		if err := uc.repo.Create(ctx, job); err != nil {
			log.Error("failed to create job record", zap.Error(err))
			return nil
		}
	}
	return job
}

func (uc *GenerateArtUseCase) generateArtPipeline(
	ctx context.Context,
	job *entity.Job,
	msg entity.ArtRequestMessage,
	rawMsg []byte,
	spec art.Spec,
	log *zap.Logger,
) error {
	tracer := otel.Tracer("usecase")

	workDir := filepath.Join(uc.tempDir, job.ID.String())
	if err := os.MkdirAll(workDir, 0755); err != nil {
		return fmt.Errorf("create workdir: %w", err)
	}
	defer os.RemoveAll(workDir)

	// Download movie from storage
	dlStart := time.Now()
	ctx2, spanDl := tracer.Start(ctx, "download_movie")
	moviePath := filepath.Join(workDir, "input"+filepath.Ext(msg.MovieKey))
	if err := uc.storage.DownloadMovie(ctx2, msg.MovieKey, moviePath); err != nil {
		spanDl.End()
		log.Error("failed to download movie", zap.Error(err))
		return uc.handleRetryableFailure(ctx, job, msg, rawMsg, "download_movie: "+err.Error(), log)
	}
	spanDl.End()
	metrics.JobProcessingDuration.WithLabelValues("download").Observe(time.Since(dlStart).Seconds())

	// Build the wall art. Build failures are deterministic (the same movie
	// and style reproduce them), so they never retry and never write output.
	buildStart := time.Now()
	ctx3, spanBuild := tracer.Start(ctx, "build_art")
	src := uc.newSource()
	result, err := uc.builder.Build(ctx3, src, moviePath, spec)
	if err != nil {
		spanBuild.End()
		log.Error("art build failed", zap.Error(err))
		return uc.handlePermanentFailure(ctx, job, msg, rawMsg, "build_art: "+err.Error())
	}
	spanBuild.End()
	metrics.JobProcessingDuration.WithLabelValues("build").Observe(time.Since(buildStart).Seconds())
	metrics.FramesSampledTotal.Add(float64(result.FramesSampled))
	metrics.ColumnsRenderedTotal.Add(float64(result.ColumnsRendered))

	var movieDuration float64
	if probed, ok := src.(interface{ Duration() float64 }); ok {
		movieDuration = probed.Duration()
	}

	// Encode PNG
	encStart := time.Now()
	ctx4, spanEnc := tracer.Start(ctx, "encode_art")
	artPath := filepath.Join(workDir, "art.png")
	if err := uc.sink.EncodeAndWrite(ctx4, result.Image, artPath); err != nil {
		spanEnc.End()
		log.Error("art encoding failed", zap.Error(err))
		return uc.handleRetryableFailure(ctx, job, msg, rawMsg, "encode_art: "+err.Error(), log)
	}
	spanEnc.End()
	metrics.JobProcessingDuration.WithLabelValues("encode").Observe(time.Since(encStart).Seconds())

	// Upload art to storage
	upStart := time.Now()
	ctx5, spanUp := tracer.Start(ctx, "upload_art")
	artKey := fmt.Sprintf("%s/art_%s.png", msg.UserID, job.ID.String())
	artFile, err := os.Open(artPath)
	if err != nil {
		spanUp.End()
		return uc.handleRetryableFailure(ctx, job, msg, rawMsg, "open_art: "+err.Error(), log)
	}
	artStat, _ := artFile.Stat()
	if err := uc.storage.UploadArt(ctx5, artKey, artFile, artStat.Size()); err != nil {
		artFile.Close()
		spanUp.End()
		log.Error("art upload failed", zap.Error(err))
		return uc.handleRetryableFailure(ctx, job, msg, rawMsg, "upload_art: "+err.Error(), log)
	}
	artFile.Close()
	spanUp.End()
	metrics.JobProcessingDuration.WithLabelValues("upload").Observe(time.Since(upStart).Seconds())

	// Mark completed
	job.MarkCompleted(artKey, result.ColumnsRendered, movieDuration)
	if err := uc.repo.Update(ctx, job); err != nil {
		log.Error("failed to update job to COMPLETED", zap.Error(err))
		return fmt.Errorf("update job completed: %w", err)
	}

	uc.publishStatus(ctx, job, log)

	log.Info("job completed successfully",
		zap.Int("columns_rendered", result.ColumnsRendered),
		zap.Float64("movie_duration_secs", movieDuration),
		zap.String("style", spec.Style.String()),
		zap.String("art_key", artKey),
	)

	return nil
}

func (uc *GenerateArtUseCase) handleRetryableFailure(
	ctx context.Context,
	job *entity.Job,
	msg entity.ArtRequestMessage,
	rawMsg []byte,
	errMsg string,
	log *zap.Logger,
) error {
	job.MarkFailed(errMsg)
	_ = uc.repo.Update(ctx, job)

	if !job.CanRetry() {
		return uc.handlePermanentFailure(ctx, job, msg, rawMsg, errMsg)
	}

	metrics.RetryTotal.WithLabelValues(strconv.Itoa(job.Attempt)).Inc()
	uc.publishStatus(ctx, job, log)

	return fmt.Errorf("retryable failure (attempt %d/%d): %s", job.Attempt, job.MaxAttempts, errMsg)
}

func (uc *GenerateArtUseCase) handlePermanentFailure(
	ctx context.Context,
	job *entity.Job,
	msg entity.ArtRequestMessage,
	rawMsg []byte,
	errMsg string,
) error {
	job.MarkFailed(errMsg)
	_ = uc.repo.Update(ctx, job)

	_ = uc.dlq.PublishToDLQ(ctx, rawMsg, errMsg)

	uc.publishStatus(ctx, job, uc.logger)

	metrics.JobsProcessedTotal.WithLabelValues("dlq").Inc()

	if msg.UserEmail != "" {
		_ = uc.notifier.NotifyFailure(ctx, msg.UserEmail, job.ID.String(), msg.MovieKey, errMsg)
	}

	return nil
}

func (uc *GenerateArtUseCase) publishStatus(ctx context.Context, job *entity.Job, log *zap.Logger) {
	statusMsg := entity.ArtStatusMessage{
		JobID:           job.ID,
		UserID:          job.UserID,
		Status:          job.Status,
		MovieKey:        job.MovieKey,
		ArtKey:          job.ArtKey,
		ArtWidth:        job.ArtWidth,
		ArtHeight:       job.ArtHeight,
		Style:           job.Style,
		ColumnsRendered: job.ColumnsRendered,
		MovieDuration:   job.MovieDuration,
		ErrorMessage:    job.ErrorMessage,
		Attempt:         job.Attempt,
		MaxAttempts:     job.MaxAttempts,
	}
	data, _ := json.Marshal(statusMsg)
	if err := uc.publisher.PublishStatus(ctx, data); err != nil {
		log.Error("failed to publish status", zap.Error(err))
	}
}
