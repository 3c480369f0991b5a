package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/Abhinandan-srcs/youtube-clone/internal/domain/entity"
	"github.com/Abhinandan-srcs/youtube-clone/internal/domain/port"
	"github.com/Abhinandan-srcs/youtube-clone/internal/infra/metrics"
	"github.com/Abhinandan-srcs/youtube-clone/internal/infra/staging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ProcessVideoUseCase drives one job through the pipeline: download the raw
// object, then per configured resolution transcode, publish and clean the
// local rendition, and finally clean the raw file. The raw file is removed on
// every terminal path; already-published renditions are never rolled back
// when a later resolution fails, so a redelivered event can re-run the whole
// job and overwrite them in place.
type ProcessVideoUseCase struct {
	storage     port.VideoStorage
	transcoder  port.Transcoder
	staging     *staging.Area
	repo        port.JobRepository
	publisher   port.StatusPublisher
	notifier    port.FailureNotifier
	logger      *zap.Logger
	resolutions []entity.ResolutionSpec
	notifyEmail string
}

type ProcessVideoConfig struct {
	Resolutions []entity.ResolutionSpec
	NotifyEmail string
}

func NewProcessVideoUseCase(
	storage port.VideoStorage,
	transcoder port.Transcoder,
	stagingArea *staging.Area,
	repo port.JobRepository,
	publisher port.StatusPublisher,
	notifier port.FailureNotifier,
	logger *zap.Logger,
	cfg ProcessVideoConfig,
) *ProcessVideoUseCase {
	return &ProcessVideoUseCase{
		storage:     storage,
		transcoder:  transcoder,
		staging:     stagingArea,
		repo:        repo,
		publisher:   publisher,
		notifier:    notifier,
		logger:      logger,
		resolutions: cfg.Resolutions,
		notifyEmail: cfg.NotifyEmail,
	}
}

// Execute runs the pipeline for one file key. It returns nil only when every
// configured resolution has been published and the raw staging file is gone.
func (uc *ProcessVideoUseCase) Execute(ctx context.Context, fileKey string) error {
	// Rejected before any storage or filesystem activity.
	if strings.TrimSpace(fileKey) == "" {
		return entity.ErrInvalidRequest
	}

	tracer := otel.Tracer("usecase")
	ctx, span := tracer.Start(ctx, "ProcessVideoUseCase.Execute")
	defer span.End()
	span.SetAttributes(attribute.String("job.file_key", fileKey))

	job := entity.NewTranscodeJob(fileKey)
	log := uc.logger.With(
		zap.String("job_id", job.ID.String()),
		zap.String("file_key", fileKey),
	)

	if err := uc.repo.Create(ctx, job); err != nil {
		log.Warn("failed to create job record", zap.Error(err))
	}
	job.MarkProcessing()
	uc.saveJob(ctx, job, log)

	metrics.ActiveJobs.Inc()
	defer metrics.ActiveJobs.Dec()
	totalTimer := time.Now()

	rawPath := uc.staging.RawPath(fileKey)

	dlStart := time.Now()
	dlCtx, dlSpan := tracer.Start(ctx, "download_raw")
	err := uc.storage.DownloadRaw(dlCtx, fileKey, rawPath)
	dlSpan.End()
	if err != nil {
		log.Error("failed to download raw video", zap.Error(err))
		// An interrupted transfer can leave a partial file and the store
		// client's resume file behind.
		if err := uc.staging.RemoveRawArtifacts(fileKey); err != nil {
			metrics.CleanupFailuresTotal.Inc()
			log.Warn("raw cleanup failed", zap.Error(err))
		}
		return uc.failJob(ctx, job, entity.StageDownload, "",
			&entity.DownloadError{FileKey: fileKey, Err: err}, log)
	}
	metrics.StageDuration.WithLabelValues("download").Observe(time.Since(dlStart).Seconds())
	log.Info("raw video downloaded", zap.String("path", rawPath))

	duration, err := uc.transcoder.ProbeDuration(ctx, rawPath)
	if err != nil {
		log.Warn("could not probe video duration", zap.Error(err))
	}
	job.VideoDuration = duration

	published := 0
	for _, res := range uc.resolutions {
		outPath := uc.staging.OutputPath(res.Label, fileKey)

		job.MarkStage(entity.StageTranscode, res.Label)
		uc.saveJob(ctx, job, log)

		tcStart := time.Now()
		tcCtx, tcSpan := tracer.Start(ctx, "transcode",
			trace.WithAttributes(attribute.String("resolution", res.Label)))
		err = uc.transcoder.Transcode(tcCtx, rawPath, outPath, res)
		tcSpan.End()
		if err != nil {
			log.Error("transcode failed", zap.String("resolution", res.Label), zap.Error(err))
			uc.removeLocal(outPath, log)
			uc.removeLocal(rawPath, log)
			return uc.failJob(ctx, job, entity.StageTranscode, res.Label,
				&entity.TranscodeError{Resolution: res.Label, Err: err}, log)
		}
		metrics.StageDuration.WithLabelValues("transcode").Observe(time.Since(tcStart).Seconds())

		job.MarkStage(entity.StagePublish, res.Label)
		uc.saveJob(ctx, job, log)

		objectKey := res.Label + "/" + fileKey
		upStart := time.Now()
		upCtx, upSpan := tracer.Start(ctx, "publish",
			trace.WithAttributes(attribute.String("resolution", res.Label)))
		err = uc.storage.UploadProcessed(upCtx, objectKey, outPath)
		upSpan.End()
		if err != nil {
			log.Error("publish failed", zap.String("resolution", res.Label), zap.Error(err))
			uc.removeLocal(outPath, log)
			uc.removeLocal(rawPath, log)
			return uc.failJob(ctx, job, entity.StagePublish, res.Label,
				&entity.PublishError{Resolution: res.Label, Err: err}, log)
		}
		metrics.StageDuration.WithLabelValues("publish").Observe(time.Since(upStart).Seconds())
		metrics.VariantsPublishedTotal.WithLabelValues(res.Label).Inc()

		published++
		job.VariantsPublished = published
		log.Info("rendition published",
			zap.String("resolution", res.Label),
			zap.String("object_key", objectKey),
		)

		// The published artifact is durable; a failed local delete here is
		// logged but does not fail the job.
		uc.removeLocal(outPath, log)
	}

	uc.removeLocal(rawPath, log)

	job.MarkCompleted(published, duration)
	uc.saveJob(ctx, job, log)
	uc.publishStatus(ctx, job, log)

	metrics.JobsProcessedTotal.WithLabelValues("completed").Inc()
	metrics.StageDuration.WithLabelValues("total").Observe(time.Since(totalTimer).Seconds())

	log.Info("job completed",
		zap.Int("variants_published", published),
		zap.Float64("duration_secs", duration),
	)
	return nil
}

func (uc *ProcessVideoUseCase) failJob(
	ctx context.Context,
	job *entity.TranscodeJob,
	stage entity.PipelineStage,
	resolution string,
	jobErr error,
	log *zap.Logger,
) error {
	job.MarkFailed(stage, resolution, jobErr.Error())
	uc.saveJob(ctx, job, log)
	uc.publishStatus(ctx, job, log)

	if uc.notifyEmail != "" {
		_ = uc.notifier.NotifyFailure(ctx, uc.notifyEmail, job.ID.String(), job.FileKey, jobErr.Error())
	}

	metrics.JobsProcessedTotal.WithLabelValues("failed").Inc()
	return jobErr
}

func (uc *ProcessVideoUseCase) removeLocal(path string, log *zap.Logger) {
	if err := uc.staging.RemoveIfExists(path); err != nil {
		metrics.CleanupFailuresTotal.Inc()
		log.Warn("local cleanup failed", zap.String("path", path), zap.Error(err))
	}
}

func (uc *ProcessVideoUseCase) saveJob(ctx context.Context, job *entity.TranscodeJob, log *zap.Logger) {
	if err := uc.repo.Update(ctx, job); err != nil {
		log.Warn("failed to update job record", zap.Error(err))
	}
}

func (uc *ProcessVideoUseCase) publishStatus(ctx context.Context, job *entity.TranscodeJob, log *zap.Logger) {
	statusMsg := entity.TranscodeStatusMessage{
		JobID:             job.ID,
		FileKey:           job.FileKey,
		Status:            job.Status,
		Stage:             string(job.Stage),
		Resolution:        job.Resolution,
		VariantsPublished: job.VariantsPublished,
		Duration:          job.VideoDuration,
		ErrorMessage:      job.ErrorMessage,
	}
	data, err := json.Marshal(statusMsg)
	if err != nil {
		log.Error("failed to marshal status message", zap.Error(err))
		return
	}
	if err := uc.publisher.PublishStatus(ctx, data); err != nil {
		log.Error("failed to publish status", zap.Error(err))
	}
}
