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

// PipelineStage names the stage a job was in when it last changed state.
type PipelineStage string

const (
	StageDownload  PipelineStage = "download"
	StageTranscode PipelineStage = "transcode"
	StagePublish   PipelineStage = "publish"
	StageCleanup   PipelineStage = "cleanup"
)

// TranscodeJob is one pipeline run: fetch a raw video object, produce one
// rendition per configured resolution, publish each rendition, clean up.
type TranscodeJob struct {
	ID                uuid.UUID
	FileKey           string
	Status            JobStatus
	Stage             PipelineStage
	Resolution        string
	VariantsPublished int
	VideoDuration     float64
	ErrorMessage      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	CompletedAt       *time.Time
}

func NewTranscodeJob(fileKey string) *TranscodeJob {
	now := time.Now().UTC()
	return &TranscodeJob{
		ID:        uuid.New(),
		FileKey:   fileKey,
		Status:    JobStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (j *TranscodeJob) MarkProcessing() {
	j.Status = JobStatusProcessing
	j.Stage = StageDownload
	j.UpdatedAt = time.Now().UTC()
}

func (j *TranscodeJob) MarkStage(stage PipelineStage, resolution string) {
	j.Stage = stage
	j.Resolution = resolution
	j.UpdatedAt = time.Now().UTC()
}

func (j *TranscodeJob) MarkCompleted(variantsPublished int, duration float64) {
	now := time.Now().UTC()
	j.Status = JobStatusCompleted
	j.Stage = StageCleanup
	j.Resolution = ""
	j.VariantsPublished = variantsPublished
	j.VideoDuration = duration
	j.UpdatedAt = now
	j.CompletedAt = &now
}

func (j *TranscodeJob) MarkFailed(stage PipelineStage, resolution, errMsg string) {
	j.Status = JobStatusFailed
	j.Stage = stage
	j.Resolution = resolution
	j.ErrorMessage = errMsg
	j.UpdatedAt = time.Now().UTC()
}
