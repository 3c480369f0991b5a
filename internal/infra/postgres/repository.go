package postgres

import (
	"context"
	"fmt"

	"github.com/Abhinandan-srcs/youtube-clone/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func (r *JobRepository) Create(ctx context.Context, job *entity.TranscodeJob) error {
	query := `
		INSERT INTO transcode_jobs (
			id, file_key, status, stage, resolution, variants_published,
			video_duration, error_message, created_at, updated_at, completed_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`

	_, err := r.pool.Exec(ctx, query,
		job.ID, job.FileKey, string(job.Status), string(job.Stage), job.Resolution,
		job.VariantsPublished, job.VideoDuration, job.ErrorMessage,
		job.CreatedAt, job.UpdatedAt, job.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (r *JobRepository) Update(ctx context.Context, job *entity.TranscodeJob) error {
	query := `
		UPDATE transcode_jobs SET
			status=$2, stage=$3, resolution=$4, variants_published=$5,
			video_duration=$6, error_message=$7, updated_at=$8, completed_at=$9
		WHERE id=$1`

	_, err := r.pool.Exec(ctx, query,
		job.ID, string(job.Status), string(job.Stage), job.Resolution,
		job.VariantsPublished, job.VideoDuration, job.ErrorMessage,
		job.UpdatedAt, job.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TranscodeJob, error) {
	query := `
		SELECT id, file_key, status, stage, resolution, variants_published,
			video_duration, error_message, created_at, updated_at, completed_at
		FROM transcode_jobs WHERE id=$1`

	job := &entity.TranscodeJob{}
	var status, stage string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.FileKey, &status, &stage, &job.Resolution,
		&job.VariantsPublished, &job.VideoDuration, &job.ErrorMessage,
		&job.CreatedAt, &job.UpdatedAt, &job.CompletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("find job by id: %w", err)
	}
	job.Status = entity.JobStatus(status)
	job.Stage = entity.PipelineStage(stage)
	return job, nil
}
