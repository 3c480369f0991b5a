package entity

import "github.com/google/uuid"

// TranscodeStatusMessage is the terminal-status message published once per
// finished job.
type TranscodeStatusMessage struct {
	JobID             uuid.UUID `json:"job_id"`
	FileKey           string    `json:"file_key"`
	Status            JobStatus `json:"status"`
	Stage             string    `json:"stage,omitempty"`
	Resolution        string    `json:"resolution,omitempty"`
	VariantsPublished int       `json:"variants_published"`
	Duration          float64   `json:"duration_seconds,omitempty"`
	ErrorMessage      string    `json:"error_message,omitempty"`
}
