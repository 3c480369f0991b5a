package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest rejects a job before any storage or filesystem activity.
var ErrInvalidRequest = errors.New("invalid request: missing file key")

// DownloadError is a Fetcher failure: the raw object could not be copied into
// the staging area.
type DownloadError struct {
	FileKey string
	Err     error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s: %v", e.FileKey, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// TranscodeError is an engine-reported failure for one resolution.
type TranscodeError struct {
	Resolution string
	Err        error
}

func (e *TranscodeError) Error() string {
	return fmt.Sprintf("transcode to %s: %v", e.Resolution, e.Err)
}

func (e *TranscodeError) Unwrap() error { return e.Err }

// PublishError is a processed-store write failure for one resolution.
type PublishError struct {
	Resolution string
	Err        error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish %s rendition: %v", e.Resolution, e.Err)
}

func (e *PublishError) Unwrap() error { return e.Err }

// CleanupError is a local delete failure other than "not found". It is always
// logged at the point it occurs and never changes a job's terminal outcome.
type CleanupError struct {
	Path string
	Err  error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("cleanup %s: %v", e.Path, e.Err)
}

func (e *CleanupError) Unwrap() error { return e.Err }
