package staging

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Abhinandan-srcs/youtube-clone/internal/domain/entity"
)

// Area owns the ephemeral local directories a job stages files in: one raw
// directory shared by all jobs and one output directory per resolution label.
// The directories are created once at startup and reused across jobs; the
// files inside them live only for the duration of a single job.
type Area struct {
	rawDir       string
	processedDir string
	resolutions  []entity.ResolutionSpec
}

func NewArea(rawDir, processedDir string, resolutions []entity.ResolutionSpec) *Area {
	return &Area{rawDir: rawDir, processedDir: processedDir, resolutions: resolutions}
}

// EnsureAllDirectories creates the raw directory and every resolution's output
// directory. Safe to call repeatedly; existing directories are left alone.
func (a *Area) EnsureAllDirectories() error {
	if err := os.MkdirAll(a.rawDir, 0o755); err != nil {
		return fmt.Errorf("create raw dir: %w", err)
	}
	for _, res := range a.resolutions {
		dir := filepath.Join(a.processedDir, res.Label)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}
	return nil
}

// RawPath is where the raw object for fileKey is staged.
func (a *Area) RawPath(fileKey string) string {
	return filepath.Join(a.rawDir, fileKey)
}

// OutputPath is where the rendition of fileKey for the given label is written.
func (a *Area) OutputPath(label, fileKey string) string {
	return filepath.Join(a.processedDir, label, fileKey)
}

// RemoveIfExists deletes the file at path. An already-absent file is not an
// error, which makes the call idempotent and safe from every failure branch.
func (a *Area) RemoveIfExists(path string) error {
	err := os.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return &entity.CleanupError{Path: path, Err: err}
}

// RemoveRawArtifacts removes the staged raw file for fileKey together with any
// partial-transfer files the store client left beside it. An interrupted
// download leaves a "<fileKey>.<etag>.part.minio" resume file, which would
// otherwise outlive a failed job.
func (a *Area) RemoveRawArtifacts(fileKey string) error {
	entries, err := os.ReadDir(a.rawDir)
	if err != nil {
		return &entity.CleanupError{Path: a.rawDir, Err: err}
	}
	for _, e := range entries {
		if e.Name() != fileKey && !strings.HasPrefix(e.Name(), fileKey+".") {
			continue
		}
		if err := a.RemoveIfExists(filepath.Join(a.rawDir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
