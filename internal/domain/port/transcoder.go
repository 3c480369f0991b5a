package port

import (
	"context"

	"github.com/Abhinandan-srcs/youtube-clone/internal/domain/entity"
)

// Transcoder drives the external transcoding engine. Transcode blocks until
// the engine reports completion or failure for the given resolution; it does
// not retry.
type Transcoder interface {
	Transcode(ctx context.Context, inputPath, outputPath string, res entity.ResolutionSpec) error
	ProbeDuration(ctx context.Context, path string) (float64, error)
}
