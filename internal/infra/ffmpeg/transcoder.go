package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/Abhinandan-srcs/youtube-clone/internal/domain/entity"
	"go.uber.org/zap"
)

// Transcoder shells out to ffmpeg. Each Transcode call is one engine
// invocation: it returns only after the process exits, success or failure.
type Transcoder struct {
	logger *zap.Logger
}

func NewTranscoder(logger *zap.Logger) *Transcoder {
	return &Transcoder{logger: logger}
}

// Transcode produces one rendition. The scale filter fixes the vertical
// dimension to the target height; -2 lets ffmpeg derive a width that keeps
// the aspect ratio and stays even, which the encoder requires. -y overwrites
// any output left by an earlier delivery of the same event.
func (t *Transcoder) Transcode(ctx context.Context, inputPath, outputPath string, res entity.ResolutionSpec) error {
	args := buildArgs(inputPath, outputPath, res.TargetHeight)
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)

	t.logger.Debug("starting ffmpeg",
		zap.String("resolution", res.Label),
		zap.Strings("args", args),
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg: %w, output: %s", err, string(output))
	}

	t.logger.Info("transcode finished",
		zap.String("resolution", res.Label),
		zap.String("output", outputPath),
	)
	return nil
}

func buildArgs(inputPath, outputPath string, height int) []string {
	return []string{
		"-i", inputPath,
		"-vf", fmt.Sprintf("scale=-2:%d", height),
		"-y",
		outputPath,
	}
}

// ProbeDuration reads the container duration in seconds via ffprobe.
func (t *Transcoder) ProbeDuration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration: %w", err)
	}
	return duration, nil
}
