package ffmpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildArgs(t *testing.T) {
	args := buildArgs("/raw/clip.mp4", "/processed/720p/clip.mp4", 720)

	assert.Equal(t, []string{
		"-i", "/raw/clip.mp4",
		"-vf", "scale=-2:720",
		"-y",
		"/processed/720p/clip.mp4",
	}, args)
}

func TestBuildArgsScaleFilterPerHeight(t *testing.T) {
	// -2 keeps the aspect ratio and forces an even derived width.
	args := buildArgs("in.mp4", "out.mp4", 360)
	assert.Contains(t, args, "scale=-2:360")

	args = buildArgs("in.mp4", "out.mp4", 1080)
	assert.Contains(t, args, "scale=-2:1080")
}
