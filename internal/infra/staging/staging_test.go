package staging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Abhinandan-srcs/youtube-clone/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResolutions() []entity.ResolutionSpec {
	return []entity.ResolutionSpec{
		{Label: "360p", TargetHeight: 360},
		{Label: "720p", TargetHeight: 720},
	}
}

func TestEnsureAllDirectories(t *testing.T) {
	base := t.TempDir()
	area := NewArea(filepath.Join(base, "raw"), filepath.Join(base, "processed"), testResolutions())

	require.NoError(t, area.EnsureAllDirectories())

	for _, dir := range []string{
		filepath.Join(base, "raw"),
		filepath.Join(base, "processed", "360p"),
		filepath.Join(base, "processed", "720p"),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Idempotent: repeated calls must not fail on existing directories.
	require.NoError(t, area.EnsureAllDirectories())
	require.NoError(t, area.EnsureAllDirectories())
}

func TestStagingPaths(t *testing.T) {
	area := NewArea("/data/raw", "/data/processed", testResolutions())

	assert.Equal(t, filepath.Join("/data/raw", "clip.mp4"), area.RawPath("clip.mp4"))
	assert.Equal(t, filepath.Join("/data/processed", "720p", "clip.mp4"), area.OutputPath("720p", "clip.mp4"))
}

func TestRemoveIfExists(t *testing.T) {
	base := t.TempDir()
	area := NewArea(filepath.Join(base, "raw"), filepath.Join(base, "processed"), testResolutions())
	require.NoError(t, area.EnsureAllDirectories())

	path := area.RawPath("clip.mp4")

	// Absent file is not an error.
	assert.NoError(t, area.RemoveIfExists(path))

	require.NoError(t, os.WriteFile(path, []byte("video bytes"), 0o644))
	require.NoError(t, area.RemoveIfExists(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Second removal of the same path is a no-op.
	assert.NoError(t, area.RemoveIfExists(path))
}

func TestRemoveRawArtifacts(t *testing.T) {
	base := t.TempDir()
	area := NewArea(filepath.Join(base, "raw"), filepath.Join(base, "processed"), testResolutions())
	require.NoError(t, area.EnsureAllDirectories())

	// An interrupted download leaves both the destination file and the store
	// client's resume file.
	require.NoError(t, os.WriteFile(area.RawPath("clip.mp4"), []byte("partial"), 0o644))
	require.NoError(t, os.WriteFile(area.RawPath("clip.mp4.2a8f1c.part.minio"), []byte("resume"), 0o644))
	require.NoError(t, os.WriteFile(area.RawPath("other.mp4"), []byte("unrelated"), 0o644))

	require.NoError(t, area.RemoveRawArtifacts("clip.mp4"))

	for _, name := range []string{"clip.mp4", "clip.mp4.2a8f1c.part.minio"} {
		_, err := os.Stat(area.RawPath(name))
		assert.True(t, os.IsNotExist(err), "%s should be swept", name)
	}

	// Another key's staged file is untouched.
	_, err := os.Stat(area.RawPath("other.mp4"))
	assert.NoError(t, err)

	// Idempotent like RemoveIfExists.
	assert.NoError(t, area.RemoveRawArtifacts("clip.mp4"))
}

func TestRemoveIfExistsReportsRealErrors(t *testing.T) {
	base := t.TempDir()
	area := NewArea(filepath.Join(base, "raw"), filepath.Join(base, "processed"), testResolutions())
	require.NoError(t, area.EnsureAllDirectories())

	// A non-empty directory cannot be removed with os.Remove; this stands in
	// for a filesystem error distinct from "not found".
	dir := filepath.Join(base, "raw", "occupied")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f"), []byte("x"), 0o644))

	err := area.RemoveIfExists(dir)
	require.Error(t, err)

	var cleanupErr *entity.CleanupError
	assert.ErrorAs(t, err, &cleanupErr)
	assert.Equal(t, dir, cleanupErr.Path)
}
