package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdedit/pkg/fsutil"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("content and metadata", func(t *testing.T) {
		t.Parallel()
		path := writeTemp(t, "# Title\n")

		content, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "# Title\n", string(content))
		assert.Equal(t, path, info.Path)
		assert.Equal(t, int64(8), info.Size)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, _, err := fsutil.ReadFile(ctx, filepath.Join(t.TempDir(), "absent.md"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, fsutil.ErrNotFound))
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()
		_, _, err := fsutil.ReadFile(ctx, t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.Is(err, fsutil.ErrIsDirectory))
	})
}

func TestCheckModified(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("untouched file", func(t *testing.T) {
		t.Parallel()
		path := writeTemp(t, "stable\n")
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		modified, err := fsutil.CheckModified(ctx, info)
		require.NoError(t, err)
		assert.False(t, modified)
	})

	t.Run("rewritten file", func(t *testing.T) {
		t.Parallel()
		path := writeTemp(t, "before\n")
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("after edit\n"), 0o644))

		modified, err := fsutil.CheckModified(ctx, info)
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("touched but identical content", func(t *testing.T) {
		t.Parallel()
		path := writeTemp(t, "same\n")
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		// Bump the mod time without changing bytes; the hash check
		// must clear the quick-check positive.
		future := time.Now().Add(time.Hour)
		require.NoError(t, os.Chtimes(path, future, future))

		modified, err := fsutil.CheckModified(ctx, info)
		require.NoError(t, err)
		assert.False(t, modified)
	})

	t.Run("deleted file counts as modified", func(t *testing.T) {
		t.Parallel()
		path := writeTemp(t, "gone\n")
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		require.NoError(t, os.Remove(path))

		modified, err := fsutil.CheckModified(ctx, info)
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("nil info", func(t *testing.T) {
		t.Parallel()
		_, err := fsutil.CheckModified(ctx, nil)
		require.Error(t, err)
	})
}
