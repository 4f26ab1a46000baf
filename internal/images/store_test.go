package images

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "images")

	store, err := NewStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSavePNG(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	t.Run("writes bytes to a unique file", func(t *testing.T) {
		data := []byte("fake-png-bytes")

		first, err := store.SavePNG(data)
		require.NoError(t, err)
		second, err := store.SavePNG(data)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, strings.HasSuffix(first, ".png"))

		written, err := os.ReadFile(first)
		require.NoError(t, err)
		assert.Equal(t, data, written)
	})

	t.Run("rejects empty data", func(t *testing.T) {
		_, err := store.SavePNG(nil)
		assert.Error(t, err)
	})
}

func TestMaterialize(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	t.Run("file paths pass through", func(t *testing.T) {
		path, err := store.Materialize("file:///photos/outfit.jpg")
		require.NoError(t, err)
		assert.Equal(t, "file:///photos/outfit.jpg", path)
	})

	t.Run("data URI becomes a stored file", func(t *testing.T) {
		data := []byte("fake-png-bytes")
		uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)

		path, err := store.Materialize(uri)
		require.NoError(t, err)
		assert.NotEqual(t, uri, path)

		written, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, data, written)
	})

	t.Run("invalid base64 fails", func(t *testing.T) {
		_, err := store.Materialize("data:image/png;base64,!!!not-base64!!!")
		assert.Error(t, err)
	})
}
