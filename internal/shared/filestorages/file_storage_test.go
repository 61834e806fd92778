package filestorages

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPut_ValidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	validKeys := []string{
		"report.json",
		"raw-batches/20230401T124647Z-20230402T124647Z.json",
		"batch-reports/01ARZ3NDEKTSV4RRFFQ69G5FAV.json",
		"nested/deep/path/file.txt",
		"file.with.dots.txt",
	}

	for _, key := range validKeys {
		t.Run(key, func(t *testing.T) {
			result, err := storage.Put(ctx, key, strings.NewReader("payload"), PutOptions{})
			require.NoError(t, err, "key %q should be valid", key)
			assert.Equal(t, key, result.FileKey)

			content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, key))
			require.NoError(t, err)
			assert.Equal(t, "payload", string(content))
		})
	}
}

func TestPut_CreateIfNotExists(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()
	key := "raw-batches/window.json"

	_, err := storage.Put(ctx, key, strings.NewReader("first"), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	_, err = storage.Put(ctx, key, strings.NewReader("second"), PutOptions{AllowOverwrite: false})
	assert.ErrorIs(t, err, ErrFileAlreadyExists)

	assert.Equal(t, "first", readKey(t, storage, key))
	assertNoTempFiles(t, storage, "raw-batches")
}

func TestPut_Overwrite(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()
	key := "batch-reports/report.json"

	_, err := storage.Put(ctx, key, strings.NewReader("pending"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)

	result, err := storage.Put(ctx, key, strings.NewReader("succeeded"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)
	assert.Equal(t, key, result.FileKey)

	assert.Equal(t, "succeeded", readKey(t, storage, key))
	assertNoTempFiles(t, storage, "batch-reports")
}

func TestPut_InvalidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	invalidKeys := []string{
		"",
		"/absolute/path",
		"..",
		"../file.txt",
		"../../etc/passwd",
		"batches/../../etc/passwd",
		"../",
		"a/../..",
		".",
	}

	for _, key := range invalidKeys {
		t.Run(key, func(t *testing.T) {
			_, err := storage.Put(ctx, key, strings.NewReader("data"), PutOptions{})
			assert.ErrorIs(t, err, ErrInvalidKey, "key %q should be invalid", key)

			_, err = storage.Get(ctx, key)
			assert.ErrorIs(t, err, ErrInvalidKey, "key %q should be invalid", key)
		})
	}
}

func TestGet_FileNotFound(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	_, err := storage.Get(context.Background(), "nonexistent.json")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestNewFileStorage_EmptyRootDir(t *testing.T) {
	t.Parallel()

	_, err := NewFileStorage("")
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

func newTestStorage(t *testing.T) FileStorage {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return storage
}

func readKey(t *testing.T, storage FileStorage, key string) string {
	t.Helper()
	readCloser, err := storage.Get(context.Background(), key)
	require.NoError(t, err)
	defer readCloser.Close()

	content, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	return string(content)
}

func assertNoTempFiles(t *testing.T, storage FileStorage, dir string) {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(storage.(*fileStorage).dir, dir))
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasPrefix(entry.Name(), ".tmp-"), "temp file left behind: %s", entry.Name())
	}
}
