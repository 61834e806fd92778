package filestorages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrFileAlreadyExists = errors.New("file already exists")
	ErrInvalidKey        = errors.New("invalid file key")
	ErrInvalidRootDir    = errors.New("invalid root directory")
)

type PutResult struct {
	FileKey string
}

type PutOptions struct {
	AllowOverwrite bool
	ContentType    string
}

// FileStorage is a minimal object store: keys are slash-separated relative paths.
// Put with AllowOverwrite=false is an atomic create-if-not-exists.
//
//go:generate mockgen -source=file_storage.go -destination=./mocks/file_storage_mock.go -package=mocks
type FileStorage interface {
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (*PutResult, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

type fileStorage struct {
	dir string
}

// NewFileStorage returns a FileStorage rooted at rootDir on the local filesystem.
func NewFileStorage(rootDir string) (FileStorage, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("%w: root directory cannot be empty", ErrInvalidRootDir)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve absolute path: %w", ErrInvalidRootDir, err)
	}

	return &fileStorage{dir: absRootDir}, nil
}

func (s *fileStorage) Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (*PutResult, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	finalPath := filepath.Join(s.dir, filepath.Clean(key))

	tmpPath, err := s.writeTemp(ctx, filepath.Dir(finalPath), r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = os.Remove(tmpPath) }()

	if opts.AllowOverwrite {
		// Atomic replace (POSIX)
		if err := os.Rename(tmpPath, finalPath); err != nil {
			return nil, err
		}
		return &PutResult{FileKey: key}, nil
	}

	// Atomic publish-if-not-exists; the temp name is removed by the deferred cleanup
	if err := os.Link(tmpPath, finalPath); err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, ErrFileAlreadyExists
		}
		return nil, err
	}
	return &PutResult{FileKey: key}, nil
}

func (s *fileStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return file, nil
}

// writeTemp copies r into a synced temp file inside dir so a partial write is never visible
// under the final key. The caller owns (and must remove) the returned path.
func (s *fileStorage) writeTemp(ctx context.Context, dir string, r io.Reader) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()
	fail := func(err error) (string, error) {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", err
	}

	if _, err := io.Copy(tmp, r); err != nil {
		if ctx.Err() != nil {
			return fail(ctx.Err())
		}
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	return tmpPath, nil
}

// validateKey rejects empty, absolute and root-escaping keys.
func validateKey(key string) error {
	if key == "" || filepath.IsAbs(key) || strings.HasPrefix(key, "/") {
		return ErrInvalidKey
	}
	cleanPath := filepath.Clean(key)
	if cleanPath == ".." || cleanPath == "." {
		return ErrInvalidKey
	}
	if strings.HasPrefix(cleanPath, ".."+string(filepath.Separator)) {
		return ErrInvalidKey
	}
	return nil
}
