package snapshot

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	tterrors "github.com/vango-dev/tooltip/internal/errors"
)

// FileStore keeps snapshots as files below a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. The directory is created on
// first Put.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Kind implements Store.
func (s *FileStore) Kind() string { return "file" }

// Put writes body to dir/key through a temporary file, so readers never
// see a partial snapshot.
func (s *FileStore) Put(ctx context.Context, key string, body []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path, err := s.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", tterrors.New("T030").Wrap(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return "", tterrors.New("T030").Wrap(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return "", tterrors.New("T030").Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		return "", tterrors.New("T030").Wrap(err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", tterrors.New("T030").Wrap(err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", tterrors.New("T030").Wrap(err)
	}
	return path, nil
}

// Get opens dir/key.
func (s *FileStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, tterrors.New("T030").Wrap(err)
	}
	return f, nil
}

// path resolves key inside the store directory.
func (s *FileStore) path(key string) (string, error) {
	if !filepath.IsLocal(key) {
		return "", tterrors.New("T030").WithDetailf("key %q escapes the snapshot directory", key)
	}
	return filepath.Join(s.dir, key), nil
}
