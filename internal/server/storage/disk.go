package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// publicPrefix is the URL path under which uploads are served.
const publicPrefix = "/uploads"

// DiskStorage writes photos to a local uploads directory.
type DiskStorage struct {
	dir string
}

func NewDiskStorage(dir string) *DiskStorage {
	return &DiskStorage{dir: dir}
}

func (s *DiskStorage) Save(_ context.Context, fileName string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}

	dst := filepath.Join(s.dir, fileName)
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("writing upload file: %w", err)
	}

	return path.Join(publicPrefix, fileName), nil
}
