package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes uploads to a directory served statically at /uploads.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %q: %w", dir, err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Save writes the file and returns its relative URL path, e.g.
// /uploads/hero-1712345678901-123456789.jpg. Rewriting to an absolute URL
// happens at the response layer.
func (s *LocalStorage) Save(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	// Reject anything that could escape the upload dir.
	if filepath.Base(filename) != filename || strings.Contains(filename, "..") {
		return "", fmt.Errorf("invalid filename %q", filename)
	}

	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %q: %w", path, err)
	}

	return "/uploads/" + filename, nil
}

func (s *LocalStorage) Delete(ctx context.Context, filename string) error {
	if filepath.Base(filename) != filename {
		return fmt.Errorf("invalid filename %q", filename)
	}
	if err := os.Remove(filepath.Join(s.dir, filename)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %q: %w", filename, err)
	}
	return nil
}

var _ Storage = (*LocalStorage)(nil)
