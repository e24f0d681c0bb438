package upload

import (
	"context"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"repomovil-backend/internal/infrastructure/storage"
)

// File is an incoming upload, already read into memory (uploads are capped
// well below anything worth streaming).
type File struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// Result points at the stored object.
type Result struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type Service interface {
	Save(ctx context.Context, file *File) (*Result, error)
}

type serviceImpl struct {
	storage storage.Storage
	maxSize int64
}

func NewService(storage storage.Storage, maxSize int64) Service {
	return &serviceImpl{
		storage: storage,
		maxSize: maxSize,
	}
}

func (s *serviceImpl) Save(ctx context.Context, file *File) (*Result, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, ErrMissingFile
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		return nil, ErrNotImage
	}
	if file.Size > s.maxSize || int64(len(file.Data)) > s.maxSize {
		return nil, ErrTooLarge
	}

	filename := GenerateFilename(file.Name, file.ContentType)
	url, err := s.storage.Save(ctx, filename, file.Data, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	return &Result{URL: url, Filename: filename}, nil
}

// GenerateFilename builds hero-<millis>-<random>.<ext>. The extension comes
// from the original name, falling back to the MIME subtype.
func GenerateFilename(originalName, contentType string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		if sub, ok := strings.CutPrefix(contentType, "image/"); ok && sub != "" {
			ext = "." + sub
		} else {
			ext = ".bin"
		}
	}
	return fmt.Sprintf("hero-%d-%d%s", time.Now().UnixMilli(), rand.IntN(1_000_000_000), ext)
}
