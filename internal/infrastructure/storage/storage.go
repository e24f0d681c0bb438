package storage

import "context"

// Storage is the file backend behind the upload endpoint. Save returns the
// URL path or absolute URL the stored object is reachable at.
type Storage interface {
	Save(ctx context.Context, filename string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, filename string) error
}
