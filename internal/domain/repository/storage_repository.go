package repository

import (
	"context"
	"io"
)

// ProgressFunc reports bytes transferred so far against the total size of one
// object. Total is <= 0 when the size is unknown.
type ProgressFunc func(transferred, total int64)

// StorageRepository defines blob-storage operations for listing images.
type StorageRepository interface {
	// Upload streams content under objectName and returns the durable
	// retrieval URL. progress may be nil.
	Upload(ctx context.Context, objectName string, content io.Reader, size int64, progress ProgressFunc) (string, error)

	// Delete removes a stored object. Used by the orphan cleanup worker.
	Delete(ctx context.Context, objectName string) error
}
