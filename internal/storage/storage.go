package storage

import (
	"context"
	"io"
)

// BlobStore persists recipe image files. The size and per-recipe count
// limits are enforced by callers, not here.
type BlobStore interface {
	UploadImage(ctx context.Context, recipeID string, fileName string, file io.Reader, size int64) (string, error)
	DeleteImage(ctx context.Context, objectName string) error
	ImageURL(objectName string) string
}
