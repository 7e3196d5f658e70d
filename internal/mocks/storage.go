package mocks

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
)

// BlobStore is an in-memory stand-in for the object store, used by
// handler and service tests.
type BlobStore struct {
	mu      sync.Mutex
	Objects map[string][]byte

	// FailDelete makes DeleteImage return an error, for exercising the
	// log-and-continue path of cascading deletes.
	FailDelete bool
}

func NewBlobStore() *BlobStore {
	return &BlobStore{Objects: make(map[string][]byte)}
}

func (s *BlobStore) UploadImage(ctx context.Context, recipeID string, fileName string, file io.Reader, size int64) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("recipes/%s/%s", recipeID, uuid.New().String())
	s.mu.Lock()
	s.Objects[objectName] = data
	s.mu.Unlock()
	return objectName, nil
}

func (s *BlobStore) DeleteImage(ctx context.Context, objectName string) error {
	if s.FailDelete {
		return fmt.Errorf("delete failed for %s", objectName)
	}
	s.mu.Lock()
	delete(s.Objects, objectName)
	s.mu.Unlock()
	return nil
}

func (s *BlobStore) ImageURL(objectName string) string {
	return "http://blobstore.test/" + objectName
}
