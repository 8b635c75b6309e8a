// Package upload forwards client files to object storage.
package upload

import (
	"bytes"
	"context"
	"strconv"
	"time"

	"github.com/inductive/ecom/internal/storage"
)

// missingFilename stands in for an absent original filename in generated keys.
const missingFilename = "null"

// Service writes uploaded files to the configured bucket.
type Service struct {
	store storage.Storage
	now   func() time.Time
}

// NewService creates a new upload Service.
func NewService(store storage.Storage) *Service {
	return &Service{store: store, now: time.Now}
}

// UploadFile stores data under "<epoch-millis>-<filename>" and returns that key
// once the backend has acknowledged the write. Storage errors are returned as is.
func (s *Service) UploadFile(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	key := s.objectKey(filename)
	if err := s.store.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return "", err
	}
	return key, nil
}

// objectKey does not deduplicate: two identical names in the same millisecond collide.
func (s *Service) objectKey(filename string) string {
	if filename == "" {
		filename = missingFilename
	}
	return strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + filename
}
