// Package storage defines the interface for object storage operations.
// Swap implementations by changing the driver selected at startup: the AWS
// SDK driver talks to Amazon S3, the MinIO driver works with any S3-compatible
// provider (MinIO, LocalStack, AWS S3).
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/inductive/ecom/internal/config"
)

// ErrUnknownDriver is returned by New when the configured driver is not supported.
var ErrUnknownDriver = errors.New("unknown storage driver")

// Storage is the interface for uploading objects.
type Storage interface {
	// Upload streams data to the store under the given key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
}

// New builds the Storage implementation selected by cfg.StorageDriver.
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.StorageDriver {
	case config.DriverS3:
		return NewS3Storage(ctx, cfg)
	case config.DriverMinio:
		return NewMinioStorage(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.StorageDriver)
	}
}

// CredentialSources lists, in lookup order, where the selected driver looks
// for credentials. The first source that yields a key pair wins.
func CredentialSources(cfg *config.Config) []string {
	switch cfg.StorageDriver {
	case config.DriverMinio:
		providers := minioProviders(cfg)
		names := make([]string, len(providers))
		for i, p := range providers {
			names[i] = p.name
		}
		return names
	case config.DriverS3:
		if cfg.HasStaticCredentials() {
			return []string{"static keys (STORAGE_ACCESS_KEY/STORAGE_SECRET_KEY)"}
		}
		return awsDefaultChain
	default:
		return nil
	}
}
