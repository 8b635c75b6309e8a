package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/inductive/ecom/internal/config"
)

const defaultMinioEndpoint = "s3.amazonaws.com"

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

type namedProvider struct {
	name     string
	provider credentials.Provider
}

// minioProviders returns the credential chain tried by the MinIO client, in order.
func minioProviders(cfg *config.Config) []namedProvider {
	var chain []namedProvider
	if cfg.HasStaticCredentials() {
		static := &credentials.Static{Value: credentials.Value{
			AccessKeyID:     cfg.StorageAccessKey,
			SecretAccessKey: cfg.StorageSecretKey,
			SignerType:      credentials.SignatureV4,
		}}
		chain = append(chain, namedProvider{"static keys (STORAGE_ACCESS_KEY/STORAGE_SECRET_KEY)", static})
	}
	chain = append(chain,
		namedProvider{"environment (AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY)", &credentials.EnvAWS{}},
		namedProvider{"environment (MINIO_ROOT_USER/MINIO_ROOT_PASSWORD)", &credentials.EnvMinio{}},
		namedProvider{"AWS shared credentials file (~/.aws/credentials)", &credentials.FileAWSCredentials{}},
	)
	// Same switch the AWS SDK honours for its own metadata lookup.
	if os.Getenv("AWS_EC2_METADATA_DISABLED") != "true" {
		chain = append(chain, namedProvider{"IAM role (instance metadata)", &credentials.IAM{
			Client: &http.Client{Transport: http.DefaultTransport},
		}})
	}
	return chain
}

// NewMinioStorage creates a MinIO client bound to cfg.StorageRegion. When
// cfg.StorageEnsureBucket is set, the bucket is checked and created if missing;
// otherwise no request is made until the first upload.
func NewMinioStorage(ctx context.Context, cfg *config.Config) (*MinioStorage, error) {
	endpoint, secure, err := splitEndpoint(cfg.StorageEndpoint, cfg.StorageUseSSL)
	if err != nil {
		return nil, err
	}

	providers := minioProviders(cfg)
	chain := make([]credentials.Provider, len(providers))
	for i, p := range providers {
		chain[i] = p.provider
	}

	lookup := minio.BucketLookupAuto
	if cfg.StorageUsePathStyle {
		lookup = minio.BucketLookupPath
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:        credentials.NewChainCredentials(chain),
		Secure:       secure,
		Region:       cfg.StorageRegion,
		BucketLookup: lookup,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	if cfg.StorageEnsureBucket {
		exists, err := client.BucketExists(ctx, cfg.StorageBucket)
		if err != nil {
			return nil, fmt.Errorf("check bucket existence: %w", err)
		}
		if !exists {
			if err := client.MakeBucket(ctx, cfg.StorageBucket, minio.MakeBucketOptions{Region: cfg.StorageRegion}); err != nil {
				return nil, fmt.Errorf("create bucket %q: %w", cfg.StorageBucket, err)
			}
			log.Printf("storage: created bucket %q", cfg.StorageBucket)
		}
	}

	return &MinioStorage{client: client, bucket: cfg.StorageBucket}, nil
}

// Upload streams reader to the bucket under key. size must be the exact byte
// count (pass -1 only if the size is genuinely unknown; MinIO will buffer it).
func (s *MinioStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// splitEndpoint accepts either "host:port" or a full URL. A URL scheme
// overrides useSSL.
func splitEndpoint(endpoint string, useSSL bool) (string, bool, error) {
	if endpoint == "" {
		return defaultMinioEndpoint, true, nil
	}
	if !strings.Contains(endpoint, "://") {
		return endpoint, useSSL, nil
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", false, fmt.Errorf("parse storage endpoint: %w", err)
	}
	return u.Host, u.Scheme == "https", nil
}
