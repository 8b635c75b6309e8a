package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/inductive/ecom/internal/config"
)

// awsDefaultChain mirrors the lookup order of the AWS SDK default credential chain.
var awsDefaultChain = []string{
	"environment (AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY)",
	"shared config and credentials files (AWS_PROFILE)",
	"web identity token (AWS_WEB_IDENTITY_TOKEN_FILE)",
	"container credentials (ECS task role)",
	"IAM role (EC2 instance metadata)",
}

// S3Storage implements Storage on top of the AWS SDK S3 client.
type S3Storage struct {
	client *s3.Client
	bucket string
}

// NewS3Storage builds an S3 client bound to cfg.StorageRegion. Credentials
// are resolved lazily: unless cfg.StorageEnsureBucket is set, a failure only
// shows up on the first upload.
func NewS3Storage(ctx context.Context, cfg *config.Config) (*S3Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.StorageRegion),
	}
	if cfg.HasStaticCredentials() {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.StorageEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.StorageEndpoint)
		}
		o.UsePathStyle = cfg.StorageUsePathStyle
	})

	if cfg.StorageEnsureBucket {
		if err := ensureS3Bucket(ctx, client, cfg.StorageBucket, cfg.StorageRegion); err != nil {
			return nil, err
		}
	}

	return &S3Storage{client: client, bucket: cfg.StorageBucket}, nil
}

// ensureS3Bucket creates bucket in region when HeadBucket reports it missing.
func ensureS3Bucket(ctx context.Context, client *s3.Client, bucket, region string) error {
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
	if err == nil {
		return nil
	}
	var notFound *types.NotFound
	if !errors.As(err, &notFound) {
		return fmt.Errorf("check bucket existence: %w", err)
	}

	input := &s3.CreateBucketInput{Bucket: aws.String(bucket)}
	// us-east-1 rejects an explicit location constraint.
	if region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(region),
		}
	}
	if _, err := client.CreateBucket(ctx, input); err != nil {
		return fmt.Errorf("create bucket %q: %w", bucket, err)
	}
	log.Printf("storage: created bucket %q", bucket)
	return nil
}

// Upload writes the object with a single PutObject call and waits for the
// acknowledgement.
func (s *S3Storage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   reader,
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}
