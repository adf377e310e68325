package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"servicevale/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultBucketName = "service-photos"

// S3ObjectStorage keeps service photos and signatures in a single bucket.
// Keys are opaque ids handed out by the caller; view URLs follow the bucket's
// public URL pattern so listings never need a round trip per image.
type S3ObjectStorage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

var _ interfaces.IObjectStorage = (*S3ObjectStorage)(nil)

func NewS3ObjectStorage(cfg aws.Config) *S3ObjectStorage {
	bucket := getenvDefault("PHOTOS_BUCKET", defaultBucketName)
	baseURL := os.Getenv("PHOTOS_BASE_URL")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, cfg.Region)
	}
	return &S3ObjectStorage{
		client:  s3.NewFromConfig(cfg, func(o *s3.Options) { o.UsePathStyle = os.Getenv("S3_ENDPOINT") != "" }),
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *S3ObjectStorage) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	return err
}

func (s *S3ObjectStorage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3ObjectStorage) URL(key string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, key)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
