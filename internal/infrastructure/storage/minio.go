package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"posterdeck-backend/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOStorage holds uploaded PDF bytes and hands out public URLs.
type MinIOStorage struct {
	client *minio.Client
	bucket string
	useSSL bool
}

// NewMinIOStorage creates the client and makes sure the bucket exists.
func NewMinIOStorage(cfg config.MinIOConfig) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOStorage{
		client: client,
		bucket: cfg.Bucket,
		useSSL: cfg.UseSSL,
	}, nil
}

// Upload stores data under key and returns the public URL the viewer
// will fetch the PDF from.
func (s *MinIOStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	reader := bytes.NewReader(data)

	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		key,
		reader,
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}

	return s.ObjectURL(key), nil
}

// PresignedPut issues a short-lived capability URL so the client can
// upload bytes straight to storage without routing them through the API.
func (s *MinIOStorage) PresignedPut(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedPutObject(ctx, s.bucket, key, expiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign put: %w", err)
	}
	return u.String(), nil
}

// ObjectURL builds the public URL for a stored object.
func (s *MinIOStorage) ObjectURL(key string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	u := url.URL{
		Scheme: scheme,
		Host:   s.client.EndpointURL().Host,
		Path:   fmt.Sprintf("/%s/%s", s.bucket, key),
	}
	return u.String()
}

// KeyFromURL recovers the object key from a public URL produced by
// ObjectURL. Returns false for URLs that don't point into our bucket.
func (s *MinIOStorage) KeyFromURL(fileURL string) (string, bool) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", false
	}
	prefix := "/" + s.bucket + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(u.Path, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}

// Delete removes a stored object. Used by the trash purge job.
func (s *MinIOStorage) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// HealthCheck verifies storage is reachable.
func (s *MinIOStorage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	_, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("minio unreachable: %w", err)
	}
	return nil
}
