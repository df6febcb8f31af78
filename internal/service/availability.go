package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ArchiveChecker reports whether real imagery exists for a tile and date in
// an external archive. Implementations must fail open: an unreachable or
// misconfigured archive reads as unavailable, never as an error.
type ArchiveChecker interface {
	Available(ctx context.Context, tileCode, date string) bool
}

// MinioArchiveChecker probes an S3-compatible imagery archive with a cheap
// object stat. The simulation core never depends on its answer.
type MinioArchiveChecker struct {
	client  *minio.Client
	bucket  string
	timeout time.Duration
}

// NewMinioArchiveChecker connects to the archive endpoint. Construction only
// validates the endpoint shape; the first real lookup happens per request.
func NewMinioArchiveChecker(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioArchiveChecker, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create archive client: %w", err)
	}

	return &MinioArchiveChecker{
		client:  client,
		bucket:  bucket,
		timeout: 3 * time.Second,
	}, nil
}

// Available stats {tile}/{date}.tif in the archive bucket.
func (c *MinioArchiveChecker) Available(ctx context.Context, tileCode, date string) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	object := fmt.Sprintf("%s/%s.tif", tileCode, date)
	if _, err := c.client.StatObject(ctx, c.bucket, object, minio.StatObjectOptions{}); err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code != "NoSuchKey" && resp.Code != "NoSuchBucket" {
			log.Printf("archive check failed for %s: %v", object, err)
		}
		return false
	}
	return true
}
