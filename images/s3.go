// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package images

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/caiosouza15/seufirmino-awards/cliparse"
)

// S3Bucket stores images in an S3-compatible bucket.
type S3Bucket struct {
	client *minio.Client
	bucket string
}

func NewS3Bucket(ctx context.Context, cfg cliparse.S3Config) (*S3Bucket, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		slog.Info("image bucket created", "bucket", cfg.Bucket)
	}

	return &S3Bucket{client: client, bucket: cfg.Bucket}, nil
}

func (b *S3Bucket) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	_, err := b.client.PutObject(ctx, b.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return b.client.EndpointURL().String() + "/" + b.bucket + "/" + name, nil
}
