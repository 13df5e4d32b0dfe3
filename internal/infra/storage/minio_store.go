// Package storage keeps uploaded images in an S3 compatible object store.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"crimson/internal/domain/service"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// objectClient is the subset of *minio.Client the store uses.
type objectClient interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

type minioImageStore struct {
	client  objectClient
	bucket  string
	baseURL string
	logger  *slog.Logger
}

func newMinioImageStore(client objectClient, bucket, baseURL string, logger *slog.Logger) *minioImageStore {
	return &minioImageStore{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

func (s *minioImageStore) Upload(ctx context.Context, key string, image *service.ImageUpload) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, image.Body, image.Size, minio.PutObjectOptions{
		ContentType: image.ContentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to put object %s", key)
	}

	s.logger.Debug("Image uploaded",
		slog.String("bucket", s.bucket),
		slog.String("key", key),
		slog.Int64("size", image.Size),
	)

	return s.baseURL + "/" + key, nil
}

func (s *minioImageStore) DeleteByURL(ctx context.Context, publicURL string) error {
	key, ok := strings.CutPrefix(publicURL, s.baseURL+"/")
	if !ok || key == "" {
		return nil
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrapf(err, "failed to remove object %s", key)
	}

	return nil
}

// disabledImageStore is used when no object store is configured.
type disabledImageStore struct{}

func (disabledImageStore) Upload(context.Context, string, *service.ImageUpload) (string, error) {
	return "", service.ErrImageStoreDisabled
}

func (disabledImageStore) DeleteByURL(context.Context, string) error { return nil }
