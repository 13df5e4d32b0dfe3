package storage

import (
	"context"
	"log/slog"
	"strings"

	"crimson/config"
	"crimson/internal/domain/lifecycle"
	"crimson/internal/domain/service"
	"crimson/internal/errors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/fx"
)

// Params holds dependencies for ImageStore, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore connects to the object store and ensures the bucket exists on start.
func NewImageStore(params Params) (service.ImageStore, error) {
	cfg := params.Config.ObjectStorage
	if cfg == nil || cfg.Endpoint == "" {
		params.Logger.Info("Object storage not configured, image uploads disabled")

		return disabledImageStore{}, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to init minio client")
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.StartupTimeout)
			defer cancel()

			return ensureBucket(ctx, client, cfg.Bucket)
		},
	})

	return newMinioImageStore(client, cfg.Bucket, publicBaseURL(cfg), params.Logger), nil
}

func ensureBucket(ctx context.Context, client *minio.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return errors.Wrap(err, "failed to check bucket")
	}
	if exists {
		return nil
	}

	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return errors.Wrap(err, "failed to create bucket")
	}

	return nil
}

// publicBaseURL falls back to path-style addressing on the endpoint.
func publicBaseURL(cfg *config.ObjectStorageConfig) string {
	if cfg.PublicBaseURL != "" {
		return cfg.PublicBaseURL
	}

	scheme := "http://"
	if cfg.UseSSL {
		scheme = "https://"
	}

	return scheme + strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewImageStore),
)
