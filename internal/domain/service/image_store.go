package service

import (
	"context"
	"io"

	"crimson/internal/errors"
)

// ErrImageStoreDisabled is returned by Upload when no object store is configured.
var ErrImageStoreDisabled = errors.New("image store is not configured")

// ImageUpload is an image file received from a client.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ImageStore keeps listing and avatar images in object storage.
type ImageStore interface {
	// Upload stores the image under key and returns its public URL.
	Upload(ctx context.Context, key string, image *ImageUpload) (string, error)

	// DeleteByURL removes the object behind a public URL. URLs outside the
	// store are ignored.
	DeleteByURL(ctx context.Context, publicURL string) error
}
