package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"crimson/config"
	"crimson/internal/domain/service"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectClient struct {
	objects map[string][]byte
	types   map[string]string
	putErr  error
}

func newFakeObjectClient() *fakeObjectClient {
	return &fakeObjectClient{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeObjectClient) PutObject(_ context.Context, bucket, key string, reader io.Reader, _ int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.objects[bucket+"/"+key] = data
	f.types[bucket+"/"+key] = opts.ContentType

	return minio.UploadInfo{Bucket: bucket, Key: key, Size: int64(len(data))}, nil
}

func (f *fakeObjectClient) RemoveObject(_ context.Context, bucket, key string, _ minio.RemoveObjectOptions) error {
	delete(f.objects, bucket+"/"+key)

	return nil
}

func newTestStore(client objectClient) *minioImageStore {
	return newMinioImageStore(client, "product-images", "https://cdn.example.com/product-images/", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMinioImageStore_UploadAndDelete(t *testing.T) {
	client := newFakeObjectClient()
	store := newTestStore(client)
	ctx := context.Background()

	url, err := store.Upload(ctx, "seller-1/1700000000000.png", &service.ImageUpload{
		Filename:    "cover.png",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("\x89PNG"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/product-images/seller-1/1700000000000.png", url)
	assert.Equal(t, []byte("\x89PNG"), client.objects["product-images/seller-1/1700000000000.png"])
	assert.Equal(t, "image/png", client.types["product-images/seller-1/1700000000000.png"])

	require.NoError(t, store.DeleteByURL(ctx, url))
	assert.Empty(t, client.objects)
}

func TestMinioImageStore_DeleteForeignURLIgnored(t *testing.T) {
	client := newFakeObjectClient()
	client.objects["product-images/keep.png"] = []byte("x")
	store := newTestStore(client)

	require.NoError(t, store.DeleteByURL(context.Background(), "https://elsewhere.example.com/keep.png"))
	require.NoError(t, store.DeleteByURL(context.Background(), "https://cdn.example.com/product-images/"))
	assert.Len(t, client.objects, 1)
}

func TestMinioImageStore_UploadError(t *testing.T) {
	client := newFakeObjectClient()
	client.putErr = errors.New("connection refused")
	store := newTestStore(client)

	_, err := store.Upload(context.Background(), "k.png", &service.ImageUpload{Body: strings.NewReader("")})
	assert.ErrorContains(t, err, "connection refused")
}

func TestDisabledImageStore(t *testing.T) {
	store := disabledImageStore{}

	_, err := store.Upload(context.Background(), "k.png", &service.ImageUpload{})
	assert.ErrorIs(t, err, service.ErrImageStoreDisabled)
	assert.NoError(t, store.DeleteByURL(context.Background(), "https://cdn.example.com/x.png"))
}

func TestPublicBaseURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/imgs", publicBaseURL(&config.ObjectStorageConfig{
		PublicBaseURL: "https://cdn.example.com/imgs",
	}))
	assert.Equal(t, "http://localhost:9000/product-images", publicBaseURL(&config.ObjectStorageConfig{
		Endpoint: "localhost:9000",
		Bucket:   "product-images",
	}))
	assert.Equal(t, "https://s3.example.com/b", publicBaseURL(&config.ObjectStorageConfig{
		Endpoint: "s3.example.com",
		Bucket:   "b",
		UseSSL:   true,
	}))
}
