package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"inventory/config"
	"inventory/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func TestBlobImageStore_PutOpenDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobImageStore(bucket, "/stock/images/")
	require.NoError(t, store.Put(ctx, "abc.png", "image/png", []byte("pixels")))

	reader, contentType, err := store.Open(ctx, "abc.png")
	require.NoError(t, err)
	defer reader.Close()
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(data))
	assert.Equal(t, "image/png", contentType)

	assert.Equal(t, "/stock/images/abc.png", store.URL("abc.png"))

	require.NoError(t, store.Delete(ctx, "abc.png"))
	_, _, err = store.Open(ctx, "abc.png")
	assert.ErrorIs(t, err, service.ErrImageNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "abc.png"), service.ErrImageNotFound)
}

func TestNewImageStore_FileBucket(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Storage: &config.StorageConfig{
		BucketURL:     "file://" + t.TempDir(),
		PublicBaseURL: "http://cdn.example.com",
	}}

	store, err := NewImageStore(Params{Lc: lc, Ctx: context.Background(), Config: cfg, Logger: slog.New(slog.DiscardHandler)})
	require.NoError(t, err)
	lc.RequireStart()
	defer lc.RequireStop()

	require.NoError(t, store.Put(context.Background(), "k.jpg", "image/jpeg", []byte{1, 2, 3}))
	assert.Equal(t, "http://cdn.example.com/k.jpg", store.URL("k.jpg"))
}

func TestNewImageStore_DefaultsToMemory(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	store, err := NewImageStore(Params{Lc: lc, Ctx: context.Background(), Config: &config.Config{}, Logger: slog.New(slog.DiscardHandler)})
	require.NoError(t, err)
	assert.NotNil(t, store)
	lc.RequireStart().RequireStop()
}
