// Package storage keeps uploaded stock images in a gocloud.dev blob bucket.
package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"

	"inventory/config"
	"inventory/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobImageStore wraps an open bucket.
func NewBlobImageStore(bucket *blob.Bucket, publicBaseURL string) service.ImageStore {
	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *blobImageStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	err := s.bucket.Upload(ctx, key, bytes.NewReader(data), &blob.WriterOptions{ContentType: contentType})

	return errors.Wrapf(err, "failed to write image %s", key)
}

func (s *blobImageStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrImageNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open image %s", key)
	}

	return reader, reader.ContentType(), nil
}

func (s *blobImageStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return service.ErrImageNotFound
		}

		return errors.Wrapf(err, "failed to delete image %s", key)
	}

	return nil
}

func (s *blobImageStore) URL(key string) string {
	return s.publicBaseURL + "/" + key
}

// Params holds dependencies for NewImageStore, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore opens the bucket named by storage.bucketUrl and closes it on shutdown.
func NewImageStore(params Params) (service.ImageStore, error) {
	bucketURL, publicBaseURL := defaultBucketURL, ""
	if cfg := params.Config.Storage; cfg != nil {
		if cfg.BucketURL != "" {
			bucketURL = cfg.BucketURL
		}
		publicBaseURL = cfg.PublicBaseURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open image bucket %s", bucketURL)
	}
	params.Logger.Info("Image bucket opened", slog.String("url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobImageStore(bucket, publicBaseURL), nil
}
