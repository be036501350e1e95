package service

import (
	"context"
	"errors"
	"io"
)

// ErrImageNotFound is returned when no image exists under a key.
var ErrImageNotFound = errors.New("image not found")

// ImageStore keeps uploaded stock images.
type ImageStore interface {
	// Put stores data under key.
	Put(ctx context.Context, key, contentType string, data []byte) error

	// Open returns a reader for the image and its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	Delete(ctx context.Context, key string) error

	// URL returns the public reference stored on the stock.
	URL(key string) string
}
