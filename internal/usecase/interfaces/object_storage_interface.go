package interfaces

import (
	"context"
	"io"
)

// IObjectStorage abstracts the bucket holding service photos and signature
// images. Keys are opaque ids; URL derives the public view URL for a key
// without a round trip.

type IObjectStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}
