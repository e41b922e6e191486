package objectstorage

import (
	"context"
	"io"
)

// UploadOptions carries optional headers for an object write.
type UploadOptions struct {
	// CacheControl is sent as the object's cache-control hint when non-empty.
	CacheControl string
}

// ObjectStorage defines the interface for bucket object operations.
type ObjectStorage interface {
	// Upload writes the object under key with the given content type.
	Upload(ctx context.Context, key, contentType string, r io.Reader, opts UploadOptions) error

	// Remove deletes the object under key.
	Remove(ctx context.Context, key string) error

	// PublicURL derives the unauthenticated URL for key without a round trip.
	PublicURL(key string) string
}
