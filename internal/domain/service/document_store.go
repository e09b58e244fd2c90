package service

import (
	"context"
	"io"
)

// DocumentStore abstracts where uploaded order documents live. The default
// implementation is a local-directory blob bucket; the interface keeps the
// use cases unaware of that.
type DocumentStore interface {
	// Save streams the document content to storage under the given key,
	// recording its media type. The key must not already exist.
	Save(ctx context.Context, key, mediaType string, content io.Reader) error

	// Open returns a reader over the stored document content.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a stored document. Used only for best-effort cleanup
	// when order creation fails after the upload was written.
	Delete(ctx context.Context, key string) error
}
