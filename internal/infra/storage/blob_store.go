// Package storage implements document persistence on top of gocloud.dev blob buckets.
package storage

import (
	"context"
	"io"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	"printdesk/config"
	"printdesk/internal/domain/service"
	"printdesk/internal/errors"
)

const defaultUploadDir = "uploads"

// blobStore stores order documents in a gocloud.dev bucket. The local
// filesystem driver backs it in production, but nothing here depends on that.
type blobStore struct {
	bucket *blob.Bucket
}

// NewBlobStore opens the file-backed bucket for order documents, creating the
// directory if it does not exist yet.
func NewBlobStore(cfg *config.Config) (service.DocumentStore, error) {
	dir := defaultUploadDir
	if cfg.Upload != nil && cfg.Upload.Dir != "" {
		dir = cfg.Upload.Dir
	}

	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open document bucket")
	}

	return &blobStore{bucket: bucket}, nil
}

// Save streams the document content into the bucket under the given key.
func (s *blobStore) Save(ctx context.Context, key string, mediaType string, content io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: mediaType,
	})
	if err != nil {
		return errors.Wrap(err, "failed to open document writer")
	}

	if _, err := io.Copy(w, content); err != nil {
		// Closing after a failed copy aborts the write.
		_ = w.Close()
		return errors.Wrap(err, "failed to write document content")
	}

	if err := w.Close(); err != nil {
		return errors.Wrap(err, "failed to finalize document write")
	}

	return nil
}

// Open returns a reader over a stored document. The caller owns the close.
func (s *blobStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open document reader")
	}
	return r, nil
}

// Delete removes a stored document.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete document")
	}
	return nil
}
