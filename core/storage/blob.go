package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// StoredObject describes a blob after a successful store.
type StoredObject struct {
	// Key is the object key inside the bucket.
	Key string
	// Size is the number of bytes written.
	Size int64
	// ContentType is the MIME type the object was stored with.
	ContentType string
}

// BlobStore is the bucket-scoped store/delete contract consumed by the
// record reconciler.
type BlobStore interface {
	// Store uploads the content under key and returns the stored object.
	Store(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (StoredObject, error)
	// Delete removes the object with the given key.
	Delete(ctx context.Context, key string) error
	// Open streams the object with the given key.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

type blobStore struct {
	client Client
	bucket string
}

// NewBlobStore returns a BlobStore backed by the given storage client and bucket.
func NewBlobStore(client Client, bucket string) BlobStore {
	return &blobStore{client: client, bucket: bucket}
}

func (b *blobStore) Store(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (StoredObject, error) {
	opts := minio.PutObjectOptions{ContentType: contentType}
	info, err := b.client.PutObject(ctx, b.bucket, key, reader, size, opts)
	if err != nil {
		return StoredObject{}, fmt.Errorf("failed to store object %q: %w", key, err)
	}
	return StoredObject{
		Key:         info.Key,
		Size:        info.Size,
		ContentType: contentType,
	}, nil
}

func (b *blobStore) Delete(ctx context.Context, key string) error {
	if err := b.client.RemoveObject(ctx, b.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %q: %w", key, err)
	}
	return nil
}

func (b *blobStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	rc, err := b.client.GetObject(ctx, b.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open object %q: %w", key, err)
	}
	return rc, nil
}
