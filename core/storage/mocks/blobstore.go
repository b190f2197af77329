package mocks

import (
	"context"
	"io"

	"citizen-collect/core/storage"

	"github.com/stretchr/testify/mock"
)

// BlobStore is a mock implementation of storage.BlobStore
type BlobStore struct {
	mock.Mock
}

func (m *BlobStore) Store(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (storage.StoredObject, error) {
	args := m.Called(ctx, key, reader, size, contentType)
	return args.Get(0).(storage.StoredObject), args.Error(1)
}

func (m *BlobStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *BlobStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if rc, ok := args.Get(0).(io.ReadCloser); ok {
		return rc, args.Error(1)
	}
	return nil, args.Error(1)
}
