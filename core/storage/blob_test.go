package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"citizen-collect/core/storage"
	"citizen-collect/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBlobStoreStore(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "records", "1_2_3_rand.jpg", mock.Anything, int64(4), mock.Anything).
		Return(minio.UploadInfo{Key: "1_2_3_rand.jpg", Size: 4}, nil)

	blobs := storage.NewBlobStore(client, "records")

	obj, err := blobs.Store(context.Background(), "1_2_3_rand.jpg", bytes.NewReader([]byte("data")), 4, "image/jpeg")
	assert.NoError(t, err)
	assert.Equal(t, "1_2_3_rand.jpg", obj.Key)
	assert.Equal(t, int64(4), obj.Size)
	assert.Equal(t, "image/jpeg", obj.ContentType)
	client.AssertExpectations(t)
}

func TestBlobStoreStoreFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "records", "k", mock.Anything, int64(1), mock.Anything).
		Return(minio.UploadInfo{}, errors.New("connection refused"))

	blobs := storage.NewBlobStore(client, "records")

	_, err := blobs.Store(context.Background(), "k", bytes.NewReader([]byte("x")), 1, "image/png")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "k")
}

func TestBlobStoreDelete(t *testing.T) {
	client := new(mocks.Client)
	client.On("RemoveObject", mock.Anything, "records", "stale.jpg", mock.Anything).Return(nil)

	blobs := storage.NewBlobStore(client, "records")

	assert.NoError(t, blobs.Delete(context.Background(), "stale.jpg"))
	client.AssertExpectations(t)
}

func TestBlobStoreOpen(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "records", "photo.jpg", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte("bytes"))), nil)

	blobs := storage.NewBlobStore(client, "records")

	rc, err := blobs.Open(context.Background(), "photo.jpg")
	assert.NoError(t, err)
	content, _ := io.ReadAll(rc)
	assert.Equal(t, "bytes", string(content))
}
