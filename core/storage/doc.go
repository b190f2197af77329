// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the collection server needs: uploading record images, streaming
// them back, and deleting the ones a resubmission dropped. The abstraction
// supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # BlobStore
//
// BlobStore is the bucket-scoped contract the record reconciler consumes:
//
//	Store(ctx, key, reader, size, contentType) -> StoredObject
//	Delete(ctx, key)
//
// Store is expected to be called at most once per key; keys are synthesized
// by the reconciler and carry a random component. Delete is best-effort from
// the caller's point of view: the database row is the source of truth and an
// orphaned blob is tolerated.
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	blobs := storage.NewBlobStore(client, cfg.Bucket)
//	obj, err := blobs.Store(ctx, key, file, size, "image/jpeg")
package storage
