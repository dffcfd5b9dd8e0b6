// Package storage provides read access to documentation kept in object storage.
//
// It wraps the MinIO Go client behind a small Client interface so that XML
// documentation published to an S3 bucket (or a self-hosted MinIO instance) can
// be audited the same way as a local checkout.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the documentation bucket.
//   - GetObject: Retrieves an XML file as a stream.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
