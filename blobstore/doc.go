// Package blobstore stores exported submesh blobs.
//
// # Built-in Implementations
//
//   - MemoryStore: in-memory, for tests and scratch exports
//   - LocalStore: a directory on the local file system, read through mmap
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
