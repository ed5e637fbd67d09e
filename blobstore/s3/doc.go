// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("meshes/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
//	manifest, err := export.Write(ctx, store, reg)
//
// # Features
//
//   - Range reads for partial fetches
//   - CRC32C checksums on single-part uploads
//   - Multipart uploads for large blobs
//   - Configurable prefix for sharing a bucket between runs
package s3
