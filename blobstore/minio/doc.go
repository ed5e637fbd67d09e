// Package minio provides a BlobStore on the MinIO client.
//
// Works with MinIO and other S3-compatible services without pulling in the
// AWS SDK.
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "meshes", "run-42/")
//	manifest, err := export.Write(ctx, store, reg)
//
// Every object carries its CRC32C in the X-Amz-Meta-Crc32c header.
package minio
