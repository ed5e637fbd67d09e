package main

import (
	"context"
	"fmt"
	"os"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/cobra"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/blobstore"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/blobstore/minio"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/blobstore/s3"
)

// storeFlags select the blob store an export goes to.
type storeFlags struct {
	kind     string
	dir      string
	bucket   string
	prefix   string
	region   string
	endpoint string
	secure   bool
}

func (f *storeFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.kind, "store", "local", "Blob store: local|memory|s3|minio")
	fl.StringVar(&f.dir, "dir", "submesh-out", "Directory of the local store")
	fl.StringVar(&f.bucket, "bucket", "", "Bucket for s3 and minio")
	fl.StringVar(&f.prefix, "prefix", "", "Key prefix inside the store")
	fl.StringVar(&f.region, "region", "", "AWS region for s3")
	fl.StringVar(&f.endpoint, "endpoint", "", "Endpoint for minio, or a custom s3 endpoint")
	fl.BoolVar(&f.secure, "secure", true, "Use TLS for minio")
}

// open builds the store. MinIO credentials come from MINIO_ACCESS_KEY and
// MINIO_SECRET_KEY.
func (f *storeFlags) open(ctx context.Context) (blobstore.BlobStore, error) {
	switch f.kind {
	case "local":
		return blobstore.NewLocalStore(f.dir), nil
	case "memory":
		return blobstore.NewMemoryStore(), nil
	case "s3":
		if f.bucket == "" {
			return nil, fmt.Errorf("--bucket is required for s3")
		}
		return s3.New(ctx, f.bucket,
			s3.WithRegion(f.region),
			s3.WithEndpoint(f.endpoint),
			s3.WithPrefix(f.prefix),
		)
	case "minio":
		if f.bucket == "" || f.endpoint == "" {
			return nil, fmt.Errorf("--bucket and --endpoint are required for minio")
		}
		client, err := miniogo.New(f.endpoint, &miniogo.Options{
			Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
			Secure: f.secure,
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		return minio.NewStore(client, f.bucket, f.prefix), nil
	}
	return nil, fmt.Errorf("unknown store %q", f.kind)
}

// exportPrefix is the prefix export options must add. Object stores apply
// the prefix themselves.
func (f *storeFlags) exportPrefix() string {
	if f.kind == "local" || f.kind == "memory" {
		return f.prefix
	}
	return ""
}
