// Package export writes the element sets of a registry to a blob store and
// reads them back.
//
// Every non-empty submesh becomes one blob named submesh-<index>.bin: the
// element set encoded with a codec, then block-compressed. A manifest.json
// written last lists every created submesh with its shape type, child set,
// blob name and CRC32C, so a reader can verify each blob and rebuild the
// child hierarchy.
//
//	store := blobstore.NewLocalStore("out")
//	m, err := export.Write(ctx, store, reg,
//	    export.WithCompression(compress.Zstd),
//	    export.WithConcurrency(8),
//	)
//
//	m, sets, err := export.Read(ctx, store)
//	err = export.Restore(reg, m, sets)
//
// The registry must not be modified while Write runs.
package export
