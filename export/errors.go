package export

import "errors"

var (
	// ErrChecksum is returned when a blob does not match its manifest
	// checksum.
	ErrChecksum = errors.New("export: checksum mismatch")
	// ErrUnknownCodec is returned when the manifest names a codec this
	// build does not know.
	ErrUnknownCodec = errors.New("export: unknown codec")
	// ErrVersion is returned for manifests written by a newer format.
	ErrVersion = errors.New("export: unsupported manifest version")
	// ErrMismatch is returned by Restore when an index is bound to a shape
	// of another type than the manifest records.
	ErrMismatch = errors.New("export: registry does not match manifest")
)
