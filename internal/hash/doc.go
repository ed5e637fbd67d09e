// Package hash computes the CRC32-Castagnoli checksums recorded for every
// exported element blob.
//
// Go's hash/crc32 uses SSE4.2 or the ARM CRC extension when available.
package hash
