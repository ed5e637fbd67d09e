// Package compress frames element blocks with an optional LZ4 or Zstandard
// compression step.
//
// Block layout, little endian:
//
//	[kind uint8][raw size uint32][stored size uint32][payload]
//
// A stored size of 0 means the payload is the raw bytes; Encode falls back
// to that when compression saves less than 10%.
package compress
