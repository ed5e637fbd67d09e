// Package mmap maps blob files read-only into memory.
//
// LocalStore hands out blobs backed by a Mapping so that exported element
// blocks are decoded straight from the page cache.
//
//	m, err := mmap.Open(path, mmap.AccessSequential)
//	if err != nil { ... }
//	defer m.Close()
//	header, err := m.Section(0, 16)
//
// Unix uses mmap(2) and madvise(2). Windows uses CreateFileMapping and
// MapViewOfFile; Advise is a no-op there.
//
// Bytes must not be used after Close.
package mmap
