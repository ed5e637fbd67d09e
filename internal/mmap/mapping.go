package mmap

import (
	"io"
	"math"
	"os"
	"sync/atomic"
)

// Mapping is a read-only view of one blob file. Reads may run concurrently;
// Close must not race with them.
type Mapping struct {
	data   []byte
	unmap  func([]byte) error
	closed atomic.Bool
}

// Open maps the file at path and passes hint to the kernel. An empty file
// yields a Mapping without data. A rejected hint is not an error.
func Open(path string, hint AccessPattern) (*Mapping, error) {
	data, unmap, err := mapFile(path)
	if err != nil {
		return nil, err
	}
	if hint != AccessDefault && len(data) > 0 {
		_ = osAdvise(data, hint)
	}
	return &Mapping{data: data, unmap: unmap}, nil
}

func mapFile(path string) ([]byte, func([]byte) error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	switch size := fi.Size(); {
	case size == 0:
		return nil, nil, nil
	case size < 0 || size > math.MaxInt:
		return nil, nil, ErrInvalidSize
	default:
		return osMap(f, int(size))
	}
}

func (m *Mapping) view() ([]byte, error) {
	if m.closed.Load() {
		return nil, ErrClosed
	}
	return m.data, nil
}

// Section returns at most n bytes starting at off, without copying. An
// offset at or past the end gives an empty section. The slice is only valid
// until Close.
func (m *Mapping) Section(off, n int64) ([]byte, error) {
	data, err := m.view()
	if err != nil {
		return nil, err
	}
	if off < 0 || n < 0 {
		return nil, ErrInvalidOffset
	}
	if off >= int64(len(data)) {
		return data[:0:0], nil
	}
	end := off + min(n, int64(len(data))-off)
	return data[off:end:end], nil
}

// ReadAt implements io.ReaderAt over the mapped block.
func (m *Mapping) ReadAt(p []byte, off int64) (int, error) {
	sec, err := m.Section(off, int64(len(p)))
	if err != nil {
		return 0, err
	}
	n := copy(p, sec)
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Bytes returns the whole block, nil once closed.
func (m *Mapping) Bytes() []byte {
	data, _ := m.view()
	return data
}

// Len returns the block length in bytes.
func (m *Mapping) Len() int {
	return len(m.data)
}

// Advise replaces the access hint given to Open.
func (m *Mapping) Advise(hint AccessPattern) error {
	data, err := m.view()
	if err != nil || len(data) == 0 {
		return err
	}
	return osAdvise(data, hint)
}

// Close unmaps the block. Later calls are no-ops.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) || m.data == nil {
		return nil
	}
	return m.unmap(m.data)
}
