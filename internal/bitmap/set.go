package bitmap

import (
	"iter"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a set of shape indices.
// It wraps the official roaring implementation.
// The zero value is not usable; call New.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{
		rb: roaring.New(),
	}
}

// Of creates a set holding the given indices.
func Of(indices ...shape.Index) *Set {
	s := New()
	for _, i := range indices {
		s.Add(i)
	}
	return s
}

// Range creates a set holding every index in (lo, hi].
func Range(lo, hi shape.Index) *Set {
	s := New()
	if hi > lo && hi > shape.NoIndex {
		lo = max(lo, shape.NoIndex)
		s.rb.AddRange(uint64(lo)+1, uint64(hi)+1)
	}
	return s
}

// Add inserts i and reports whether it was absent.
// Invalid indices are ignored.
func (s *Set) Add(i shape.Index) bool {
	if !i.Valid() {
		return false
	}
	return s.rb.CheckedAdd(uint32(i))
}

// Remove deletes i and reports whether it was present.
func (s *Set) Remove(i shape.Index) bool {
	if !i.Valid() {
		return false
	}
	return s.rb.CheckedRemove(uint32(i))
}

// Contains checks if i is in the set.
func (s *Set) Contains(i shape.Index) bool {
	if !i.Valid() {
		return false
	}
	return s.rb.Contains(uint32(i))
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Len returns the number of indices in the set.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// All returns an iterator over the set in ascending order.
func (s *Set) All() iter.Seq[shape.Index] {
	return func(yield func(shape.Index) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(shape.Index(it.Next())) {
				return
			}
		}
	}
}

// Slice returns the indices in ascending order.
func (s *Set) Slice() []shape.Index {
	out := make([]shape.Index, 0, s.Len())
	for i := range s.All() {
		out = append(out, i)
	}
	return out
}

// Max returns the largest index, or shape.NoIndex for an empty set.
func (s *Set) Max() shape.Index {
	if s.rb.IsEmpty() {
		return shape.NoIndex
	}
	return shape.Index(s.rb.Maximum())
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{
		rb: s.rb.Clone(),
	}
}

// Or adds every index of other to s.
func (s *Set) Or(other *Set) {
	s.rb.Or(other.rb)
}

// AndNot removes every index of other from s.
func (s *Set) AndNot(other *Set) {
	s.rb.AndNot(other.rb)
}

// Clear removes all elements from the set.
func (s *Set) Clear() {
	s.rb.Clear()
}
