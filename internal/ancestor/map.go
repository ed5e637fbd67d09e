package ancestor

import (
	"slices"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/internal/bitmap"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
)

// extension records a scope explored after the full build and the indices
// it was allowed to write.
type extension struct {
	scope shape.Shape
	fresh *bitmap.Set
}

// Map holds the ancestor lists of one registry.
// It is not safe for concurrent use.
type Map struct {
	idx        Indexer
	root       shape.Shape
	entries    map[shape.Index][]shape.Index
	extensions []extension
	stale      *bitmap.Set
}

// New creates an empty map resolving shapes through idx.
func New(idx Indexer) *Map {
	return &Map{
		idx:     idx,
		entries: make(map[shape.Index][]shape.Index),
		stale:   bitmap.New(),
	}
}

// Reset drops every entry and forgets the root.
func (m *Map) Reset() {
	m.root = nil
	m.entries = make(map[shape.Index][]shape.Index)
	m.extensions = nil
	m.stale.Clear()
}

// Build replaces the map with the ancestors of every shape below root.
// Every shape reachable from root must already be indexed. On error the
// map is left unchanged.
func (m *Map) Build(root shape.Shape) error {
	if shape.IsNull(root) {
		m.Reset()
		return nil
	}
	b := newBuilder(m.idx, nil)
	if err := b.run(root); err != nil {
		return err
	}

	m.root = root
	m.entries = b.entries
	m.extensions = nil
	m.stale.Clear()
	return nil
}

// Patch holds ancestors computed by Prepare that have not been written to a
// map yet.
type Patch struct {
	ext     extension
	entries map[shape.Index][]shape.Index
}

// Prepare computes the ancestors within scope for the indices in fresh,
// resolving shapes through idx. Nothing is written; pass the result to
// Apply once the indices in idx are committed. A null scope or an empty
// fresh set yields a nil patch.
func Prepare(idx Indexer, scope shape.Shape, fresh *bitmap.Set) (*Patch, error) {
	if shape.IsNull(scope) || fresh.IsEmpty() {
		return nil, nil
	}
	fresh = fresh.Clone()
	b := newBuilder(idx, fresh.Contains)
	if err := b.run(scope); err != nil {
		return nil, err
	}
	return &Patch{ext: extension{scope: scope, fresh: fresh}, entries: b.entries}, nil
}

// Apply writes the entries of p. Entries of other shapes are left
// untouched. A nil patch is a no-op.
func (m *Map) Apply(p *Patch) {
	if p == nil {
		return
	}
	for i, list := range p.entries {
		m.entries[i] = list
	}
	for i := range p.ext.fresh.All() {
		m.stale.Remove(i)
	}
	m.extensions = append(m.extensions, p.ext)
}

// Extend computes ancestors within scope and writes them only for the
// indices in fresh. On error the map is left unchanged.
func (m *Map) Extend(scope shape.Shape, fresh *bitmap.Set) error {
	p, err := Prepare(m.idx, scope, fresh)
	if err != nil {
		return err
	}
	m.Apply(p)
	return nil
}

// Of returns the ancestors of i, nearest first. An invalidated entry is
// rebuilt before it is returned. The result is a copy.
func (m *Map) Of(i shape.Index) ([]shape.Index, error) {
	if m.stale.Contains(i) {
		if err := m.rebuild(i); err != nil {
			return nil, err
		}
	}
	return slices.Clone(m.entries[i]), nil
}

// Invalidate drops the cached ancestors of i; the next Of rebuilds them.
func (m *Map) Invalidate(i shape.Index) {
	if !i.Valid() {
		return
	}
	delete(m.entries, i)
	m.stale.Add(i)
}

// IsStale reports whether i awaits a rebuild.
func (m *Map) IsStale(i shape.Index) bool {
	return m.stale.Contains(i)
}

// Len returns the number of shapes with at least one ancestor.
func (m *Map) Len() int {
	return len(m.entries)
}

// Root returns the shape of the last full build.
func (m *Map) Root() shape.Shape {
	return m.root
}

func (m *Map) rebuild(i shape.Index) error {
	scope := m.root
	for k := len(m.extensions) - 1; k >= 0; k-- {
		if m.extensions[k].fresh.Contains(i) {
			scope = m.extensions[k].scope
			break
		}
	}

	if !shape.IsNull(scope) {
		b := newBuilder(m.idx, func(d shape.Index) bool { return d == i })
		if err := b.run(scope); err != nil {
			return err
		}
		if list, ok := b.entries[i]; ok {
			m.entries[i] = list
		}
	}
	m.stale.Remove(i)
	return nil
}
