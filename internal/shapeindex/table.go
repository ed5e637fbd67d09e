package shapeindex

import (
	"maps"
	"slices"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
)

type groupKey struct {
	key   shape.Key
	limit shape.Type
}

type entry struct {
	shape shape.Shape
	limit shape.Type
}

// Table is a bidirectional shape <-> index map.
// It is not safe for concurrent use.
type Table struct {
	keys    map[shape.Key]shape.Index
	groups  map[groupKey]shape.Index
	entries []entry // entries[0] is the null sentinel
}

// New creates an empty table.
func New() *Table {
	t := &Table{}
	t.Reset()
	return t
}

// Reset forgets every assignment. Numbering restarts at 1.
func (t *Table) Reset() {
	t.keys = make(map[shape.Key]shape.Index)
	t.groups = make(map[groupKey]shape.Index)
	t.entries = append(t.entries[:0], entry{limit: shape.AllTypes})
}

// Add returns the index of s, assigning the next unused one if s is new.
// The null shape yields shape.NoIndex.
func (t *Table) Add(s shape.Shape) shape.Index {
	if shape.IsNull(s) {
		return shape.NoIndex
	}
	if i, ok := t.keys[s.Key()]; ok {
		return i
	}
	i := t.push(s, shape.AllTypes)
	t.keys[s.Key()] = i
	return i
}

// AddGroup returns the index of the group "sub-shapes of s up to limit",
// assigning a new one if needed. A limit of shape.AllTypes is the shape
// itself and behaves like Add. The second result reports a new assignment.
func (t *Table) AddGroup(s shape.Shape, limit shape.Type) (shape.Index, bool) {
	if shape.IsNull(s) {
		return shape.NoIndex, false
	}
	if limit == shape.AllTypes {
		before := t.Max()
		i := t.Add(s)
		return i, i > before
	}
	gk := groupKey{key: s.Key(), limit: limit}
	if i, ok := t.groups[gk]; ok {
		return i, false
	}
	i := t.push(s, limit)
	t.groups[gk] = i
	return i, true
}

// Clone returns an independent copy. Adding to the copy assigns the same
// indices the original would.
func (t *Table) Clone() *Table {
	c := &Table{
		keys:    make(map[shape.Key]shape.Index, len(t.keys)),
		groups:  make(map[groupKey]shape.Index, len(t.groups)),
		entries: slices.Clone(t.entries),
	}
	maps.Copy(c.keys, t.keys)
	maps.Copy(c.groups, t.groups)
	return c
}

func (t *Table) push(s shape.Shape, limit shape.Type) shape.Index {
	t.entries = append(t.entries, entry{shape: s, limit: limit})
	return shape.Index(len(t.entries) - 1)
}

// IndexOf returns the index of s or shape.NoIndex. It never assigns.
func (t *Table) IndexOf(s shape.Shape) shape.Index {
	if shape.IsNull(s) {
		return shape.NoIndex
	}
	return t.keys[s.Key()]
}

// GroupOf returns the index of a group entry or shape.NoIndex.
func (t *Table) GroupOf(s shape.Shape, limit shape.Type) shape.Index {
	if limit == shape.AllTypes {
		return t.IndexOf(s)
	}
	if shape.IsNull(s) {
		return shape.NoIndex
	}
	return t.groups[groupKey{key: s.Key(), limit: limit}]
}

// Contains reports whether s has an index.
func (t *Table) Contains(s shape.Shape) bool {
	return t.IndexOf(s) != shape.NoIndex
}

// ShapeOf returns the shape bound to i, or nil for 0 and unassigned indices.
func (t *Table) ShapeOf(i shape.Index) shape.Shape {
	if !t.Assigned(i) {
		return nil
	}
	return t.entries[i].shape
}

// LimitOf returns the group limit of i: shape.AllTypes for ordinary shapes.
func (t *Table) LimitOf(i shape.Index) shape.Type {
	if !t.Assigned(i) {
		return shape.AllTypes
	}
	return t.entries[i].limit
}

// Assigned reports whether i has been handed out.
func (t *Table) Assigned(i shape.Index) bool {
	return i > shape.NoIndex && int(i) < len(t.entries)
}

// Max returns the highest assigned index, 0 for an empty table.
func (t *Table) Max() shape.Index {
	return shape.Index(len(t.entries) - 1)
}

// Len returns the number of assigned indices.
func (t *Table) Len() int {
	return len(t.entries) - 1
}
