package mesh

import (
	"fmt"
	"iter"
	"time"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/internal/ancestor"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/internal/bitmap"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/internal/shapeindex"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
)

// State is the lifecycle state of a Mesh.
type State uint8

const (
	// StateEmpty means no root shape is set.
	StateEmpty State = iota
	// StateRooted means a root shape is indexed.
	StateRooted
)

func (s State) String() string {
	if s == StateRooted {
		return "rooted"
	}
	return "empty"
}

// Mesh is the submesh registry of one root shape.
type Mesh struct {
	root          shape.Shape
	index         *shapeindex.Table
	ancestors     *ancestor.Map
	submeshes     []*SubMesh // arena keyed by index; nil until first lookup
	maxShapeIndex shape.Index

	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty registry.
func New(opts ...Option) *Mesh {
	o := applyOptions(opts)
	tab := shapeindex.New()
	return &Mesh{
		index:     tab,
		ancestors: ancestor.New(tab),
		logger:    o.logger,
		metrics:   o.metricsCollector,
	}
}

// State returns the lifecycle state.
func (m *Mesh) State() State {
	if shape.IsNull(m.root) {
		return StateEmpty
	}
	return StateRooted
}

// RootShape returns the root shape, nil when empty.
func (m *Mesh) RootShape() shape.Shape {
	return m.root
}

// MaxShapeIndex returns the high-water mark of assigned indices as of the
// last build or compound synthesis.
func (m *Mesh) MaxShapeIndex() shape.Index {
	return m.maxShapeIndex
}

// SetRootShape replaces the root shape and rebuilds the index and the
// ancestor map. Passing nil clears the registry.
//
// Replacing a non-compound root with a different non-compound root fails
// with ErrInvalidState; clear first. Setting the current root again
// rebuilds from scratch, which is the recovery path after
// ErrKernelInconsistency. If the new root cannot be indexed the registry
// keeps its previous state.
func (m *Mesh) SetRootShape(s shape.Shape) error {
	if !shape.IsNull(m.root) && !shape.IsNull(s) &&
		m.root.Type() != shape.Compound && s.Type() != shape.Compound &&
		!shape.Equal(m.root, s) {
		return &ErrRootConflict{Current: m.root.Key(), Requested: s.Key()}
	}

	if shape.IsNull(s) {
		m.reset()
		return nil
	}

	start := time.Now()
	tab, amap, err := build(s)
	took := time.Since(start)
	m.metrics.RecordBuild(took, tab.Len(), err)
	m.logger.LogBuild(s, tab.Len(), took, err)
	if err != nil {
		return fmt.Errorf("set root shape: %w", err)
	}

	m.root = s
	m.index = tab
	m.ancestors = amap
	m.submeshes = nil
	m.maxShapeIndex = tab.Max()
	return nil
}

// build indexes root and everything below it in pre-order, then builds the
// ancestor map. Nothing is shared with the registry until it succeeds.
func build(root shape.Shape) (*shapeindex.Table, *ancestor.Map, error) {
	tab := shapeindex.New()
	all, err := ancestor.Traverse(root)
	if err != nil {
		return tab, nil, err
	}
	for _, s := range all {
		tab.Add(s)
	}
	amap := ancestor.New(tab)
	if err := amap.Build(root); err != nil {
		return tab, nil, err
	}
	return tab, amap, nil
}

func (m *Mesh) reset() {
	dropped := m.NumSubMeshes()
	m.root = nil
	m.submeshes = nil
	m.ancestors.Reset()
	m.index.Reset()
	m.maxShapeIndex = shape.NoIndex
	m.metrics.RecordReset()
	m.logger.LogReset(dropped)
}

// IndexOf returns the index of s, or shape.NoIndex.
func (m *Mesh) IndexOf(s shape.Shape) shape.Index {
	return m.index.IndexOf(s)
}

// ShapeOf returns the shape bound to i, or nil.
func (m *Mesh) ShapeOf(i shape.Index) shape.Shape {
	return m.index.ShapeOf(i)
}

// GetSubMesh returns the submesh of s, creating it on first lookup.
//
// A compound without an index is synthesized as a whole-shape compound
// submesh. Any other shape without an index yields nil: callers treat nil
// as "no submesh".
func (m *Mesh) GetSubMesh(s shape.Shape) *SubMesh {
	if shape.IsNull(s) || m.State() == StateEmpty {
		m.metrics.RecordLookup(false)
		return nil
	}

	i := m.index.IndexOf(s)
	if i == shape.NoIndex {
		if s.Type() != shape.Compound {
			m.metrics.RecordLookup(false)
			m.logger.LogMiss(s)
			return nil
		}
		ci, err := m.AddCompoundSubmesh(s, shape.AllTypes)
		if err != nil {
			m.metrics.RecordLookup(false)
			return nil
		}
		m.metrics.RecordLookup(true)
		return m.SubMeshAt(ci)
	}

	m.metrics.RecordLookup(true)
	if sm := m.SubMeshAt(i); sm != nil {
		return sm
	}
	return m.populate(i, s)
}

// SubMesh is GetSubMesh for callers that prefer an error over nil.
func (m *Mesh) SubMesh(s shape.Shape) (*SubMesh, error) {
	sm := m.GetSubMesh(s)
	if sm == nil {
		return nil, ErrNotIndexed
	}
	return sm, nil
}

// populate creates the submesh of an indexed shape. Grouping shapes get one
// child per immediate sub-shape.
func (m *Mesh) populate(i shape.Index, s shape.Shape) *SubMesh {
	sm := m.store(newSubMesh(i, s, shape.AllTypes))
	if s.Type().IsGrouping() {
		for _, c := range s.Children() {
			if child := m.GetSubMesh(c); child != nil {
				sm.AddChild(child.Index())
			}
		}
	}
	return sm
}

func (m *Mesh) store(sm *SubMesh) *SubMesh {
	i := int(sm.index)
	if i >= len(m.submeshes) {
		grown := make([]*SubMesh, i+1, max(i+1, 2*len(m.submeshes)))
		copy(grown, m.submeshes)
		m.submeshes = grown
	}
	m.submeshes[i] = sm
	return sm
}

// SubMeshAt returns the submesh with index i if it has been created.
func (m *Mesh) SubMeshAt(i shape.Index) *SubMesh {
	if i <= shape.NoIndex || int(i) >= len(m.submeshes) {
		return nil
	}
	return m.submeshes[i]
}

// SubMeshes iterates over the created submeshes in ascending index order.
func (m *Mesh) SubMeshes() iter.Seq[*SubMesh] {
	return func(yield func(*SubMesh) bool) {
		for _, sm := range m.submeshes {
			if sm == nil {
				continue
			}
			if !yield(sm) {
				return
			}
		}
	}
}

// NumSubMeshes returns the number of created submeshes.
func (m *Mesh) NumSubMeshes() int {
	n := 0
	for range m.SubMeshes() {
		n++
	}
	return n
}

// Ancestors returns the shapes containing s, nearest first.
func (m *Mesh) Ancestors(s shape.Shape) ([]shape.Shape, error) {
	i := m.index.IndexOf(s)
	if i == shape.NoIndex {
		return nil, ErrNotIndexed
	}
	list, err := m.ancestors.Of(i)
	if err != nil {
		return nil, err
	}
	out := make([]shape.Shape, 0, len(list))
	for _, a := range list {
		out = append(out, m.index.ShapeOf(a))
	}
	return out, nil
}

// ClearAncestors drops the cached ancestors of i and of every submesh
// reachable through child sets below it. They are rebuilt on next query.
func (m *Mesh) ClearAncestors(i shape.Index) {
	visited := bitmap.New()
	stack := []shape.Index{i}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visited.Add(cur) {
			continue
		}
		m.ancestors.Invalidate(cur)
		if sm := m.SubMeshAt(cur); sm != nil {
			stack = append(stack, sm.Children()...)
		}
	}
}

// Attach adds child to the child set of parent and clears the ancestors of
// the child chain, whose container relationships may have changed.
func (m *Mesh) Attach(parent, child shape.Index) error {
	p := m.SubMeshAt(parent)
	if p == nil || m.SubMeshAt(child) == nil {
		return ErrNotIndexed
	}
	if p.AddChild(child) {
		m.ClearAncestors(child)
	}
	return nil
}

// ElementCount returns the nodes and cells of sm and, for a complex
// submesh, of every submesh below it. Shared children count once.
func (m *Mesh) ElementCount(sm *SubMesh) (nodes, cells int) {
	if sm == nil {
		return 0, 0
	}
	visited := bitmap.New()
	var walk func(cur *SubMesh)
	walk = func(cur *SubMesh) {
		if !visited.Add(cur.index) {
			return
		}
		nodes += cur.elements.NumNodes()
		cells += cur.elements.NumCells()
		for _, c := range cur.Children() {
			if child := m.SubMeshAt(c); child != nil {
				walk(child)
			}
		}
	}
	walk(sm)
	return nodes, cells
}

// Clear drops the elements of every submesh. The registry stays rooted.
func (m *Mesh) Clear() {
	for sm := range m.SubMeshes() {
		sm.Clear()
	}
}

// CountBelow returns the nodes and cells stored on s and on every indexed
// sub-shape of s. Each submesh counts once.
func (m *Mesh) CountBelow(s shape.Shape) (nodes, cells int) {
	if shape.IsNull(s) {
		return 0, 0
	}
	visited := bitmap.New()
	for t := shape.Vertex; t <= s.Type(); t++ {
		for _, d := range s.Explore(t) {
			sm := m.SubMeshAt(m.index.IndexOf(d))
			if sm == nil || !visited.Add(sm.index) {
				continue
			}
			nodes += sm.elements.NumNodes()
			cells += sm.elements.NumCells()
		}
	}
	return nodes, cells
}
