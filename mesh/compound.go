package mesh

import (
	"time"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/internal/ancestor"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/internal/bitmap"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
)

// AddCompoundSubmesh synthesizes the submesh of compound s and returns its
// index.
//
// With limit shape.AllTypes the submesh stands for s itself. Any other limit
// creates a group "sub-shapes of s up to limit", which owns an index of its
// own. Either way the children are every sub-shape explored from
// min(limit, Solid) down to Vertex, so a group up to Edge holds all edges
// and vertices of s.
//
// The call is idempotent per (s, limit). Sub-shapes of s seen for the first
// time are indexed and only their ancestors are computed. Indices, the
// group entry and the new ancestors are committed together: on error the
// registry is unchanged.
func (m *Mesh) AddCompoundSubmesh(s shape.Shape, limit shape.Type) (shape.Index, error) {
	start := time.Now()
	before := m.index.Max()

	i, err := m.addCompound(s, limit)

	fresh := 0
	if after := m.index.Max(); after > before {
		fresh = int(after - before)
	}
	children := 0
	if sm := m.SubMeshAt(i); sm != nil {
		children = sm.NumChildren()
	}
	m.metrics.RecordCompound(time.Since(start), fresh, err)
	m.logger.LogCompound(s, limit, i, children, fresh, err)
	return i, err
}

func (m *Mesh) addCompound(s shape.Shape, limit shape.Type) (shape.Index, error) {
	if m.State() == StateEmpty {
		return shape.NoIndex, ErrInvalidState
	}
	if shape.IsNull(s) || s.Type() != shape.Compound {
		return shape.NoIndex, ErrNotCompound
	}
	if limit == shape.Compound {
		limit = shape.AllTypes
	}
	if !limit.Valid() && limit != shape.AllTypes {
		return shape.NoIndex, ErrInvalidLimit
	}

	if i := m.groupOf(s, limit); i != shape.NoIndex && m.SubMeshAt(i) != nil {
		return i, nil
	}

	all, err := ancestor.Traverse(s)
	if err != nil {
		return shape.NoIndex, err
	}
	members, err := explored(s, limit)
	if err != nil {
		return shape.NoIndex, err
	}

	staged := m.index.Clone()
	oldMax := staged.Max()
	for _, d := range all {
		staged.Add(d)
	}
	staged.AddGroup(s, limit)
	patch, err := ancestor.Prepare(staged, s, bitmap.Range(oldMax, staged.Max()))
	if err != nil {
		return shape.NoIndex, err
	}

	for _, d := range all {
		m.index.Add(d)
	}
	gi, _ := m.index.AddGroup(s, limit)
	m.ancestors.Apply(patch)
	m.maxShapeIndex = m.index.Max()

	sm := m.store(newSubMesh(gi, s, limit))
	for _, d := range members {
		if child := m.GetSubMesh(d); child != nil {
			sm.AddChild(child.Index())
		}
	}
	return gi, nil
}

func (m *Mesh) groupOf(s shape.Shape, limit shape.Type) shape.Index {
	if limit == shape.AllTypes {
		return m.index.IndexOf(s)
	}
	return m.index.GroupOf(s, limit)
}

// explored returns the sub-shapes of s from min(limit, Solid) down to
// Vertex in that order.
func explored(s shape.Shape, limit shape.Type) ([]shape.Shape, error) {
	var out []shape.Shape
	for t := min(limit, shape.Solid); ; t-- {
		found, err := ancestor.Explore(s, t)
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
		if t == shape.Vertex {
			return out, nil
		}
	}
}
