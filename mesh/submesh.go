package mesh

import (
	"github.com/PawelekPro/MeshGeneratingTool-sub001/element"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/internal/bitmap"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
)

// SubMesh is the discretization container bound to one indexed shape.
// SubMeshes are created by Mesh only.
type SubMesh struct {
	index    shape.Index
	shape    shape.Shape
	limit    shape.Type
	children *bitmap.Set
	elements element.Set
}

func newSubMesh(i shape.Index, s shape.Shape, limit shape.Type) *SubMesh {
	return &SubMesh{
		index:    i,
		shape:    s,
		limit:    limit,
		children: bitmap.New(),
	}
}

// Index returns the persistent index of the submesh.
func (sm *SubMesh) Index() shape.Index { return sm.index }

// Shape returns the shape the submesh is bound to.
func (sm *SubMesh) Shape() shape.Shape { return sm.shape }

// Limit returns the sub-shape limit of a synthesized group, or
// shape.AllTypes for submeshes of ordinary shapes.
func (sm *SubMesh) Limit() shape.Type { return sm.limit }

// AddChild adds a child submesh by index. It is a no-op if the child is
// already present, invalid, or the submesh itself.
func (sm *SubMesh) AddChild(child shape.Index) bool {
	if child == sm.index {
		return false
	}
	return sm.children.Add(child)
}

// HasChild reports whether child is in the child set.
func (sm *SubMesh) HasChild(child shape.Index) bool {
	return sm.children.Contains(child)
}

// Children returns the child indices in ascending order.
func (sm *SubMesh) Children() []shape.Index {
	return sm.children.Slice()
}

// NumChildren returns the size of the child set.
func (sm *SubMesh) NumChildren() int {
	return sm.children.Len()
}

// IsComplex reports whether the submesh has at least one child.
func (sm *SubMesh) IsComplex() bool {
	return !sm.children.IsEmpty()
}

// Elements returns the element storage of this submesh.
func (sm *SubMesh) Elements() *element.Set {
	return &sm.elements
}

// Clear drops the elements. Children are kept.
func (sm *SubMesh) Clear() {
	sm.elements.Reset()
}
