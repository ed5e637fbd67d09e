package ancestor

import (
	"fmt"
	"slices"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
)

// Indexer resolves shapes to indices and back.
type Indexer interface {
	IndexOf(s shape.Shape) shape.Index
	ShapeOf(i shape.Index) shape.Shape
}

// builder accumulates ancestor lists into a scratch table.
type builder struct {
	idx     Indexer
	keep    func(shape.Index) bool
	entries map[shape.Index][]shape.Index
}

func newBuilder(idx Indexer, keep func(shape.Index) bool) *builder {
	return &builder{
		idx:     idx,
		keep:    keep,
		entries: make(map[shape.Index][]shape.Index),
	}
}

func (b *builder) indexOf(s shape.Shape) (shape.Index, error) {
	i := b.idx.IndexOf(s)
	if i == shape.NoIndex {
		return shape.NoIndex, fmt.Errorf("%w: %s %d", errNotIndexed, s.Type(), s.Key())
	}
	return i, nil
}

func (b *builder) typeOf(i shape.Index) shape.Type {
	if s := b.idx.ShapeOf(i); s != nil {
		return s.Type()
	}
	return shape.AllTypes
}

// run applies both build passes to root.
func (b *builder) run(root shape.Shape) error {
	if err := b.containment(root); err != nil {
		return err
	}
	return b.compounds(root)
}

// containment records every (descendant, container) pair reachable from
// root for container types Edge through Solid. Container types are visited
// in increasing order, which yields the nearest-first ordering.
func (b *builder) containment(root shape.Shape) error {
	for ancType := shape.Edge; ancType <= shape.Solid; ancType++ {
		containers, err := explore(root, ancType)
		if err != nil {
			return err
		}
		for _, a := range containers {
			ai, err := b.indexOf(a)
			if err != nil {
				return err
			}
			for _, desType := range ancType.Below() {
				descendants, err := explore(a, desType)
				if err != nil {
					return err
				}
				for _, d := range descendants {
					di, err := b.indexOf(d)
					if err != nil {
						return err
					}
					b.appendUnique(di, ai)
				}
			}
		}
	}
	return nil
}

// compounds synthesizes the compound relationship for root and every
// nested compound, outermost first.
func (b *builder) compounds(root shape.Shape) error {
	groups, err := explore(root, shape.Compound)
	if err != nil {
		return err
	}
	for _, c := range groups {
		memberType, ok := shape.FirstChildType(c)
		if !ok {
			continue
		}
		ci, err := b.indexOf(c)
		if err != nil {
			return err
		}
		top := min(memberType, shape.Solid)
		for desType := shape.Vertex; desType <= top; desType++ {
			members, err := explore(c, desType)
			if err != nil {
				return err
			}
			for _, s := range members {
				si, err := b.indexOf(s)
				if err != nil {
					return err
				}
				b.insertCompound(si, ci)
			}
		}
	}
	return nil
}

func (b *builder) appendUnique(des, anc shape.Index) {
	if b.keep != nil && !b.keep(des) {
		return
	}
	list := b.entries[des]
	if slices.Contains(list, anc) {
		return
	}
	b.entries[des] = append(list, anc)
}

// insertCompound places compound c ahead of the first enclosing compound
// already on des's list, or at the end.
func (b *builder) insertCompound(des, c shape.Index) {
	if b.keep != nil && !b.keep(des) {
		return
	}
	list := b.entries[des]
	if slices.Contains(list, c) {
		return
	}
	pos := len(list)
	for i, a := range list {
		if b.typeOf(a) > shape.Solid {
			pos = i
			break
		}
	}
	b.entries[des] = slices.Insert(list, pos, c)
}
