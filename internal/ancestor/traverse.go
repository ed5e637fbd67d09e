package ancestor

import (
	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
)

// Traverse returns root and every distinct shape below it in depth-first
// pre-order, following immediate children. It fails when a child's type
// does not order below its parent's; only compounds may hold compounds.
func Traverse(root shape.Shape) ([]shape.Shape, error) {
	if shape.IsNull(root) {
		return nil, nil
	}
	if !root.Type().Valid() {
		return nil, &KernelInconsistencyError{
			Parent: root.Key(), ParentType: root.Type(),
			Child: root.Key(), ChildType: root.Type(),
			Reason: "unknown shape type",
		}
	}

	var out []shape.Shape
	seen := make(map[shape.Key]struct{})

	var walk func(s shape.Shape) error
	walk = func(s shape.Shape) error {
		if _, ok := seen[s.Key()]; ok {
			return nil
		}
		seen[s.Key()] = struct{}{}
		out = append(out, s)

		for _, c := range s.Children() {
			if err := checkChild(s, c); err != nil {
				return err
			}
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root); err != nil {
		return nil, err
	}
	return out, nil
}

func checkChild(parent, child shape.Shape) error {
	pt, ct := parent.Type(), child.Type()
	if ct < pt || pt == shape.Compound && ct.Valid() {
		return nil
	}
	return &KernelInconsistencyError{
		Parent: parent.Key(), ParentType: pt,
		Child: child.Key(), ChildType: ct,
		Reason: "child type does not order below its parent",
	}
}

// Explore returns s.Explore(t) after checking that every answer has type t.
func Explore(s shape.Shape, t shape.Type) ([]shape.Shape, error) {
	return explore(s, t)
}

func explore(s shape.Shape, t shape.Type) ([]shape.Shape, error) {
	found := s.Explore(t)
	for _, f := range found {
		if f.Type() != t {
			return nil, &KernelInconsistencyError{
				Parent: s.Key(), ParentType: s.Type(),
				Child: f.Key(), ChildType: f.Type(),
				Reason: "explored " + t.String() + " reports another type",
			}
		}
	}
	return found, nil
}
