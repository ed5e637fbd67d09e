package brep

import (
	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// Node is a kernel shape.
type Node struct {
	typ      shape.Type
	key      shape.Key
	children []shape.Shape
}

// Type implements shape.Shape.
func (n *Node) Type() shape.Type { return n.typ }

// Key implements shape.Shape.
func (n *Node) Key() shape.Key { return n.key }

// Children implements shape.Shape.
func (n *Node) Children() []shape.Shape {
	out := make([]shape.Shape, len(n.children))
	copy(out, n.children)
	return out
}

// Explore implements shape.Shape.
func (n *Node) Explore(t shape.Type) []shape.Shape {
	return explore(n, t)
}

// Vertex is a kernel vertex carrying a position.
type Vertex struct {
	key shape.Key
	p   mgl64.Vec3
}

// Type implements shape.Shape.
func (v *Vertex) Type() shape.Type { return shape.Vertex }

// Key implements shape.Shape.
func (v *Vertex) Key() shape.Key { return v.key }

// Children implements shape.Shape. Vertices have none.
func (v *Vertex) Children() []shape.Shape { return nil }

// Explore implements shape.Shape.
func (v *Vertex) Explore(t shape.Type) []shape.Shape {
	if t == shape.Vertex {
		return []shape.Shape{v}
	}
	return nil
}

// Point implements shape.Locator.
func (v *Vertex) Point() mgl64.Vec3 { return v.p }

// explore walks s depth first and collects distinct shapes reporting type t.
// Subtrees whose type orders below t are not entered.
func explore(s shape.Shape, t shape.Type) []shape.Shape {
	var out []shape.Shape
	seen := make(map[shape.Key]struct{})

	var walk func(cur shape.Shape)
	walk = func(cur shape.Shape) {
		if _, ok := seen[cur.Key()]; ok {
			return
		}
		seen[cur.Key()] = struct{}{}

		if cur.Type() == t {
			out = append(out, cur)
			if t != shape.Compound {
				return
			}
		}
		if cur.Type() < t {
			return
		}
		for _, c := range cur.Children() {
			walk(c)
		}
	}
	walk(s)

	return out
}
