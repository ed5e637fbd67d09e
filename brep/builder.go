package brep

import (
	"fmt"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// Builder creates shapes with keys unique to the builder.
// A Builder is not safe for concurrent use.
type Builder struct {
	next shape.Key
}

// NewBuilder returns a builder whose first key is 1.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) key() shape.Key {
	b.next++
	return b.next
}

// Vertex creates a vertex at p.
func (b *Builder) Vertex(p mgl64.Vec3) *Vertex {
	return &Vertex{key: b.key(), p: p}
}

// Edge creates an edge bounded by two vertices.
func (b *Builder) Edge(v1, v2 *Vertex) *Node {
	return b.node(shape.Edge, v1, v2)
}

// Wire creates a wire from edges in order.
func (b *Builder) Wire(edges ...*Node) *Node {
	return b.group(shape.Wire, shape.Edge, edges)
}

// Face creates a face bounded by wires; the first wire is the outer one.
func (b *Builder) Face(wires ...*Node) *Node {
	return b.group(shape.Face, shape.Wire, wires)
}

// Shell creates a shell from faces.
func (b *Builder) Shell(faces ...*Node) *Node {
	return b.group(shape.Shell, shape.Face, faces)
}

// Solid creates a solid bounded by shells.
func (b *Builder) Solid(shells ...*Node) *Node {
	return b.group(shape.Solid, shape.Shell, shells)
}

// Compound groups arbitrary shapes.
func (b *Builder) Compound(members ...shape.Shape) *Node {
	return b.node(shape.Compound, members...)
}

// Raw creates a node of type t without validating its children. It lets
// tests model a kernel that reports inconsistent topology.
func (b *Builder) Raw(t shape.Type, children ...shape.Shape) *Node {
	return b.node(t, children...)
}

func (b *Builder) group(t, want shape.Type, members []*Node) *Node {
	children := make([]shape.Shape, len(members))
	for i, m := range members {
		if m.Type() != want {
			panic(fmt.Sprintf("brep: %s member %d is a %s, want %s", t, i, m.Type(), want))
		}
		children[i] = m
	}
	return b.node(t, children...)
}

func (b *Builder) node(t shape.Type, children ...shape.Shape) *Node {
	n := &Node{typ: t, key: b.key()}
	n.children = append(n.children, children...)
	return n
}
