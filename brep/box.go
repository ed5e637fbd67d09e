package brep

import (
	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// boxLoops lists the corner loops of the six faces. Corner i sits at
// x = i&1, y = (i>>1)&1, z = (i>>2)&1 of the box.
var boxLoops = [6][4]int{
	{0, 2, 3, 1}, // z min
	{4, 5, 7, 6}, // z max
	{0, 1, 5, 4}, // y min
	{2, 6, 7, 3}, // y max
	{0, 4, 6, 2}, // x min
	{1, 3, 7, 5}, // x max
}

// Box builds an axis-aligned box solid spanning lo..hi: 8 vertices,
// 12 shared edges, 6 wires, 6 faces, 1 shell.
func Box(b *Builder, lo, hi mgl64.Vec3) *Node {
	var corners [8]*Vertex
	for i := range corners {
		p := lo
		if i&1 != 0 {
			p[0] = hi[0]
		}
		if i&2 != 0 {
			p[1] = hi[1]
		}
		if i&4 != 0 {
			p[2] = hi[2]
		}
		corners[i] = b.Vertex(p)
	}

	edges := make(map[[2]int]*Node, 12)
	edge := func(i, j int) *Node {
		k := [2]int{min(i, j), max(i, j)}
		if e, ok := edges[k]; ok {
			return e
		}
		e := b.Edge(corners[k[0]], corners[k[1]])
		edges[k] = e
		return e
	}

	faces := make([]*Node, 0, len(boxLoops))
	for _, loop := range boxLoops {
		ws := make([]*Node, 0, 4)
		for i := range loop {
			ws = append(ws, edge(loop[i], loop[(i+1)%4]))
		}
		faces = append(faces, b.Face(b.Wire(ws...)))
	}

	return b.Solid(b.Shell(faces...))
}

// Assembly builds a compound holding one unit box per origin.
func Assembly(b *Builder, origins ...mgl64.Vec3) *Node {
	members := make([]shape.Shape, 0, len(origins))
	for _, o := range origins {
		members = append(members, Box(b, o, o.Add(mgl64.Vec3{1, 1, 1})))
	}
	return b.Compound(members...)
}
