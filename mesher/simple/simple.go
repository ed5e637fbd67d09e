package simple

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/element"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/mesh"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/mesher"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrNoGeometry is returned for a vertex without a position.
	ErrNoGeometry = errors.New("vertex has no position")

	// ErrOpenWire is returned when a face boundary is not a closed loop.
	ErrOpenWire = errors.New("wire is not a closed loop")

	// ErrUnsupported is returned for parameters this mesher cannot honor.
	ErrUnsupported = errors.New("unsupported by simple mesher")
)

// Mesher is the reference mesher. It is not safe to run one Mesher on two
// targets at once.
type Mesher struct {
	tracker mesher.Tracker
}

var _ mesher.Mesher = (*Mesher)(nil)

// New returns a Mesher.
func New() *Mesher {
	return &Mesher{}
}

// Name implements mesher.Mesher.
func (m *Mesher) Name() string { return "simple" }

// Progress implements mesher.Mesher.
func (m *Mesher) Progress() float64 { return m.tracker.Get() }

// Mesh implements mesher.Mesher. Existing elements of the affected
// submeshes are replaced.
func (m *Mesher) Mesh(ctx context.Context, reg *mesh.Mesh, target shape.Shape, p mesher.Params) error {
	m.tracker.Set(0)
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Order != 1 {
		return fmt.Errorf("%w: order %d", ErrUnsupported, p.Order)
	}

	// one kind per meshed dimension
	kinds := []shape.Type{shape.Vertex, shape.Edge, shape.Face, shape.Solid}
	var work []shape.Shape
	for _, t := range kinds[:p.Algorithm.Dim()+1] {
		work = append(work, target.Explore(t)...)
	}

	for i, s := range work {
		if err := ctx.Err(); err != nil {
			return err
		}
		sm := reg.GetSubMesh(s)
		if sm == nil {
			return fmt.Errorf("%s %d: %w", s.Type(), s.Key(), mesh.ErrNotIndexed)
		}
		sm.Clear()
		if err := meshShape(sm.Elements(), s, p); err != nil {
			return fmt.Errorf("%s %d: %w", s.Type(), s.Key(), err)
		}
		m.tracker.Set(float64(i+1) / float64(len(work)))
	}
	m.tracker.Set(1)
	return nil
}

// writer appends to one element set, sharing nodes at equal positions and
// keeping the first error.
type writer struct {
	es  *element.Set
	ids map[mgl64.Vec3]int32
	err error
}

func newWriter(es *element.Set) *writer {
	return &writer{es: es, ids: make(map[mgl64.Vec3]int32)}
}

func (w *writer) node(p mgl64.Vec3) int32 {
	if w.err != nil {
		return 0
	}
	if id, ok := w.ids[p]; ok {
		return id
	}
	id, err := w.es.AddNode(p)
	if err != nil {
		w.err = err
		return 0
	}
	w.ids[p] = id
	return id
}

func (w *writer) cell(kind element.CellKind, nodes ...int32) {
	if w.err != nil {
		return
	}
	w.err = w.es.AddCell(kind, nodes...)
}

func meshShape(es *element.Set, s shape.Shape, p mesher.Params) error {
	w := newWriter(es)
	var err error
	switch s.Type() {
	case shape.Vertex:
		var pt mgl64.Vec3
		if pt, err = point(s); err == nil {
			w.cell(element.Point1, w.node(pt))
		}
	case shape.Edge:
		err = meshEdge(w, s, p)
	case shape.Face:
		err = meshFace(w, s)
	case shape.Solid:
		err = meshSolid(w, s)
	}
	if err != nil {
		return err
	}
	return w.err
}

func point(v shape.Shape) (mgl64.Vec3, error) {
	loc, ok := v.(shape.Locator)
	if !ok {
		return mgl64.Vec3{}, ErrNoGeometry
	}
	return loc.Point(), nil
}

// Segments returns the number of segments an edge of the given length is
// split into.
func Segments(length float64, p mesher.Params) int {
	n := max(1, int(math.Ceil(length/p.MaxSize-1e-9)))
	if p.MinSize > 0 && length/float64(n) < p.MinSize {
		n = max(1, int(math.Floor(length/p.MinSize)))
	}
	return n
}

func meshEdge(w *writer, e shape.Shape, p mesher.Params) error {
	a, b, err := edgeEnds(e)
	if err != nil {
		return err
	}
	pa, err := point(a)
	if err != nil {
		return err
	}
	pb, err := point(b)
	if err != nil {
		return err
	}

	d := pb.Sub(pa)
	n := Segments(d.Len(), p)
	prev := w.node(pa)
	for k := 1; k <= n; k++ {
		next := w.node(pa.Add(d.Mul(float64(k) / float64(n))))
		w.cell(element.Line2, prev, next)
		prev = next
	}
	return nil
}

func meshFace(w *writer, f shape.Shape) error {
	tris, err := faceTriangles(f)
	if err != nil {
		return err
	}
	for _, t := range tris {
		w.cell(element.Tri3, w.node(t[0]), w.node(t[1]), w.node(t[2]))
	}
	return nil
}

func meshSolid(w *writer, s shape.Shape) error {
	verts := s.Explore(shape.Vertex)
	if len(verts) == 0 {
		return nil
	}
	var c mgl64.Vec3
	for _, v := range verts {
		p, err := point(v)
		if err != nil {
			return err
		}
		c = c.Add(p)
	}
	center := w.node(c.Mul(1 / float64(len(verts))))

	for _, f := range s.Explore(shape.Face) {
		tris, err := faceTriangles(f)
		if err != nil {
			return err
		}
		for _, t := range tris {
			w.cell(element.Tet4, w.node(t[0]), w.node(t[1]), w.node(t[2]), center)
		}
	}
	return nil
}

// faceTriangles fans the outer wire of f from its first vertex.
func faceTriangles(f shape.Shape) ([][3]mgl64.Vec3, error) {
	wires := f.Children()
	if len(wires) == 0 {
		return nil, nil
	}
	loop, err := LoopVertices(wires[0])
	if err != nil {
		return nil, err
	}
	pts := make([]mgl64.Vec3, len(loop))
	for i, v := range loop {
		if pts[i], err = point(v); err != nil {
			return nil, err
		}
	}
	tris := make([][3]mgl64.Vec3, 0, max(0, len(pts)-2))
	for i := 1; i+1 < len(pts); i++ {
		tris = append(tris, [3]mgl64.Vec3{pts[0], pts[i], pts[i+1]})
	}
	return tris, nil
}

func edgeEnds(e shape.Shape) (a, b shape.Shape, err error) {
	vs := e.Children()
	if len(vs) != 2 {
		return nil, nil, fmt.Errorf("edge %d has %d vertices", e.Key(), len(vs))
	}
	return vs[0], vs[1], nil
}

// LoopVertices returns the vertices of a closed wire in traversal order,
// each once.
func LoopVertices(w shape.Shape) ([]shape.Shape, error) {
	edges := w.Children()
	if len(edges) == 0 {
		return nil, nil
	}
	first, cur, err := edgeEnds(edges[0])
	if err != nil {
		return nil, err
	}
	if len(edges) > 1 {
		c, d, err := edgeEnds(edges[1])
		if err != nil {
			return nil, err
		}
		if shape.Equal(first, c) || shape.Equal(first, d) {
			first, cur = cur, first
		}
	}

	loop := []shape.Shape{first}
	for _, e := range edges[1:] {
		c, d, err := edgeEnds(e)
		if err != nil {
			return nil, err
		}
		switch {
		case shape.Equal(cur, c):
			loop = append(loop, cur)
			cur = d
		case shape.Equal(cur, d):
			loop = append(loop, cur)
			cur = c
		default:
			return nil, fmt.Errorf("%w: wire %d breaks at edge %d", ErrOpenWire, w.Key(), e.Key())
		}
	}
	if !shape.Equal(cur, first) {
		return nil, fmt.Errorf("%w: wire %d", ErrOpenWire, w.Key())
	}
	return loop, nil
}
