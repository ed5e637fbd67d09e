package element

import (
	"errors"
	"fmt"
	"math"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/internal/conv"
	"github.com/go-gl/mathgl/mgl64"
)

// CellKind identifies the cell shape and its node count.
type CellKind uint8

const (
	// Point1 is a single-node cell bound to a vertex.
	Point1 CellKind = iota + 1
	// Line2 is a straight two-node segment.
	Line2
	// Tri3 is a linear triangle.
	Tri3
	// Quad4 is a bilinear quadrilateral.
	Quad4
	// Tet4 is a linear tetrahedron.
	Tet4
	// Hex8 is a trilinear hexahedron.
	Hex8
)

var kindInfo = map[CellKind]struct {
	name  string
	arity int
	dim   int
}{
	Point1: {"point1", 1, 0},
	Line2:  {"line2", 2, 1},
	Tri3:   {"tri3", 3, 2},
	Quad4:  {"quad4", 4, 2},
	Tet4:   {"tet4", 4, 3},
	Hex8:   {"hex8", 8, 3},
}

func (k CellKind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}
	return fmt.Sprintf("CellKind(%d)", uint8(k))
}

// Arity returns the number of nodes of the kind, 0 for unknown kinds.
func (k CellKind) Arity() int {
	return kindInfo[k].arity
}

// Dim returns the topological dimension of the kind.
func (k CellKind) Dim() int {
	return kindInfo[k].dim
}

var (
	// ErrUnknownKind is returned for cells of an unknown kind.
	ErrUnknownKind = errors.New("unknown cell kind")
	// ErrArity is returned when a cell has the wrong number of nodes.
	ErrArity = errors.New("cell node count does not match its kind")
	// ErrNodeRange is returned when a cell references a missing node.
	ErrNodeRange = errors.New("cell references a node out of range")
)

// Cell is one element referencing nodes of its Set.
type Cell struct {
	Kind  CellKind `json:"kind"`
	Nodes []int32  `json:"nodes"`
}

// Set is the element storage of one submesh.
type Set struct {
	Nodes []mgl64.Vec3 `json:"nodes"`
	Cells []Cell       `json:"cells"`
}

// AddNode appends a node and returns its position.
func (s *Set) AddNode(p mgl64.Vec3) (int32, error) {
	id, err := conv.IntToInt32(len(s.Nodes))
	if err != nil {
		return 0, err
	}
	s.Nodes = append(s.Nodes, p)
	return id, nil
}

// AddCell validates and appends a cell.
func (s *Set) AddCell(kind CellKind, nodes ...int32) error {
	info, ok := kindInfo[kind]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	if len(nodes) != info.arity {
		return fmt.Errorf("%w: %s wants %d, got %d", ErrArity, kind, info.arity, len(nodes))
	}
	for _, n := range nodes {
		if n < 0 || int(n) >= len(s.Nodes) {
			return fmt.Errorf("%w: %d (have %d nodes)", ErrNodeRange, n, len(s.Nodes))
		}
	}
	s.Cells = append(s.Cells, Cell{Kind: kind, Nodes: append([]int32(nil), nodes...)})
	return nil
}

// NumNodes returns the number of nodes.
func (s *Set) NumNodes() int {
	return len(s.Nodes)
}

// NumCells returns the number of cells.
func (s *Set) NumCells() int {
	return len(s.Cells)
}

// CountKind returns the number of cells of the given kind.
func (s *Set) CountKind(kind CellKind) int {
	n := 0
	for _, c := range s.Cells {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the set holds neither nodes nor cells.
func (s *Set) IsEmpty() bool {
	return len(s.Nodes) == 0 && len(s.Cells) == 0
}

// Reset drops all nodes and cells, keeping capacity.
func (s *Set) Reset() {
	s.Nodes = s.Nodes[:0]
	s.Cells = s.Cells[:0]
}

// Validate checks every cell against the node table.
func (s *Set) Validate() error {
	for i, c := range s.Cells {
		info, ok := kindInfo[c.Kind]
		if !ok {
			return fmt.Errorf("cell %d: %w: %d", i, ErrUnknownKind, c.Kind)
		}
		if len(c.Nodes) != info.arity {
			return fmt.Errorf("cell %d: %w", i, ErrArity)
		}
		for _, n := range c.Nodes {
			if n < 0 || int(n) >= len(s.Nodes) {
				return fmt.Errorf("cell %d: %w: %d", i, ErrNodeRange, n)
			}
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the nodes. ok is false
// for a set without nodes.
func (s *Set) Bounds() (lo, hi mgl64.Vec3, ok bool) {
	if len(s.Nodes) == 0 {
		return lo, hi, false
	}
	lo = mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range s.Nodes {
		for k := range 3 {
			lo[k] = math.Min(lo[k], p[k])
			hi[k] = math.Max(hi[k], p[k])
		}
	}
	return lo, hi, true
}
