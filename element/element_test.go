package element

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_AddNodeAndCell(t *testing.T) {
	var s Set
	a, err := s.AddNode(mgl64.Vec3{0, 0, 0})
	require.NoError(t, err)
	b, err := s.AddNode(mgl64.Vec3{1, 0, 0})
	require.NoError(t, err)
	c, err := s.AddNode(mgl64.Vec3{0, 1, 0})
	require.NoError(t, err)

	require.NoError(t, s.AddCell(Tri3, a, b, c))
	require.NoError(t, s.AddCell(Line2, a, b))

	assert.Equal(t, 3, s.NumNodes())
	assert.Equal(t, 2, s.NumCells())
	assert.Equal(t, 1, s.CountKind(Tri3))
	assert.NoError(t, s.Validate())
}

func TestSet_AddCellErrors(t *testing.T) {
	var s Set
	_, err := s.AddNode(mgl64.Vec3{})
	require.NoError(t, err)

	assert.ErrorIs(t, s.AddCell(CellKind(42), 0), ErrUnknownKind)
	assert.ErrorIs(t, s.AddCell(Line2, 0), ErrArity)
	assert.ErrorIs(t, s.AddCell(Line2, 0, 1), ErrNodeRange)
	assert.ErrorIs(t, s.AddCell(Line2, 0, -1), ErrNodeRange)
	assert.Zero(t, s.NumCells())
}

func TestSet_CellNodesAreCopied(t *testing.T) {
	var s Set
	for range 2 {
		_, err := s.AddNode(mgl64.Vec3{})
		require.NoError(t, err)
	}
	nodes := []int32{0, 1}
	require.NoError(t, s.AddCell(Line2, nodes...))
	nodes[0] = 1
	assert.Equal(t, int32(0), s.Cells[0].Nodes[0])
}

func TestSet_Validate(t *testing.T) {
	s := Set{
		Nodes: []mgl64.Vec3{{}, {1, 0, 0}},
		Cells: []Cell{{Kind: Line2, Nodes: []int32{0, 5}}},
	}
	assert.ErrorIs(t, s.Validate(), ErrNodeRange)

	s.Cells[0] = Cell{Kind: Tri3, Nodes: []int32{0, 1}}
	assert.ErrorIs(t, s.Validate(), ErrArity)
}

func TestSet_Bounds(t *testing.T) {
	var s Set
	_, _, ok := s.Bounds()
	assert.False(t, ok)

	s.Nodes = []mgl64.Vec3{{1, -2, 3}, {-1, 4, 0}}
	lo, hi, ok := s.Bounds()
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{-1, -2, 0}, lo)
	assert.Equal(t, mgl64.Vec3{1, 4, 3}, hi)
}

func TestSet_Reset(t *testing.T) {
	s := Set{Nodes: []mgl64.Vec3{{}}, Cells: []Cell{{Kind: Point1, Nodes: []int32{0}}}}
	assert.False(t, s.IsEmpty())
	s.Reset()
	assert.True(t, s.IsEmpty())
}

func TestCellKind(t *testing.T) {
	assert.Equal(t, 8, Hex8.Arity())
	assert.Equal(t, 3, Tet4.Dim())
	assert.Equal(t, "quad4", Quad4.String())
	assert.Equal(t, "CellKind(0)", CellKind(0).String())
	assert.Zero(t, CellKind(0).Arity())
}
