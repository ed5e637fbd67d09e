package brep

import (
	"testing"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox_Counts(t *testing.T) {
	b := NewBuilder()
	box := Box(b, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 2, 3})

	assert.Equal(t, shape.Solid, box.Type())
	assert.Len(t, box.Explore(shape.Vertex), 8)
	assert.Len(t, box.Explore(shape.Edge), 12)
	assert.Len(t, box.Explore(shape.Wire), 6)
	assert.Len(t, box.Explore(shape.Face), 6)
	assert.Len(t, box.Explore(shape.Shell), 1)
	assert.Len(t, box.Explore(shape.Solid), 1)
	assert.Empty(t, box.Explore(shape.Compound))
}

func TestBox_VertexPositions(t *testing.T) {
	b := NewBuilder()
	box := Box(b, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 2, 3})

	seen := make(map[mgl64.Vec3]bool)
	for _, v := range box.Explore(shape.Vertex) {
		loc, ok := v.(shape.Locator)
		require.True(t, ok)
		seen[loc.Point()] = true
	}
	assert.Len(t, seen, 8)
	assert.True(t, seen[mgl64.Vec3{1, 2, 3}])
	assert.True(t, seen[mgl64.Vec3{0, 2, 0}])
}

func TestBox_EdgesAreShared(t *testing.T) {
	b := NewBuilder()
	box := Box(b, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})

	uses := make(map[shape.Key]int)
	for _, f := range box.Explore(shape.Face) {
		for _, e := range f.Explore(shape.Edge) {
			uses[e.Key()]++
		}
	}
	require.Len(t, uses, 12)
	for k, n := range uses {
		assert.Equal(t, 2, n, "edge %d", k)
	}
}

func TestExplore_CrossesNestedCompounds(t *testing.T) {
	b := NewBuilder()
	a := Box(b, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	c := Box(b, mgl64.Vec3{2, 0, 0}, mgl64.Vec3{3, 1, 1})
	inner := b.Compound(c)
	outer := b.Compound(a, inner)

	assert.Len(t, outer.Explore(shape.Solid), 2)
	assert.Len(t, outer.Explore(shape.Vertex), 16)

	compounds := outer.Explore(shape.Compound)
	require.Len(t, compounds, 2)
	assert.Equal(t, outer.Key(), compounds[0].Key())
	assert.Equal(t, inner.Key(), compounds[1].Key())
}

func TestBuilder_KeysAreUnique(t *testing.T) {
	b := NewBuilder()
	v1 := b.Vertex(mgl64.Vec3{})
	v2 := b.Vertex(mgl64.Vec3{})
	assert.NotEqual(t, v1.Key(), v2.Key())
	assert.False(t, shape.Equal(v1, v2))
	assert.True(t, shape.Equal(v1, v1))

	// Independent builders start over.
	other := NewBuilder().Vertex(mgl64.Vec3{})
	assert.Equal(t, v1.Key(), other.Key())
}

func TestBuilder_GroupPanicsOnWrongMember(t *testing.T) {
	b := NewBuilder()
	e := b.Edge(b.Vertex(mgl64.Vec3{}), b.Vertex(mgl64.Vec3{1, 0, 0}))
	assert.Panics(t, func() { b.Shell(e) })
}

func TestAssembly(t *testing.T) {
	b := NewBuilder()
	asm := Assembly(b, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{5, 0, 0})

	assert.Equal(t, shape.Compound, asm.Type())
	require.Len(t, asm.Children(), 2)
	assert.Len(t, asm.Explore(shape.Solid), 2)
	assert.Len(t, asm.Explore(shape.Face), 12)
}
