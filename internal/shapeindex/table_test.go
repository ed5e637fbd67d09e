package shapeindex

import (
	"testing"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/brep"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_AddIsStable(t *testing.T) {
	b := brep.NewBuilder()
	box := brep.Box(b, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})

	tab := New()
	first := tab.Add(box)
	require.Equal(t, shape.Index(1), first)

	for range 3 {
		assert.Equal(t, first, tab.Add(box))
	}
	assert.Equal(t, 1, tab.Len())
}

func TestTable_Injective(t *testing.T) {
	b := brep.NewBuilder()
	box := brep.Box(b, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})

	tab := New()
	seen := make(map[shape.Index]shape.Key)
	for _, typ := range []shape.Type{shape.Vertex, shape.Edge, shape.Face} {
		for _, s := range box.Explore(typ) {
			i := tab.Add(s)
			require.True(t, i.Valid())
			prev, dup := seen[i]
			require.False(t, dup, "index %d reused for %d and %d", i, prev, s.Key())
			seen[i] = s.Key()
		}
	}
	assert.Len(t, seen, 26)
}

func TestTable_RoundTrip(t *testing.T) {
	b := brep.NewBuilder()
	box := brep.Box(b, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})

	tab := New()
	for _, s := range box.Explore(shape.Edge) {
		tab.Add(s)
	}
	for _, s := range box.Explore(shape.Edge) {
		assert.True(t, shape.Equal(s, tab.ShapeOf(tab.IndexOf(s))))
		assert.True(t, tab.Contains(s))
	}
}

func TestTable_Sentinels(t *testing.T) {
	tab := New()
	assert.Nil(t, tab.ShapeOf(shape.NoIndex))
	assert.Nil(t, tab.ShapeOf(17))
	assert.Nil(t, tab.ShapeOf(-1))
	assert.Equal(t, shape.NoIndex, tab.Add(nil))
	assert.Equal(t, shape.NoIndex, tab.IndexOf(nil))
	assert.Equal(t, shape.AllTypes, tab.LimitOf(17))

	v := brep.NewBuilder().Vertex(mgl64.Vec3{})
	assert.Equal(t, shape.NoIndex, tab.IndexOf(v))
	assert.False(t, tab.Contains(v))
	assert.Equal(t, 0, tab.Len(), "IndexOf must not assign")
}

func TestTable_Groups(t *testing.T) {
	b := brep.NewBuilder()
	c := b.Compound(brep.Box(b, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}))

	tab := New()
	whole := tab.Add(c)

	g, fresh := tab.AddGroup(c, shape.Solid)
	require.True(t, fresh)
	assert.NotEqual(t, whole, g)
	assert.Equal(t, shape.Solid, tab.LimitOf(g))
	assert.True(t, shape.Equal(c, tab.ShapeOf(g)))

	again, fresh := tab.AddGroup(c, shape.Solid)
	assert.False(t, fresh)
	assert.Equal(t, g, again)
	assert.Equal(t, g, tab.GroupOf(c, shape.Solid))

	// The whole-shape group is the shape itself.
	w, fresh := tab.AddGroup(c, shape.AllTypes)
	assert.False(t, fresh)
	assert.Equal(t, whole, w)
	assert.Equal(t, whole, tab.IndexOf(c))
	assert.Equal(t, shape.NoIndex, tab.GroupOf(c, shape.Face))
}

func TestTable_Reset(t *testing.T) {
	b := brep.NewBuilder()
	v1 := b.Vertex(mgl64.Vec3{})
	v2 := b.Vertex(mgl64.Vec3{1, 0, 0})

	tab := New()
	tab.Add(v1)
	tab.Add(v2)
	require.Equal(t, shape.Index(2), tab.Max())

	tab.Reset()
	assert.Equal(t, shape.NoIndex, tab.IndexOf(v1))
	assert.Nil(t, tab.ShapeOf(1))
	assert.Equal(t, shape.Index(1), tab.Add(v2))
}

func TestTable_CloneIsIndependent(t *testing.T) {
	b := brep.NewBuilder()
	box := brep.Box(b, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})
	c := b.Compound(box)

	tab := New()
	tab.Add(box)
	clone := tab.Clone()

	gi, fresh := clone.AddGroup(c, shape.Edge)
	require.True(t, fresh)
	vi := clone.Add(box.Explore(shape.Vertex)[0])

	assert.Equal(t, 1, tab.Len())
	assert.Equal(t, shape.NoIndex, tab.GroupOf(c, shape.Edge))
	assert.Equal(t, shape.NoIndex, tab.IndexOf(box.Explore(shape.Vertex)[0]))

	// The original assigns what the clone assigned.
	gj, _ := tab.AddGroup(c, shape.Edge)
	assert.Equal(t, gi, gj)
	assert.Equal(t, vi, tab.Add(box.Explore(shape.Vertex)[0]))
	assert.Equal(t, clone.Max(), tab.Max())
}
