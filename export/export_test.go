package export

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/blobstore"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/brep"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/codec"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/element"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/internal/compress"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/internal/resource"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/mesh"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/mesher"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/mesher/simple"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
)

func meshedCube(t *testing.T) (*mesh.Mesh, *brep.Node) {
	t.Helper()
	b := brep.NewBuilder()
	solid := brep.Box(b, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})
	reg := mesh.New()
	require.NoError(t, reg.SetRootShape(solid))

	p := mesher.DefaultParams()
	p.MaxSize = 0.5
	require.NoError(t, simple.New().Mesh(context.Background(), reg, solid, p))
	return reg, solid
}

func TestWrite_ReadRoundTrip(t *testing.T) {
	ctx := context.Background()
	reg, solid := meshedCube(t)
	store := blobstore.NewMemoryStore()

	m, err := Write(ctx, store, reg)
	require.NoError(t, err)
	assert.Equal(t, FormatVersion, m.Version)
	assert.Equal(t, DefaultCodec.Name(), m.Codec)
	assert.Equal(t, "lz4", m.Compression)
	assert.Equal(t, "solid", m.RootType)
	assert.Equal(t, reg.NumSubMeshes(), len(m.SubMeshes))

	nodes, cells := m.Totals()
	wantNodes, wantCells := reg.CountBelow(solid)
	assert.Equal(t, wantNodes, nodes)
	assert.Equal(t, wantCells, cells)

	names, err := store.List(ctx, "submesh-")
	require.NoError(t, err)
	// 8 vertices, 12 edges, 6 faces carry elements.
	assert.Len(t, names, 26)

	got, sets, err := Read(ctx, store)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(m, got, cmpopts.EquateEmpty()))
	require.Len(t, sets, 26)
	for i, set := range sets {
		want := reg.SubMeshAt(i).Elements()
		assert.Empty(t, cmp.Diff(want, set), "submesh %d", i)
	}

	// The solid has no elements of its own but keeps its entry.
	e, ok := m.Entry(reg.IndexOf(solid))
	require.True(t, ok)
	assert.Empty(t, e.Blob)
	assert.Equal(t, "solid", e.ShapeType)
}

func TestWrite_ChildrenRecorded(t *testing.T) {
	ctx := context.Background()
	reg, solid := meshedCube(t)
	shell := solid.Explore(shape.Shell)[0]
	sm := reg.GetSubMesh(shell)

	m, err := Write(ctx, blobstore.NewMemoryStore(), reg)
	require.NoError(t, err)

	e, ok := m.Entry(sm.Index())
	require.True(t, ok)
	assert.Len(t, e.Children, 6)
	assert.Equal(t, sm.Children(), e.Children)
}

func TestWrite_LocalStoreRestore(t *testing.T) {
	ctx := context.Background()
	reg, solid := meshedCube(t)
	store := blobstore.NewLocalStore(t.TempDir())

	opts := []Option{
		WithCodec(codec.JSON{}),
		WithCompression(compress.Zstd),
		WithPrefix("run-1/"),
		WithConcurrency(3),
		WithLimits(resource.Limits{BufferBytes: 4096}),
	}
	m, err := Write(ctx, store, reg, opts...)
	require.NoError(t, err)
	assert.Equal(t, "json", m.Codec)
	assert.Equal(t, "zstd", m.Compression)

	_, err = store.Open(ctx, "run-1/"+ManifestName)
	require.NoError(t, err)

	got, sets, err := Read(ctx, store, WithPrefix("run-1/"))
	require.NoError(t, err)

	// A fresh registry on the same root receives the same elements.
	fresh := mesh.New()
	require.NoError(t, fresh.SetRootShape(solid))
	require.NoError(t, Restore(fresh, got, sets))

	for _, typ := range []shape.Type{shape.Vertex, shape.Edge, shape.Face} {
		for _, s := range solid.Explore(typ) {
			want := reg.GetSubMesh(s).Elements()
			assert.Empty(t, cmp.Diff(want, fresh.GetSubMesh(s).Elements()))
		}
	}
	n1, c1 := reg.CountBelow(solid)
	n2, c2 := fresh.CountBelow(solid)
	assert.Equal(t, n1, n2)
	assert.Equal(t, c1, c2)
}

func TestRead_ChecksumMismatch(t *testing.T) {
	ctx := context.Background()
	reg, _ := meshedCube(t)
	store := blobstore.NewMemoryStore()

	m, err := Write(ctx, store, reg, WithCompression(compress.None))
	require.NoError(t, err)

	var victim Entry
	for _, e := range m.SubMeshes {
		if e.Blob != "" {
			victim = e
			break
		}
	}
	data, err := blobstore.ReadAll(ctx, store, victim.Blob)
	require.NoError(t, err)
	data[len(data)-1] ^= 0xff
	require.NoError(t, store.Put(ctx, victim.Blob, data))

	_, _, err = Read(ctx, store)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestRead_ManifestErrors(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	_, _, err := Read(ctx, store)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	require.NoError(t, store.Put(ctx, ManifestName, []byte(`{"version":1,"codec":"msgpack"}`)))
	_, _, err = Read(ctx, store)
	assert.ErrorIs(t, err, ErrUnknownCodec)

	require.NoError(t, store.Put(ctx, ManifestName, []byte(`{"version":99,"codec":"json"}`)))
	_, _, err = Read(ctx, store)
	assert.ErrorIs(t, err, ErrVersion)

	require.NoError(t, store.Put(ctx, ManifestName, []byte(`not json`)))
	_, err = ReadManifest(ctx, store)
	assert.Error(t, err)
}

func TestWrite_EmptyRegistry(t *testing.T) {
	_, err := Write(context.Background(), blobstore.NewMemoryStore(), mesh.New())
	assert.ErrorIs(t, err, mesh.ErrInvalidState)
}

func TestWrite_CancelledLeavesNoManifest(t *testing.T) {
	reg, _ := meshedCube(t)
	store := blobstore.NewMemoryStore()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Write(ctx, store, reg, WithLimits(resource.Limits{BytesPerSec: 1}))
	require.Error(t, err)

	_, err = store.Open(context.Background(), ManifestName)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestRestore_Mismatch(t *testing.T) {
	ctx := context.Background()
	reg, _ := meshedCube(t)
	store := blobstore.NewMemoryStore()
	_, err := Write(ctx, store, reg)
	require.NoError(t, err)
	m, sets, err := Read(ctx, store)
	require.NoError(t, err)

	// Index 1 of a compound root is the compound, not the solid.
	b := brep.NewBuilder()
	other := mesh.New()
	require.NoError(t, other.SetRootShape(brep.Assembly(b, mgl64.Vec3{}, mgl64.Vec3{2, 0, 0})))

	sets[1] = sets[m.SubMeshes[len(m.SubMeshes)-1].Index]
	err = Restore(other, m, sets)
	assert.ErrorIs(t, err, ErrMismatch)
}

func TestRestore_CompoundGroups(t *testing.T) {
	ctx := context.Background()
	b := brep.NewBuilder()
	root := brep.Assembly(b, mgl64.Vec3{}, mgl64.Vec3{2, 0, 0})
	reg := mesh.New()
	require.NoError(t, reg.SetRootShape(root))

	edges, err := reg.AddCompoundSubmesh(root, shape.Edge)
	require.NoError(t, err)
	faces, err := reg.AddCompoundSubmesh(root, shape.Face)
	require.NoError(t, err)
	es := reg.SubMeshAt(faces).Elements()
	id, err := es.AddNode(mgl64.Vec3{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, es.AddCell(element.Point1, id))

	store := blobstore.NewMemoryStore()
	_, err = Write(ctx, store, reg)
	require.NoError(t, err)
	m, sets, err := Read(ctx, store)
	require.NoError(t, err)

	e, ok := m.Entry(faces)
	require.True(t, ok)
	assert.True(t, e.IsGroup())
	assert.Equal(t, "face", e.Limit)
	assert.Equal(t, reg.IndexOf(root), e.Compound)

	fresh := mesh.New()
	require.NoError(t, fresh.SetRootShape(root))
	require.NoError(t, Restore(fresh, m, sets))

	got := fresh.SubMeshAt(faces)
	require.NotNil(t, got)
	assert.Equal(t, shape.Face, got.Limit())
	assert.Equal(t, 1, got.Elements().NumNodes())
	assert.Equal(t, 1, got.Elements().NumCells())
	// The empty edge group is re-created too, so the face group keeps its index.
	require.NotNil(t, fresh.SubMeshAt(edges))
	assert.Equal(t, shape.Edge, fresh.SubMeshAt(edges).Limit())

	// Restoring twice reuses the groups.
	require.NoError(t, Restore(fresh, m, sets))
	assert.Equal(t, faces, fresh.MaxShapeIndex())

	// On a solid root the grouped index is not a compound.
	solid := mesh.New()
	require.NoError(t, solid.SetRootShape(brep.Box(b, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})))
	assert.ErrorIs(t, Restore(solid, m, sets), ErrMismatch)
}

func TestWrite_Logs(t *testing.T) {
	reg, _ := meshedCube(t)
	var buf bytes.Buffer
	logger := mesh.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Write(context.Background(), blobstore.NewMemoryStore(), reg, WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "submesh written")
	assert.Contains(t, buf.String(), "export finished")
}
