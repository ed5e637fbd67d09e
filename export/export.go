package export

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/blobstore"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/codec"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/element"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/internal/compress"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/internal/hash"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/internal/resource"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/mesh"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
)

// manifestCodec is fixed so that any reader can open a manifest.
var manifestCodec codec.Codec = codec.JSON{}

// Write stores every created submesh of reg and then the manifest. Blobs
// are written concurrently; the manifest is only written once all of them
// succeeded, so a store without a manifest holds no complete export.
func Write(ctx context.Context, store blobstore.BlobStore, reg *mesh.Mesh, opts ...Option) (*Manifest, error) {
	if reg.State() == mesh.StateEmpty {
		return nil, fmt.Errorf("export: %w", mesh.ErrInvalidState)
	}
	o := applyOptions(opts)
	start := time.Now()

	m := &Manifest{
		Version:       FormatVersion,
		Codec:         o.codec.Name(),
		Compression:   o.compression.String(),
		RootType:      reg.RootShape().Type().String(),
		MaxShapeIndex: reg.MaxShapeIndex(),
	}
	var sets []*element.Set
	for sm := range reg.SubMeshes() {
		els := sm.Elements()
		e := Entry{
			Index:     sm.Index(),
			ShapeType: sm.Shape().Type().String(),
			Limit:     sm.Limit().String(),
			Children:  sm.Children(),
			Nodes:     els.NumNodes(),
			Cells:     els.NumCells(),
		}
		if sm.Limit() != shape.AllTypes {
			e.Compound = reg.IndexOf(sm.Shape())
		}
		m.SubMeshes = append(m.SubMeshes, e)
		sets = append(sets, els)
	}

	th := resource.NewThrottle(o.limits)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i := range m.SubMeshes {
		if sets[i].IsEmpty() {
			continue
		}
		e := &m.SubMeshes[i]
		set := sets[i]
		g.Go(func() error {
			return writeBlob(gctx, store, th, o, e, set)
		})
	}
	if err := g.Wait(); err != nil {
		o.logger.Error("export failed", "error", err)
		return nil, err
	}

	data, err := manifestCodec.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	if err := store.Put(ctx, o.prefix+ManifestName, data); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	nodes, cells := m.Totals()
	o.logger.Info("export finished",
		"submeshes", len(m.SubMeshes),
		"nodes", nodes,
		"cells", cells,
		"compression", m.Compression,
		"took", time.Since(start))
	return m, nil
}

func writeBlob(ctx context.Context, store blobstore.BlobStore, th *resource.Throttle, o options, e *Entry, set *element.Set) error {
	raw, err := codec.Encode(o.codec, set)
	if err != nil {
		return fmt.Errorf("encode submesh %d: %w", e.Index, err)
	}
	held := int64(len(raw))
	if err := th.AcquireBuffer(ctx, held); err != nil {
		return err
	}
	defer th.ReleaseBuffer(held)

	block, err := compress.Encode(raw, o.compression)
	if err != nil {
		return fmt.Errorf("compress submesh %d: %w", e.Index, err)
	}
	if err := th.WaitIO(ctx, len(block)); err != nil {
		return err
	}

	name := BlobName(e.Index)
	if err := store.Put(ctx, o.prefix+name, block); err != nil {
		return fmt.Errorf("write submesh %d: %w", e.Index, err)
	}
	e.Blob = name
	e.Checksum = hash.CRC32C(block)
	e.RawSize = len(raw)
	e.StoredSize = len(block)
	o.logger.Debug("submesh written", "index", e.Index, "blob", name, "raw", len(raw), "stored", len(block))
	return nil
}

// ReadManifest loads and checks the manifest.
func ReadManifest(ctx context.Context, store blobstore.BlobStore, opts ...Option) (*Manifest, error) {
	o := applyOptions(opts)
	data, err := blobstore.ReadAll(ctx, store, o.prefix+ManifestName)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := manifestCodec.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if m.Version > FormatVersion || m.Version < 1 {
		return nil, fmt.Errorf("%w: %d", ErrVersion, m.Version)
	}
	return &m, nil
}

// Read loads the manifest and every blob it lists. Each blob is checked
// against its CRC32C before it is decoded.
func Read(ctx context.Context, store blobstore.BlobStore, opts ...Option) (*Manifest, map[shape.Index]*element.Set, error) {
	o := applyOptions(opts)
	m, err := ReadManifest(ctx, store, opts...)
	if err != nil {
		return nil, nil, err
	}
	c, err := codec.Lookup(m.Codec)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrUnknownCodec, err)
	}

	var mu sync.Mutex
	sets := make(map[shape.Index]*element.Set)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for _, e := range m.SubMeshes {
		if e.Blob == "" {
			continue
		}
		g.Go(func() error {
			set, err := readBlob(gctx, store, o.prefix, c, e)
			if err != nil {
				return err
			}
			mu.Lock()
			sets[e.Index] = set
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	o.logger.Info("export read", "submeshes", len(m.SubMeshes), "blobs", len(sets))
	return m, sets, nil
}

func readBlob(ctx context.Context, store blobstore.BlobStore, prefix string, c codec.Codec, e Entry) (*element.Set, error) {
	block, err := blobstore.ReadAll(ctx, store, prefix+e.Blob)
	if err != nil {
		return nil, fmt.Errorf("read submesh %d: %w", e.Index, err)
	}
	if got := hash.CRC32C(block); got != e.Checksum {
		return nil, fmt.Errorf("submesh %d: %w (got %08x, want %08x)", e.Index, ErrChecksum, got, e.Checksum)
	}
	raw, err := compress.Decode(block)
	if err != nil {
		return nil, fmt.Errorf("submesh %d: %w", e.Index, err)
	}
	set := &element.Set{}
	if err := codec.Decode(c, raw, set); err != nil {
		return nil, fmt.Errorf("decode submesh %d: %w", e.Index, err)
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("submesh %d: %w", e.Index, err)
	}
	return set, nil
}

// Restore copies decoded element sets into the submeshes of reg. reg must
// index the same root the export was written from. Group entries are
// re-created in index order with AddCompoundSubmesh, so their indices match
// as long as reg has synthesized nothing else since the root was set.
func Restore(reg *mesh.Mesh, m *Manifest, sets map[shape.Index]*element.Set) error {
	for _, e := range m.SubMeshes {
		set, ok := sets[e.Index]
		if !ok && !e.IsGroup() {
			continue
		}
		sm, err := resolve(reg, e)
		if err != nil {
			return fmt.Errorf("restore submesh %d: %w", e.Index, err)
		}
		if sm.Index() != e.Index || sm.Shape().Type().String() != e.ShapeType || sm.Limit().String() != e.Limit {
			return fmt.Errorf("restore submesh %d: %w", e.Index, ErrMismatch)
		}
		if ok {
			*sm.Elements() = *set
		}
	}
	return nil
}

func resolve(reg *mesh.Mesh, e Entry) (*mesh.SubMesh, error) {
	if e.IsGroup() {
		limit, err := shape.ParseType(e.Limit)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMismatch, err)
		}
		s := reg.ShapeOf(e.Compound)
		if shape.IsNull(s) {
			return nil, mesh.ErrNotIndexed
		}
		if s.Type() != shape.Compound {
			return nil, ErrMismatch
		}
		gi, err := reg.AddCompoundSubmesh(s, limit)
		if err != nil {
			return nil, err
		}
		return reg.SubMeshAt(gi), nil
	}

	if sm := reg.SubMeshAt(e.Index); sm != nil {
		return sm, nil
	}
	s := reg.ShapeOf(e.Index)
	if shape.IsNull(s) {
		return nil, mesh.ErrNotIndexed
	}
	if sm := reg.GetSubMesh(s); sm != nil {
		return sm, nil
	}
	return nil, ErrMismatch
}
