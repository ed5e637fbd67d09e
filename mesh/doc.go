// Package mesh implements the topology-indexed submesh registry.
//
// A Mesh binds one root shape to three structures:
//
//   - a shape index giving every sub-shape a dense, persistent integer;
//   - an ancestor map listing, for each sub-shape, the shapes containing it;
//   - a table of SubMesh records, one per index, created on first lookup.
//
// Meshers obtain the container to populate through GetSubMesh and write
// nodes and cells into its element set. Grouping shapes (wires, shells,
// compounds) get complex submeshes whose children are referenced by index
// only, so a child can never dangle.
//
// # Lifecycle
//
//	m := mesh.New()
//	if err := m.SetRootShape(root); err != nil { ... } // Empty -> Rooted
//	sm := m.GetSubMesh(face)                           // nil means "not indexed"
//	m.SetRootShape(nil)                                // Rooted -> Empty
//
// Replacing one non-compound root with a different one without clearing
// first fails with ErrInvalidState.
//
// # Concurrency
//
// A Mesh is not safe for concurrent use. All mutation happens on one
// goroutine; a mesher running in the background must be joined before the
// registry is mutated again (see package mesher).
package mesh
