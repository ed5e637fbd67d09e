// Package brep is a small in-memory boundary-representation kernel.
//
// It implements shape.Shape for vertices, edges, wires, faces, shells,
// solids and compounds built through a Builder. Sub-shapes are shared by
// pointer, so an edge used by two faces is one shape with one key. The
// kernel carries no surface geometry beyond vertex positions; it exists to
// feed the registry and the reference mesher with real topology.
//
//	b := brep.NewBuilder()
//	cube := brep.Box(b, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
//	parts := b.Compound(cube, brep.Box(b, mgl64.Vec3{2, 0, 0}, mgl64.Vec3{3, 1, 1}))
package brep
