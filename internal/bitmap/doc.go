// Package bitmap provides the index set used by the submesh registry.
//
// Set wraps a 32-bit Roaring bitmap keyed by shape.Index. Submesh child
// sets, the ancestor map's stale markers and the "freshly indexed" ranges
// of compound synthesis are all Sets: they are sparse, grow monotonically
// and are iterated in ascending index order.
//
// # Example Usage
//
//	children := bitmap.New()
//	children.Add(7)
//	children.Add(3)
//	for i := range children.All() {
//	    // 3, then 7
//	}
package bitmap
