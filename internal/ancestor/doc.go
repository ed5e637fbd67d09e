// Package ancestor maintains, for every indexed shape, the ordered list of
// shapes that contain it.
//
// # Ordering
//
// A shape's ancestors are sorted by increasing type, nearest container
// first. Within one type they keep the traversal order of the root shape,
// which is stable for identical input. An entry's type is always strictly
// above the key's type; a shape is never its own ancestor.
//
// # Building
//
// Ordinary containment comes from B-rep topology: for every container type
// from Edge to Solid, each container is recorded on all of its descendants.
// Compounds have no boundary of their own, so their relationship is
// synthesized: every compound reachable from the root (nested ones
// included, outermost first) is inserted on its descendants up to the type
// of its first member, placed ahead of any enclosing compound already
// recorded.
//
// Builds run into a scratch table and are committed only on success, so a
// kernel inconsistency never leaves half-written entries behind.
package ancestor
