// Package element stores the discretization produced by a mesher for one
// submesh: a node table and a list of cells referencing nodes by position.
//
// The registry treats a Set as opaque; it only guarantees that a Set
// belongs to exactly one submesh and lives until that submesh is cleared.
package element
