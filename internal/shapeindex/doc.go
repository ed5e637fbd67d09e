// Package shapeindex assigns dense, persistent integer identities to shapes.
//
// A Table maps shape keys to shape.Index values and back. Index 0 is never
// assigned. Indices are handed out in insertion order and are never reused
// for the lifetime of a Table; Reset starts a new lifetime.
//
// Besides ordinary shapes a Table can hold synthetic group entries: a
// compound explored "up to" a limit type gets its own index, distinct from
// the compound's whole-shape index, so both can own a submesh.
package shapeindex
