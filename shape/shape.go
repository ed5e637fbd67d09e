package shape

import (
	"cmp"

	"github.com/go-gl/mathgl/mgl64"
)

// Shape is a topological value supplied by the geometry kernel.
//
// Implementations must be immutable. The nil Shape is the null shape.
type Shape interface {
	// Type returns the shape's containment class.
	Type() Type

	// Key returns the structural identity of the shape.
	Key() Key

	// Children returns the immediate sub-shapes in kernel order.
	Children() []Shape

	// Explore returns every distinct descendant of type t in traversal
	// order, including the receiver when its own type is t. Exploration
	// crosses nested compounds.
	Explore(t Type) []Shape
}

// Locator is implemented by kernel vertices that carry a position.
type Locator interface {
	Point() mgl64.Vec3
}

// IsNull reports whether s is the null shape.
func IsNull(s Shape) bool {
	return s == nil
}

// Equal reports structural equality. Two null shapes are equal.
func Equal(a, b Shape) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key()
}

// Compare orders shapes by identity. The null shape sorts first.
func Compare(a, b Shape) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return cmp.Compare(a.Key(), b.Key())
}

// FirstChildType returns the type of s's first immediate child and false
// when s has no children.
func FirstChildType(s Shape) (Type, bool) {
	children := s.Children()
	if len(children) == 0 {
		return 0, false
	}
	return children[0].Type(), true
}
