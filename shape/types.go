package shape

import "fmt"

// Type classifies a shape by containment depth.
type Type uint8

const (
	// Vertex is a topological point.
	Vertex Type = iota
	// Edge is a bounded curve between vertices.
	Edge
	// Wire is an ordered group of edges.
	Wire
	// Face is a bounded surface patch.
	Face
	// Shell is a group of faces.
	Shell
	// Solid is a volume bounded by shells.
	Solid
	// Compound is a pure grouping of arbitrary shapes.
	Compound
	// AllTypes is not a shape type. It is the limit used by compound
	// synthesis to request every sub-shape type.
	AllTypes
)

// NumTypes is the number of concrete shape types.
const NumTypes = int(Compound) + 1

var typeNames = [...]string{
	Vertex:   "vertex",
	Edge:     "edge",
	Wire:     "wire",
	Face:     "face",
	Shell:    "shell",
	Solid:    "solid",
	Compound: "compound",
	AllTypes: "all",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Valid reports whether t is a concrete shape type.
func (t Type) Valid() bool {
	return t <= Compound
}

// IsGrouping reports whether shapes of this type are pure groupings whose
// submesh is made of child submeshes.
func (t Type) IsGrouping() bool {
	return t == Wire || t == Shell || t == Compound
}

// Below returns the concrete types strictly below t, from Vertex upwards.
func (t Type) Below() []Type {
	if t > Compound {
		t = Compound
	}
	out := make([]Type, 0, int(t))
	for d := Vertex; d < t; d++ {
		out = append(out, d)
	}
	return out
}

// ParseType parses the lower-case name of a type.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape type %q", s)
}

// Key is the structural identity of a shape. Two shapes are equal exactly
// when their keys are equal.
type Key uint64

// Index is the persistent integer identity a registry assigns to a shape.
// NoIndex is never assigned.
type Index int32

// NoIndex is the not-found sentinel.
const NoIndex Index = 0

// Valid reports whether i can refer to an indexed shape.
func (i Index) Valid() bool {
	return i > NoIndex
}
