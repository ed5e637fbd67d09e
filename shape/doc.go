// Package shape defines the topology vocabulary shared by the registry and
// the geometry kernel.
//
// A Shape is an opaque value handed out by a B-rep kernel. The registry only
// relies on four things: the shape's Type, a structural identity Key, the
// immediate children and the ability to explore all descendants of a type.
//
// # Type ordering
//
// Types are ordered by containment depth:
//
//	Vertex < Edge < Wire < Face < Shell < Solid < Compound
//
// A shape can only contain shapes of a lower type, with the single exception
// of compounds, which may nest.
package shape
