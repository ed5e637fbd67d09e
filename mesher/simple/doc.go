// Package simple is a reference mesher for straight-edged, planar-faced
// shapes. Every submesh it writes is self-contained: it stores the nodes
// its own cells refer to.
//
//   - vertices get one node and a Point1 cell
//   - edges are split into Line2 segments no longer than MaxSize
//   - faces get a Tri3 fan over the ordered vertices of their outer wire
//   - solids (Volume only) get a Tet4 fan from their centroid over the
//     face triangles
package simple
