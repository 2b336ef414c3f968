// Package stroke converts flattened polylines into filled outlines.
//
// Each subpath is expanded into two offset polylines at ±width/2:
//   - Forward side: offset against the left-hand normal, in path order
//   - Backward side: offset along the normal, later reversed
//
// Open subpaths become one polygon: forward side, end cap, reversed
// backward side, start cap. Closed subpaths become two loops of opposite
// orientation joined at the start vertex. The resulting polygons are
// meant to be filled with the nonzero rule; overlaps at inner joins and
// self-intersecting paths are absorbed by the winding count.
//
// # Line Joins
//
//   - JoinMiter: sharp corner, falling back to bevel when the miter
//     length exceeds MiterLimit times the width
//   - JoinRound: circular arc around the vertex
//   - JoinBevel: straight line across the corner
//
// # Line Caps
//
//   - CapButt: flat end exactly at the endpoint
//   - CapRound: semicircle of radius width/2
//   - CapSquare: square extending width/2 beyond the endpoint
//
// Zero-length subpaths produce a dot for round and square caps and
// nothing for butt caps. A subpath made of a lone move produces nothing.
//
// The algorithm follows the forward/backward construction of kurbo and
// tiny-skia.
package stroke
