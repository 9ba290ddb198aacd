// Package wfc implements a Wave Function Collapse constraint solver over a
// 3D grid of tile prototypes. Prototypes carry per-face socket labels; the
// solver derives a neighbor relation from those labels, then repeatedly
// collapses the lowest-entropy open cell and propagates the resulting
// constraint until every cell holds exactly one prototype, or the attempt
// is abandoned as a contradiction and retried.
//
// The package does not know about meshes, rendering, or asset storage. It
// consumes a catalog of prototypes (id, sockets, weight, rotation, opaque
// tile payload) and produces a Result mapping every grid coordinate to a
// chosen prototype id and rotation.
package wfc
