package wfc

import "strings"

// BoundaryHook restricts cell domains at the grid's faces before solving
// starts. It is invoked exactly once, after allocation, and may mutate
// cells in place or return a replacement slice — but the replacement must
// have exactly w*d*h entries in the same order as the slice it was given
// (x fastest, then z, then y), or Generate fails with InvalidInputError.
type BoundaryHook func(cells []*Cell, w, d, h int) ([]*Cell, error)

// RegionPredicate decides whether prototype protoID remains possible at
// position (x,z,y) of a w x d x h grid. Returning false removes it from
// that cell's domain. This is the declarative alternative to writing a raw
// BoundaryHook closure: ApplyBoundary turns any RegionPredicate into a
// BoundaryHook.
type RegionPredicate func(x, z, y, w, d, h int, protoID int) bool

// ApplyBoundary builds a BoundaryHook that, for every cell, removes every
// prototype id for which pred returns false.
func ApplyBoundary(catalog *Catalog, pred RegionPredicate) BoundaryHook {
	return func(cells []*Cell, w, d, h int) ([]*Cell, error) {
		for _, c := range cells {
			toRemove := newProtoSet(catalog.Len())
			c.domain.iterate(func(id int) {
				if !pred(c.X, c.Z, c.Y, w, d, h, id) {
					toRemove.add(id)
				}
			})
			if toRemove.isEmpty() {
				continue
			}
			if _, err := c.removeProbabilities(toRemove); err != nil {
				return nil, err
			}
		}
		return cells, nil
	}
}

// interiorXZ reports whether (x,z) is strictly inside the grid's X/Z
// footprint, ignoring height.
func interiorXZ(x, z, w, d int) bool {
	return x > 0 && x < w-1 && z > 0 && z < d-1
}

// TerrainBoundaryHook builds the canonical boundary hook described in
// spec §4.D: interior cells below the top layer lose any prototype whose
// description mentions "Vertical"; the interior cells of the top layer and
// the cells on the four side faces (and the vertical edges where two side
// faces meet) are restricted to prototypes carrying the "-1" no-neighbor
// sentinel on the corresponding socket. Top-layer cells on the side faces
// get only the side-face restriction, not the posY one.
func TerrainBoundaryHook(catalog *Catalog) BoundaryHook {
	pred := func(x, z, y, w, d, h, protoID int) bool {
		p := catalog.Prototype(protoID)
		ok := true
		interior := interiorXZ(x, z, w, d)
		if interior && y == h-1 {
			ok = ok && p.PosY == "-1"
		}
		if interior && y < h-1 {
			ok = ok && !strings.Contains(p.Description, "Vertical")
		}
		if !interior {
			if x == w-1 {
				ok = ok && p.PosX == "-1"
			}
			if x == 0 {
				ok = ok && p.NegX == "-1"
			}
			if z == d-1 {
				ok = ok && p.PosZ == "-1"
			}
			if z == 0 {
				ok = ok && p.NegZ == "-1"
			}
		}
		return ok
	}
	return ApplyBoundary(catalog, pred)
}
