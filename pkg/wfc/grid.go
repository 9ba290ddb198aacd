package wfc

// Grid is a 3D array of cells, indexed [x][z][y], dimensions W x D x H.
// It is owned exclusively by one solver attempt and discarded on retry.
type Grid struct {
	catalog *Catalog
	W, D, H int
	cells   []*Cell // flat, row-major: index(x,z,y)
}

func (g *Grid) index(x, z, y int) int {
	return (y*g.D+z)*g.W + x
}

// InBounds reports whether (x,z,y) lies within the grid.
func (g *Grid) InBounds(x, z, y int) bool {
	return x >= 0 && x < g.W && z >= 0 && z < g.D && y >= 0 && y < g.H
}

// Get returns the cell at (x,z,y). Panics if out of bounds.
func (g *Grid) Get(x, z, y int) *Cell {
	if !g.InBounds(x, z, y) {
		panic("wfc: grid coordinates out of bounds")
	}
	return g.cells[g.index(x, z, y)]
}

// ForEach visits every cell in row-major (x fastest, then z, then y) order.
func (g *Grid) ForEach(f func(c *Cell)) {
	for _, c := range g.cells {
		f(c)
	}
}

// IsFinished reports whether every cell is collapsed (I6 globally).
func (g *Grid) IsFinished() bool {
	for _, c := range g.cells {
		if !c.Collapsed() {
			return false
		}
	}
	return true
}

// neighbor returns the cell across face f from (x,z,y), or nil if that
// would fall outside the grid.
func (g *Grid) neighbor(x, z, y int, f Face) *Cell {
	dx, dz, dy := f.offset()
	nx, nz, ny := x+dx, z+dz, y+dy
	if !g.InBounds(nx, nz, ny) {
		return nil
	}
	return g.Get(nx, nz, ny)
}

// allocateGrid builds a fresh W x D x H grid where every cell's domain is
// the full catalog. Dimensions must each be >= 1; that is enforced by the
// caller (Generate) before allocateGrid is invoked.
func allocateGrid(catalog *Catalog, w, d, h int) *Grid {
	g := &Grid{catalog: catalog, W: w, D: d, H: h, cells: make([]*Cell, w*d*h)}
	full := fullProtoSet(catalog.Len())
	for y := 0; y < h; y++ {
		for z := 0; z < d; z++ {
			for x := 0; x < w; x++ {
				g.cells[g.index(x, z, y)] = newCell(catalog, full, x, z, y)
			}
		}
	}
	return g
}
