package wfc

// Placement is the collapsed state of one grid cell: which prototype
// survived and the rotation it carries.
type Placement struct {
	PrototypeID int
	Rotation    int
}

// Result is the solver's output: every grid position mapped to its final
// placement, indexed [x][z][y].
type Result struct {
	W, D, H int
	cells   [][][]Placement
}

// At returns the placement chosen for (x,z,y).
func (r *Result) At(x, z, y int) Placement {
	return r.cells[x][z][y]
}

// extractResult walks a fully collapsed grid and emits its placements. The
// grid must satisfy IsFinished(); extractResult does not check this itself
// since Generate only calls it once that invariant holds.
func extractResult(g *Grid) *Result {
	r := &Result{W: g.W, D: g.D, H: g.H}
	r.cells = make([][][]Placement, g.W)
	for x := 0; x < g.W; x++ {
		r.cells[x] = make([][]Placement, g.D)
		for z := 0; z < g.D; z++ {
			r.cells[x][z] = make([]Placement, g.H)
			for y := 0; y < g.H; y++ {
				p := g.Get(x, z, y).Prototype()
				r.cells[x][z][y] = Placement{PrototypeID: p.ID, Rotation: p.Rotation}
			}
		}
	}
	return r
}
