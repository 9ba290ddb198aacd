package wfc

import "context"

// NewPrototype2D builds a Prototype for 2D use: the vertical sockets are
// forced equal (conventionally "S") so every prototype is its own vertical
// neighbor and the Y axis never constrains anything, per spec §9's
// resolution of the "Prototype2D" Open Question (2D is the 3D core with
// the Y axis dropped, not a parallel type).
func NewPrototype2D(description string, tile any, weight, rotation int, posX, negX, posZ, negZ string) Prototype {
	return Prototype{
		Description: description,
		Tile:        tile,
		Weight:      weight,
		Rotation:    rotation,
		PosX:        posX,
		NegX:        negX,
		PosZ:        posZ,
		NegZ:        negZ,
		PosY:        "S",
		NegY:        "S",
	}
}

// Generate2D solves a W x D grid (H fixed at 1). The catalog's prototypes
// must all share an equal posY/negY label (NewPrototype2D arranges this).
func (s *Solver) Generate2D(ctx context.Context, w, d int) (*Result, error) {
	return s.Generate(ctx, w, d, 1)
}
