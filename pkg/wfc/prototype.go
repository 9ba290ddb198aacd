package wfc

// Prototype is an immutable tile archetype. ID is its index into the
// catalog's backing slice and is the handle used everywhere else in the
// package (cell domains, neighbor sets, results) instead of a pointer, so
// that catalog and cell state never form an ownership cycle.
type Prototype struct {
	ID          int
	Description string // opaque; used only by boundary hooks and debugging
	Tile        any    // opaque payload passed through to the caller
	Weight      int    // strictly positive
	Rotation    int    // 0..3, carried through to the output untouched

	PosX, NegX string
	PosZ, NegZ string
	PosY, NegY string
}

// socket returns the label on face f.
func (p *Prototype) socket(f Face) string {
	switch f {
	case PosX:
		return p.PosX
	case NegX:
		return p.NegX
	case PosZ:
		return p.PosZ
	case NegZ:
		return p.NegZ
	case PosY:
		return p.PosY
	case NegY:
		return p.NegY
	default:
		panic("wfc: invalid face")
	}
}

// Catalog is a frozen set of prototypes plus their derived per-face
// neighbor sets. Read-only after BuildCatalog returns; multiple solvers may
// share one catalog concurrently.
type Catalog struct {
	prototypes []Prototype
	neighbors  [6][]protoSet // neighbors[f][id] = prototypes compatible across face f
}

// Len returns the number of prototypes in the catalog.
func (c *Catalog) Len() int { return len(c.prototypes) }

// Prototype returns the prototype with the given id.
func (c *Catalog) Prototype(id int) *Prototype { return &c.prototypes[id] }

// Neighbors returns the set of prototype ids compatible with id across
// face f (I2).
func (c *Catalog) Neighbors(id int, f Face) protoSet {
	return c.neighbors[f][id]
}

// BuildCatalog derives every prototype's per-face neighbor set from its
// sockets. For every ordered pair (p, q) and every face f, q joins p's
// f-neighbor set iff socketMatch(p.f, q.opposite(f), f) holds; (p, p) is
// tested like any other pair, so a prototype may be its own neighbor.
//
// Neighbor derivation is total: once the input is accepted it never fails.
// BuildCatalog returns *InvalidInputError only for an empty prototype list
// or a weight below 1. A prototype whose posY/negY never matches anything
// ends up with an empty neighbor set on that face, which is a legitimate
// modeling choice (it simply cannot be placed there).
func BuildCatalog(prototypes []Prototype) (*Catalog, error) {
	if len(prototypes) == 0 {
		return nil, &InvalidInputError{Reason: "prototype catalog is empty"}
	}
	cat := &Catalog{prototypes: make([]Prototype, len(prototypes))}
	for i, p := range prototypes {
		if p.Weight < 1 {
			return nil, &InvalidInputError{Reason: "prototype weight must be >= 1"}
		}
		p.ID = i
		cat.prototypes[i] = p
	}

	n := len(cat.prototypes)
	for _, f := range faceOrder {
		sets := make([]protoSet, n)
		for i := range sets {
			sets[i] = newProtoSet(n)
		}
		opp := f.opposite()
		for i := range cat.prototypes {
			p := &cat.prototypes[i]
			for j := range cat.prototypes {
				q := &cat.prototypes[j]
				if socketMatch(p.socket(f), q.socket(opp), f) {
					sets[i].add(j)
				}
			}
		}
		cat.neighbors[f] = sets
	}
	return cat, nil
}
