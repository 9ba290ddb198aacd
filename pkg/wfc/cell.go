package wfc

import "math"

// Cell is a grid position's mutable state: the still-possible subset of
// prototype ids (domain), a cached Shannon entropy over that subset's
// weights, and a per-face cache of the union of neighbor sets across the
// current domain (used by propagation to bound an adjacent cell without
// rescanning this cell's whole domain each time).
type Cell struct {
	X, Z, Y int

	catalog       *Catalog
	domain        protoSet
	entropy       float64
	neighborUnion [6]protoSet
}

// newCell copies initial into the cell's domain and computes entropy and
// neighborUnion from it (I4). initial is not retained by reference.
func newCell(catalog *Catalog, initial protoSet, x, z, y int) *Cell {
	c := &Cell{
		X: x, Z: z, Y: y,
		catalog: catalog,
		domain:  initial.clone(),
	}
	c.recompute()
	return c
}

// recompute refreshes entropy and neighborUnion from the current domain.
// Must be called after every mutation of c.domain.
func (c *Cell) recompute() {
	c.entropy = shannonEntropy(c.catalog, c.domain)
	for _, f := range faceOrder {
		union := newProtoSet(c.catalog.Len())
		c.domain.iterate(func(id int) {
			union.unionInPlace(c.catalog.Neighbors(id, f))
		})
		c.neighborUnion[f] = union
	}
}

// shannonEntropy computes H = ln(W) - (Σ w·ln(w))/W over the weights of
// the prototypes in dom, where W = Σ w. Returns 0 for an empty or
// singleton domain, matching I6 ("entropy == 0 iff collapsed") by
// convention even though a mathematically singleton distribution also has
// zero entropy.
func shannonEntropy(catalog *Catalog, dom protoSet) float64 {
	if dom.count() <= 1 {
		return 0
	}
	var totalWeight float64
	var weightedLog float64
	dom.iterate(func(id int) {
		w := float64(catalog.Prototype(id).Weight)
		totalWeight += w
		weightedLog += w * math.Log(w)
	})
	if totalWeight == 0 {
		return 0
	}
	return math.Log(totalWeight) - weightedLog/totalWeight
}

// Collapsed reports whether the cell's domain has exactly one prototype.
func (c *Cell) Collapsed() bool { return c.domain.count() == 1 }

// Entropy returns the cell's cached Shannon entropy (0 iff collapsed).
func (c *Cell) Entropy() float64 { return c.entropy }

// DomainSize returns |domain|.
func (c *Cell) DomainSize() int { return c.domain.count() }

// Prototype returns the cell's sole surviving prototype. Behavior is
// undefined if the cell is not collapsed; callers must check Collapsed
// first.
func (c *Cell) Prototype() *Prototype {
	var p *Prototype
	c.domain.iterate(func(id int) {
		if p == nil {
			p = c.catalog.Prototype(id)
		}
	})
	return p
}

// removeProbabilities removes every id in s from the domain, then
// recomputes entropy and neighborUnion. Returns true iff the domain is now
// a singleton. Returns a *ContradictionError if the domain becomes empty;
// the domain is left empty in that case (the cell is discarded on retry).
func (c *Cell) removeProbabilities(s protoSet) (bool, error) {
	if c.domain.sub(s).equal(c.domain) {
		return c.Collapsed(), nil
	}
	c.domain.subInPlace(s)
	if c.domain.isEmpty() {
		return false, &ContradictionError{X: c.X, Z: c.Z, Y: c.Y}
	}
	c.recompute()
	return c.Collapsed(), nil
}

// collapse performs a weighted random pick over the current domain and
// replaces it with the singleton chosen. A no-op if already collapsed.
func (c *Cell) collapse(rng RNG) {
	if c.Collapsed() {
		return
	}
	ids := c.domain.ids()
	total := 0
	for _, id := range ids {
		total += c.catalog.Prototype(id).Weight
	}
	r := rng.Intn(total) + 1 // uniform over [1, total]
	running := 0
	chosen := ids[len(ids)-1]
	for _, id := range ids {
		running += c.catalog.Prototype(id).Weight
		if running >= r {
			chosen = id
			break
		}
	}
	c.domain = newProtoSet(c.catalog.Len())
	c.domain.add(chosen)
	c.recompute()
}
