package wfc

import (
	"context"
	"errors"
	"log"
)

// Options configures a Solver. PropagationDepth and RetryCount each accept
// -1 to mean "unbounded", matching spec §6.
type Options struct {
	PropagationDepth int // -1 = unbounded, otherwise a cap on recursive propagation depth
	RetryCount       int // -1 = unbounded, otherwise a cap on contradiction-driven restarts
	Seed             int64
	Hook             BoundaryHook // optional; applied once per attempt, before solving
	Selector         CellSelector // optional; defaults to minimum-positive-entropy scan
	Logger           *log.Logger  // optional; nil disables contradiction/retry reporting
}

// Solver runs one grid generation, possibly across several internal
// retries, single-threaded and synchronous within an attempt (spec §5).
// Solver instances are not shared across goroutines; the catalog they
// reference may be.
type Solver struct {
	catalog  *Catalog
	rng      RNG
	selector CellSelector
	opts     Options
}

// NewSolver validates opts against catalog and returns a ready-to-run
// Solver.
func NewSolver(catalog *Catalog, opts Options) (*Solver, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, &InvalidInputError{Reason: "catalog is empty"}
	}
	if opts.PropagationDepth < -1 {
		return nil, &InvalidInputError{Reason: "propagationDepth must be -1 or >= 0"}
	}
	if opts.RetryCount < -1 {
		return nil, &InvalidInputError{Reason: "retryCount must be -1 or >= 0"}
	}
	sel := opts.Selector
	if sel == nil {
		sel = minEntropySelector{}
	}
	return &Solver{
		catalog:  catalog,
		rng:      NewRNG(opts.Seed),
		selector: sel,
		opts:     opts,
	}, nil
}

// Generate solves a W x D x H grid. It returns ErrCancelled if ctx is
// cancelled between observation iterations or at the start of a
// propagation step, *RetryCountExceededError if the retry budget is
// exhausted, or *InvalidInputError for malformed dimensions or a
// dimension-changing boundary hook.
func (s *Solver) Generate(ctx context.Context, w, d, h int) (*Result, error) {
	if w < 1 || d < 1 || h < 1 {
		return nil, &InvalidInputError{Reason: "grid dimensions must each be >= 1"}
	}

	retries := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ErrCancelled
		default:
		}

		grid := allocateGrid(s.catalog, w, d, h)
		if s.opts.Hook != nil {
			newCells, err := s.opts.Hook(grid.cells, w, d, h)
			if err != nil {
				var contra *ContradictionError
				if errors.As(err, &contra) {
					if exceeded, rerr := s.bumpRetry(&retries, contra); exceeded {
						return nil, rerr
					}
					continue
				}
				return nil, err
			}
			if len(newCells) != w*d*h {
				return nil, &InvalidInputError{Reason: "boundary hook returned a differently-dimensioned cell array"}
			}
			grid.cells = newCells
		}

		err := s.runAttempt(ctx, grid)
		if err == nil {
			return extractResult(grid), nil
		}
		if errors.Is(err, ErrCancelled) {
			return nil, err
		}
		var contra *ContradictionError
		if errors.As(err, &contra) {
			if exceeded, rerr := s.bumpRetry(&retries, contra); exceeded {
				return nil, rerr
			}
			continue
		}
		return nil, err
	}
}

// bumpRetry reports the contradiction that triggered this retry, increments
// the retry counter, and reports whether the budget is now exhausted; if so
// it returns the fatal error to surface.
func (s *Solver) bumpRetry(retries *int, last *ContradictionError) (bool, error) {
	if s.opts.Logger != nil {
		s.opts.Logger.Printf("wfc: retry %d: %v", *retries+1, last)
	}
	*retries++
	if s.opts.RetryCount != -1 && *retries > s.opts.RetryCount {
		return true, &RetryCountExceededError{RetryCount: s.opts.RetryCount, Last: last}
	}
	return false, nil
}

// runAttempt performs the seed step and observation loop for one grid
// allocation. It returns a *ContradictionError on any cell emptying, or
// ErrCancelled if ctx is cancelled mid-attempt.
func (s *Solver) runAttempt(ctx context.Context, g *Grid) error {
	// Seed step: a uniformly random cell, regardless of entropy. A pure
	// lowest-entropy seed would always start on a boundary-constrained cell
	// (those start with lower entropy than the interior), biasing every run
	// toward the same corner.
	sx := s.rng.Intn(g.W)
	sz := s.rng.Intn(g.D)
	sy := s.rng.Intn(g.H)
	seed := g.Get(sx, sz, sy)
	seed.collapse(s.rng)
	if err := s.propagate(ctx, g, seed); err != nil {
		return err
	}

	for !g.IsFinished() {
		select {
		case <-ctx.Done():
			return ErrCancelled
		default:
		}

		selected := s.selector.Select(g)
		if selected == nil {
			break // every cell already collapsed
		}
		selected.collapse(s.rng)
		if err := s.propagate(ctx, g, selected); err != nil {
			return err
		}
	}
	return nil
}

// propFrame is one pending propagation step: a cell to re-check and the
// recursion depth it would have had under the naive recursive formulation.
type propFrame struct {
	cell  *Cell
	depth int
}

// propagate shrinks neighbors' domains outward from origin to maintain
// pairwise socket compatibility, as an explicit work stack rather than Go
// call recursion (spec §9's "Recursive propagation" redesign flag), so
// propagationDepth=-1 cannot overflow the stack on a large grid.
//
// The depth cap gates recursion, not the base call: the origin frame always
// restricts its immediate neighbors (so a freshly collapsed cell's neighbors
// are never skipped, even at propagationDepth=0). Every cell shrunk by a
// frame is pushed back on; a frame past the cap only re-checks its own cell
// against its neighbors and does not restrict them further outward.
func (s *Solver) propagate(ctx context.Context, g *Grid, origin *Cell) error {
	stack := []propFrame{{cell: origin, depth: 0}}
	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return ErrCancelled
		default:
		}

		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cell := frame.cell

		invalid := newProtoSet(s.catalog.Len())
		type pendingShrink struct {
			neighbor *Cell
			set      protoSet
		}
		var shrinks []pendingShrink
		expand := frame.depth == 0 || s.opts.PropagationDepth == -1 || frame.depth < s.opts.PropagationDepth

		for _, f := range faceOrder {
			neighbor := g.neighbor(cell.X, cell.Z, cell.Y, f)
			if neighbor == nil {
				continue
			}
			invalidHere := cell.domain.sub(neighbor.neighborUnion[f.opposite()])
			invalid.unionInPlace(invalidHere)
			if !expand {
				continue
			}

			shrinkNeighbor := neighbor.domain.sub(cell.neighborUnion[f])
			if !shrinkNeighbor.isEmpty() {
				shrinks = append(shrinks, pendingShrink{neighbor: neighbor, set: shrinkNeighbor})
			}
		}

		if !invalid.isEmpty() {
			if _, err := cell.removeProbabilities(invalid); err != nil {
				return err
			}
		}
		for _, sh := range shrinks {
			if _, err := sh.neighbor.removeProbabilities(sh.set); err != nil {
				return err
			}
			stack = append(stack, propFrame{cell: sh.neighbor, depth: frame.depth + 1})
		}
	}
	return nil
}
