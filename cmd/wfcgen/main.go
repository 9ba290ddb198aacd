// Command wfcgen runs the wfc solver over a small built-in catalog and
// prints the resulting grid to stdout. It exists to exercise Solver.Generate
// end-to-end from the command line, the way examples/n-queens/main.go in
// the teacher repo exercised its own solver.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gitrdm/gokanwfc/pkg/wfc"
)

func main() {
	width := flag.Int("w", 5, "grid width (X)")
	depth := flag.Int("d", 5, "grid depth (Z)")
	height := flag.Int("h", 3, "grid height (Y)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "RNG seed")
	retries := flag.Int("retries", 64, "retry budget (-1 for unbounded)")
	flag.Parse()

	catalog, err := wfc.BuildCatalog(demoPrototypes())
	if err != nil {
		fmt.Fprintln(os.Stderr, "build catalog:", err)
		os.Exit(1)
	}

	solver, err := wfc.NewSolver(catalog, wfc.Options{
		PropagationDepth: -1,
		RetryCount:       *retries,
		Seed:             *seed,
		Hook:             wfc.TerrainBoundaryHook(catalog),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "new solver:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := solver.Generate(ctx, *width, *depth, *height)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate:", err)
		os.Exit(1)
	}

	for y := 0; y < *height; y++ {
		fmt.Printf("layer y=%d\n", y)
		for z := 0; z < *depth; z++ {
			for x := 0; x < *width; x++ {
				p := result.At(x, z, y)
				fmt.Printf("%-10s", catalog.Prototype(p.PrototypeID).Description)
			}
			fmt.Println()
		}
	}
}

// demoPrototypes is a minimal terrain catalog. Every prototype shares the
// "-1" sentinel on its horizontal faces, so the catalog tiles freely in X/Z
// and also already satisfies TerrainBoundaryHook's side-face restriction.
// The vertical faces form a simple stack: Ground at the bottom, any number
// of Vertical Pillar segments, capped by Sky — the only prototype with
// posY=="-1", which is exactly what the hook forces onto the top layer.
func demoPrototypes() []wfc.Prototype {
	return []wfc.Prototype{
		{
			Description: "Ground", Weight: 6, Rotation: 0,
			PosX: "-1", NegX: "-1", PosZ: "-1", NegZ: "-1",
			PosY: "0", NegY: "-1",
		},
		{
			Description: "Vertical Pillar", Weight: 1, Rotation: 0,
			PosX: "-1", NegX: "-1", PosZ: "-1", NegZ: "-1",
			PosY: "0", NegY: "0",
		},
		{
			Description: "Sky", Weight: 1, Rotation: 0,
			PosX: "-1", NegX: "-1", PosZ: "-1", NegZ: "-1",
			PosY: "-1", NegY: "0",
		},
	}
}
