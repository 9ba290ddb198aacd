package wfc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustCatalog(t *testing.T, protos []Prototype) *Catalog {
	t.Helper()
	cat, err := BuildCatalog(protos)
	require.NoError(t, err)
	return cat
}

// TestEntropyZeroIffCollapsed is testable property 5.
func TestEntropyZeroIffCollapsed(t *testing.T) {
	cat := mustCatalog(t, []Prototype{
		symmetricalPrototype("a", 1),
		symmetricalPrototype("b", 9),
		symmetricalPrototype("c", 9),
	})
	c := newCell(cat, fullProtoSet(cat.Len()), 0, 0, 0)
	require.False(t, c.Collapsed())
	require.Greater(t, c.Entropy(), 0.0)

	only := newProtoSet(cat.Len())
	only.add(0)
	keep := only
	remove := fullProtoSet(cat.Len())
	remove.subInPlace(keep)
	_, err := c.removeProbabilities(remove)
	require.NoError(t, err)
	require.True(t, c.Collapsed())
	require.Equal(t, 0.0, c.Entropy())
}

func TestRemoveProbabilitiesEmptyingIsContradiction(t *testing.T) {
	cat := mustCatalog(t, []Prototype{symmetricalPrototype("a", 1)})
	c := newCell(cat, fullProtoSet(cat.Len()), 1, 2, 3)
	all := fullProtoSet(cat.Len())
	_, err := c.removeProbabilities(all)
	require.Error(t, err)
	var ce *ContradictionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, 1, ce.X)
	require.Equal(t, 2, ce.Z)
	require.Equal(t, 3, ce.Y)
}

func TestCollapseIsNoopWhenAlreadySingleton(t *testing.T) {
	cat := mustCatalog(t, []Prototype{symmetricalPrototype("a", 1)})
	c := newCell(cat, fullProtoSet(cat.Len()), 0, 0, 0)
	require.True(t, c.Collapsed())
	c.collapse(NewRNG(1))
	require.True(t, c.Collapsed())
	require.Equal(t, 0, c.Prototype().ID)
}

// TestCollapseWeightDistribution is a lightweight version of scenario S6:
// over many seeds, a 1:9 weight split should land near 10%/90%.
func TestCollapseWeightDistribution(t *testing.T) {
	cat := mustCatalog(t, []Prototype{
		symmetricalPrototype("rare", 1),
		symmetricalPrototype("common", 9),
	})
	const trials = 4000
	counts := [2]int{}
	for seed := int64(0); seed < trials; seed++ {
		c := newCell(cat, fullProtoSet(cat.Len()), 0, 0, 0)
		c.collapse(NewRNG(seed))
		counts[c.Prototype().ID]++
	}
	rareFrac := float64(counts[0]) / float64(trials)
	require.InDelta(t, 0.10, rareFrac, 0.03)
}

// TestNeighborUnionMatchesDomain is testable invariant I4.
func TestNeighborUnionMatchesDomain(t *testing.T) {
	a := symmetricalPrototype("a", 1)
	b := symmetricalPrototype("b", 1)
	b.PosX, b.NegX = "x", "xF"
	cat := mustCatalog(t, []Prototype{a, b})

	c := newCell(cat, fullProtoSet(cat.Len()), 0, 0, 0)
	for _, f := range faceOrder {
		want := newProtoSet(cat.Len())
		c.domain.iterate(func(id int) {
			want.unionInPlace(cat.Neighbors(id, f))
		})
		require.True(t, want.equal(c.neighborUnion[f]))
	}
}
