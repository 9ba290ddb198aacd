package wfc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocateGridDimensionsAndFullDomain(t *testing.T) {
	cat := mustCatalog(t, []Prototype{
		symmetricalPrototype("a", 1),
		symmetricalPrototype("b", 1),
	})
	g := allocateGrid(cat, 3, 2, 4)
	require.Equal(t, 3*2*4, len(g.cells))
	require.False(t, g.IsFinished())

	count := 0
	g.ForEach(func(c *Cell) {
		count++
		require.Equal(t, cat.Len(), c.DomainSize())
	})
	require.Equal(t, 3*2*4, count)
}

func TestGridNeighborRespectsBounds(t *testing.T) {
	cat := mustCatalog(t, []Prototype{symmetricalPrototype("a", 1)})
	g := allocateGrid(cat, 2, 2, 1)

	require.Nil(t, g.neighbor(0, 0, 0, NegX))
	require.NotNil(t, g.neighbor(0, 0, 0, PosX))
	require.Nil(t, g.neighbor(0, 0, 0, PosY))
	require.Nil(t, g.neighbor(0, 0, 0, NegY))
}

func TestGridIsFinishedWhenEveryCellCollapsed(t *testing.T) {
	cat := mustCatalog(t, []Prototype{symmetricalPrototype("only", 1)})
	g := allocateGrid(cat, 2, 2, 2)
	require.True(t, g.IsFinished(), "a single-prototype catalog starts fully collapsed")
}
