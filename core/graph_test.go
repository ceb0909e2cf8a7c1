package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meldheap/core"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.False(t, g.HasVertex(""))
	assert.Equal(t, 1, g.VertexCount())
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 3)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("", "A", 0)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("A", "B", 0, core.WithEdgeDirected(true))
	assert.ErrorIs(t, err, core.ErrMixedEdgesNotAllowed)

	id, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.Equal(t, "e1", id)
	_, err = g.AddEdge("B", "A", 0) // mirror of an undirected edge
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	m := core.NewGraph(core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	_, err = m.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = m.AddEdge("A", "B", 2)
	require.NoError(t, err)
	_, err = m.AddEdge("A", "A", 5)
	require.NoError(t, err)
	assert.Equal(t, 3, m.EdgeCount())
}

func TestGraph_NeighborsUndirected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "A", 2)

	nb, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nb, 2)
	assert.Equal(t, "B", nb[0].Other("A"))
	assert.Equal(t, "C", nb[1].Other("A"))

	nb, err = g.Neighbors("C")
	require.NoError(t, err)
	require.Len(t, nb, 1)
	assert.Equal(t, "A", nb[0].Other("C"))

	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_NeighborsDirectedAndMixed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	nb, _ := g.Neighbors("B")
	assert.Empty(t, nb)
	assert.True(t, g.HasDirectedEdges())

	m := core.NewGraph(core.WithWeighted(), core.WithMixedEdges())
	_, _ = m.AddEdge("A", "B", 1, core.WithEdgeDirected(true))
	_, _ = m.AddEdge("B", "C", 1)
	nb, _ = m.Neighbors("B")
	require.Len(t, nb, 1)
	assert.Equal(t, "C", nb[0].Other("B"))
	assert.True(t, m.HasDirectedEdges())
	assert.False(t, m.Directed())
}

func TestGraph_EdgesInInsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("A", "B", int64(i))
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		assert.Equal(t, fmt.Sprintf("e%d", i+1), e.ID) // e10 after e9
		assert.Equal(t, int64(i), e.Weight)
	}
	assert.Equal(t, []string{"A", "B"}, g.Vertices())
}

func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_, err := g.AddEdge(fmt.Sprintf("v%d", w), fmt.Sprintf("v%d", i%10), int64(i))
				if err != nil && err != core.ErrLoopNotAllowed {
					t.Errorf("AddEdge: %v", err)
				}
				_, _ = g.Neighbors(fmt.Sprintf("v%d", w))
			}
		}(w)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, e := range g.Edges() {
		assert.False(t, seen[e.ID], "duplicate edge ID %s", e.ID)
		seen[e.ID] = true
	}
	// each worker skips the 10 iterations that would form a loop on itself
	assert.Equal(t, 8*90, g.EdgeCount())
}
