package heap_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meldheap/heap"
)

func TestFibonacci_InsertIsLazy(t *testing.T) {
	h := heap.NewFibonacci[int]()
	for i := 0; i < 10; i++ {
		_, err := h.Push(i, int64(10-i))
		require.NoError(t, err)
	}
	assert.Equal(t, make([]int, 10), heap.RootDegrees[int](h))
	assert.Equal(t, int64(1), h.Minimum().Key())
	assert.Same(t, h.Minimum(), h.Root())
}

func TestFibonacci_ConsolidateLeavesDistinctDegrees(t *testing.T) {
	h := heap.NewFibonacci[int]()
	for i := 0; i < 16; i++ {
		_, _ = h.Push(i, int64(i))
	}
	require.Equal(t, 0, h.ExtractMin().Data)

	degrees := heap.RootDegrees[int](h)
	sort.Ints(degrees)
	assert.Equal(t, []int{0, 1, 2, 3}, degrees)
	assert.Equal(t, int64(1), h.Minimum().Key())
	assert.NoError(t, heap.Validate[int](h))
}

// TestFibonacci_CascadingCut cuts two children of the same non-root node.
// The first cut marks the parent; the second cuts the parent too.
func TestFibonacci_CascadingCut(t *testing.T) {
	h := heap.NewFibonacci[int]()
	for i := 0; i < 16; i++ {
		_, _ = h.Push(i, int64(i))
	}
	_ = h.ExtractMin()

	var r *heap.Node[int]
	for _, x := range heap.Roots[int](h) {
		if x.Degree() == 3 {
			r = x
		}
	}
	require.NotNil(t, r)
	var p *heap.Node[int]
	for _, x := range heap.Children(r) {
		if x.Degree() == 2 {
			p = x
		}
	}
	require.NotNil(t, p)
	kids := heap.Children(p)
	require.Len(t, kids, 2)

	got, err := h.DecreaseKey(kids[0], 0)
	require.NoError(t, err)
	assert.Same(t, kids[0], got, "Fibonacci nodes keep their payload")
	assert.Nil(t, kids[0].Parent())
	assert.True(t, p.Marked())
	assert.Equal(t, 1, p.Degree())
	assert.Same(t, r, p.Parent())
	require.NoError(t, heap.Validate[int](h))

	_, err = h.DecreaseKey(kids[1], 0)
	require.NoError(t, err)
	assert.Nil(t, kids[1].Parent())
	assert.Nil(t, p.Parent(), "marked parent is cut as well")
	assert.False(t, p.Marked())
	assert.False(t, r.Marked(), "roots are never marked")
	assert.Equal(t, 2, r.Degree())
	assert.Equal(t, int64(0), h.Minimum().Key())
	assert.Equal(t, 15, h.Len())
	assert.NoError(t, heap.Validate[int](h))
}

func TestFibonacci_DecreaseWithoutViolationKeepsShape(t *testing.T) {
	h := heap.NewFibonacci[int]()
	for i := 0; i < 8; i++ {
		_, _ = h.Push(i, int64(10*i))
	}
	_ = h.ExtractMin()

	var leaf *heap.Node[int]
	heap.Walk[int](h, func(n *heap.Node[int], depth int) bool {
		if depth > 0 && n.Degree() == 0 {
			leaf = n
			return false
		}
		return true
	})
	require.NotNil(t, leaf)
	parent := leaf.Parent()

	_, err := h.DecreaseKey(leaf, parent.Key()+1)
	require.NoError(t, err)
	assert.Same(t, parent, leaf.Parent())
	assert.False(t, parent.Marked())
}

func TestFibonacci_DeleteKeepsNodeIdentity(t *testing.T) {
	h := heap.NewFibonacci[string]()
	var target *heap.Node[string]
	for i, s := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		n, _ := h.Push(s, int64(i))
		if s == "f" {
			target = n
		}
	}
	_ = h.ExtractMin()

	got, err := h.Delete(target)
	require.NoError(t, err)
	assert.Same(t, target, got)
	assert.Equal(t, int64(5), got.Key())
	assert.Equal(t, 5, h.Len())
	assert.NoError(t, heap.Validate[string](h))
}

func TestFibonacci_DegreeBoundUnderChurn(t *testing.T) {
	h := heap.NewFibonacci[int]()
	nodes := make([]*heap.Node[int], 0, 256)
	for i := 0; i < 256; i++ {
		n, _ := h.Push(i, int64(1000+i))
		nodes = append(nodes, n)
	}
	_ = h.ExtractMin()
	// Lower every third key to the bottom to force many cuts.
	for i := 3; i < len(nodes); i += 3 {
		_, err := h.DecreaseKey(nodes[i], int64(i))
		require.NoError(t, err)
	}
	for i := 0; i < 64; i++ {
		_ = h.ExtractMin()
		require.NoError(t, heap.Validate[int](h))
	}
	assert.Equal(t, 191, h.Len())
}
