package heap_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meldheap/heap"
)

// setBits returns the positions of the 1-bits of n, lowest first.
func setBits(n int) []int {
	var out []int
	for i := 0; i < bits.Len(uint(n)); i++ {
		if n&(1<<i) != 0 {
			out = append(out, i)
		}
	}
	return out
}

// TestBinomial_RootDegreesFollowBinaryRepresentation checks that a heap of n
// nodes holds exactly one tree per 1-bit of n, in ascending degree order.
func TestBinomial_RootDegreesFollowBinaryRepresentation(t *testing.T) {
	h := heap.NewBinomial[int]()
	for i := 1; i <= 64; i++ {
		_, err := h.Push(i, int64(100-i))
		require.NoError(t, err)
		require.Equal(t, setBits(i), heap.RootDegrees[int](h), "after %d inserts", i)
	}
	require.NoError(t, heap.Validate[int](h))

	for h.Len() > 0 {
		_ = h.ExtractMin()
		require.Equal(t, setBits(h.Len()), heap.RootDegrees[int](h), "size %d", h.Len())
	}
}

func TestBinomial_TreesAreBinomial(t *testing.T) {
	h := heap.NewBinomial[int]()
	for i := 0; i < 13; i++ { // 13 = 0b1101
		_, err := h.Push(i, int64(i*7%13))
		require.NoError(t, err)
	}
	for _, r := range heap.Roots[int](h) {
		levels := heap.Levels(r)
		require.Len(t, levels, r.Degree()+1)
		total := 0
		for depth, level := range levels {
			// A binomial tree of order d has C(d, depth) nodes at each depth.
			assert.Len(t, level, binom(r.Degree(), depth))
			total += len(level)
		}
		assert.Equal(t, 1<<r.Degree(), total)

		kids := heap.Children(r)
		for i, c := range kids {
			assert.Equal(t, r.Degree()-1-i, c.Degree(), "child order")
			assert.Same(t, r, c.Parent())
		}
	}
}

func binom(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	out := 1
	for i := 0; i < k; i++ {
		out = out * (n - i) / (i + 1)
	}
	return out
}

func TestBinomial_UnionCarries(t *testing.T) {
	a := heap.NewBinomial[int]()
	b := heap.NewBinomial[int]()
	for i := 0; i < 7; i++ { // degrees 0,1,2
		_, _ = a.Push(i, int64(i))
	}
	for i := 0; i < 3; i++ { // degrees 0,1
		_, _ = b.Push(i, int64(10+i))
	}
	require.NoError(t, a.Union(b))
	assert.Equal(t, 10, a.Len())
	assert.Equal(t, []int{1, 3}, heap.RootDegrees[int](a))
	assert.NoError(t, heap.Validate[int](a))
}

// TestBinomial_DecreaseKeyRelocatesPayload shows that key propagation moves
// payloads between nodes, and that WithRelocate reports every move.
func TestBinomial_DecreaseKeyRelocatesPayload(t *testing.T) {
	moved := map[string]*heap.Node[string]{}
	calls := 0
	h := heap.NewBinomial(heap.WithRelocate(func(n *heap.Node[string]) {
		moved[n.Data] = n
		calls++
	}))
	for i, s := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		_, err := h.Push(s, int64(10*(i+1)))
		require.NoError(t, err)
	}
	require.Equal(t, []int{3}, heap.RootDegrees[string](h))

	levels := heap.Levels(h.Root())
	deep := levels[3][0]
	payload := deep.Data

	got, err := h.DecreaseKey(deep, 1)
	require.NoError(t, err)
	assert.Same(t, h.Root(), got)
	assert.Equal(t, payload, got.Data)
	assert.Equal(t, int64(1), got.Key())
	assert.NotEqual(t, payload, deep.Data, "the original node now holds a displaced payload")
	assert.Equal(t, 4, calls, "three swaps plus the final holder")
	assert.Same(t, got, moved[payload])
	for data, n := range moved {
		assert.Equal(t, data, n.Data)
	}
	assert.NoError(t, heap.Validate[string](h))
}

func TestBinomial_DeleteReturnsHolder(t *testing.T) {
	h := heap.NewBinomial[string]()
	nodes := map[string]*heap.Node[string]{}
	for i, s := range []string{"a", "b", "c", "d"} {
		n, err := h.Push(s, int64(i+1))
		require.NoError(t, err)
		nodes[s] = n
	}
	// "d" sits two levels below the root.
	got, err := h.Delete(nodes["d"])
	require.NoError(t, err)
	assert.Equal(t, "d", got.Data)
	assert.Equal(t, int64(4), got.Key())
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, "a", h.Minimum().Data)
	assert.NoError(t, heap.Validate[string](h))
}

func TestBinomial_MinimumPrefersFirstRootOnTies(t *testing.T) {
	h := heap.NewBinomial[string]()
	_, _ = h.Push("x", 5)
	_, _ = h.Push("y", 9)
	_, _ = h.Push("z", 5) // degree-0 root ahead of the degree-1 tree
	assert.Equal(t, "z", h.Minimum().Data)
}
