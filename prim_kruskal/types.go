package prim_kruskal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/meldheap/core"
	"github.com/katalvlaran/meldheap/heap"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected, weighted graph.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that no spanning tree covers every vertex.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrWeightRange indicates that the weights cannot be shifted into
// non-negative heap keys without overflowing int64.
var ErrWeightRange = errors.New("prim_kruskal: edge weights span more than int64")

// MethodPrim selects Prim's algorithm.
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm.
const MethodKruskal = "kruskal"

// MSTOptions configures Compute and the per-algorithm options.
type MSTOptions struct {
	// Method is MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim. Unused by Kruskal.
	Root string

	// Heap selects the priority queue variant. Defaults to heap.Fibonacci.
	Heap heap.Kind
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets Prim's starting vertex.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithHeap selects the heap variant used by either algorithm.
func WithHeap(kind heap.Kind) Option {
	return func(opts *MSTOptions) {
		opts.Heap = kind
	}
}

// DefaultOptions returns Kruskal on a Fibonacci heap.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Heap:   heap.Fibonacci,
	}
}

func buildOptions(opts []Option) MSTOptions {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Compute runs the algorithm named by opts.Method.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph, WithHeap(opts.Heap))
	case MethodPrim:
		return Prim(graph, opts.Root, WithHeap(opts.Heap))
	default:
		return nil, 0, fmt.Errorf("%w: unknown method %q", ErrInvalidGraph, opts.Method)
	}
}

// checkGraph applies the validation shared by Prim and Kruskal.
func checkGraph(graph *core.Graph) error {
	if graph == nil || !graph.Weighted() || graph.Directed() || graph.HasDirectedEdges() {
		return ErrInvalidGraph
	}
	return nil
}

// keyBase returns the value subtracted from every weight to obtain a heap
// key: the smallest weight if it is negative, else 0.
func keyBase(edges []*core.Edge) (int64, error) {
	var lo, hi int64
	for _, e := range edges {
		if e.Weight < lo {
			lo = e.Weight
		}
		if e.Weight > hi {
			hi = e.Weight
		}
	}
	if lo < 0 && hi > math.MaxInt64+lo {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrWeightRange, lo, hi)
	}
	return lo, nil
}
