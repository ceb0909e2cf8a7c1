package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/meldheap/core"
	"github.com/katalvlaran/meldheap/heap"
)

// Prim grows a minimum spanning tree from root and returns its edges in the
// order they joined the tree together with the total weight.
//
// Steps:
//  1. Validate the graph and the root.
//  2. Put root in the tree and offer its edges.
//  3. Repeatedly extract the closest outside vertex, add the edge that
//     reached it and offer its edges.
//  4. Fewer than |V|-1 edges means the graph is disconnected.
func Prim(graph *core.Graph, root string, opts ...Option) ([]core.Edge, int64, error) {
	// 1) Validation
	if err := checkGraph(graph); err != nil {
		return nil, 0, err
	}
	cfg := buildOptions(opts)
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}
	base, err := keyBase(graph.Edges())
	if err != nil {
		return nil, 0, err
	}

	p := &primRun{
		graph:   graph,
		base:    base,
		inTree:  make(map[string]bool, len(vertices)),
		best:    make(map[string]*core.Edge, len(vertices)),
		handles: make(map[string]*heap.Node[string], len(vertices)),
	}
	pq, err := heap.New[string](cfg.Heap, heap.WithRelocate(func(n *heap.Node[string]) {
		p.handles[n.Data] = n
	}))
	if err != nil {
		return nil, 0, fmt.Errorf("prim_kruskal: %w", err)
	}
	p.pq = pq

	// 2) Seed
	p.inTree[root] = true
	if err := p.offer(root); err != nil {
		return nil, 0, err
	}

	// 3) Grow
	mst := make([]core.Edge, 0, len(vertices)-1)
	var total int64
	for n := p.pq.ExtractMin(); n != nil; n = p.pq.ExtractMin() {
		v := n.Data
		delete(p.handles, v)
		p.inTree[v] = true
		e := p.best[v]
		mst = append(mst, *e)
		total += e.Weight
		if err := p.offer(v); err != nil {
			return nil, 0, err
		}
	}

	// 4) Coverage
	if len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}
	return mst, total, nil
}

type primRun struct {
	graph   *core.Graph
	base    int64
	pq      heap.Heap[string]
	inTree  map[string]bool
	best    map[string]*core.Edge // cheapest known edge into the tree
	handles map[string]*heap.Node[string]
}

// offer queues or lowers every outside neighbor of u reachable through a
// cheaper edge than the one already known.
func (p *primRun) offer(u string) error {
	edges, err := p.graph.Neighbors(u)
	if err != nil {
		return err
	}
	for _, e := range edges {
		v := e.Other(u)
		if p.inTree[v] {
			continue
		}
		key := e.Weight - p.base
		h, queued := p.handles[v]
		switch {
		case !queued:
			n, err := p.pq.Push(v, key)
			if err != nil {
				return fmt.Errorf("prim_kruskal: queue %q: %w", v, err)
			}
			p.handles[v] = n
		case key < h.Key():
			if _, err := p.pq.DecreaseKey(h, key); err != nil {
				return fmt.Errorf("prim_kruskal: lower %q: %w", v, err)
			}
		default:
			continue
		}
		p.best[v] = e
	}
	return nil
}
