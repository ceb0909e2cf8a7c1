package dijkstra

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/meldheap/core"
	"github.com/katalvlaran/meldheap/heap"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g.
//
// dist[v] is math.MaxInt64 for vertices that are unreachable or farther than
// MaxDistance. prev is nil unless WithReturnPath is set; prev[v] is the
// predecessor of v on one shortest path, "" for the source and for
// unreached vertices.
//
// Validation order: ErrEmptySource, ErrNilGraph, ErrUnweightedGraph,
// ErrVertexNotFound, ErrNegativeWeight.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Inputs
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 3) State
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		log:     cfg.Logger,
		dist:    make(map[string]int64, len(vertices)),
		settled: make(map[string]bool, len(vertices)),
		handles: make(map[string]*heap.Node[string], len(vertices)),
	}
	if cfg.ReturnPath || cfg.MemoryMode == MemoryModeFull {
		r.prev = make(map[string]string, len(vertices))
	}
	pq, err := heap.New[string](cfg.Heap, heap.WithRelocate(r.relocated))
	if err != nil {
		return nil, nil, fmt.Errorf("dijkstra: %w", err)
	}
	r.pq = pq

	// 4) Run
	if err := r.init(vertices); err != nil {
		return nil, nil, err
	}
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}
	return r.dist, r.prev, nil
}

// runner holds the mutable state of one Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	log     *slog.Logger
	dist    map[string]int64
	prev    map[string]string
	settled map[string]bool
	pq      heap.Heap[string]
	handles map[string]*heap.Node[string] // vertex → heap node while queued
}

// relocated keeps handles current when the binomial heap moves a vertex ID
// into another node.
func (r *runner) relocated(n *heap.Node[string]) {
	r.handles[n.Data] = n
}

func (r *runner) init(vertices []string) error {
	for _, v := range vertices {
		r.dist[v] = math.MaxInt64
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0
	n, err := r.pq.Push(r.options.Source, 0)
	if err != nil {
		return fmt.Errorf("dijkstra: queue source: %w", err)
	}
	r.handles[r.options.Source] = n
	return nil
}

// process settles vertices in distance order until the queue is empty.
// Nothing beyond MaxDistance is ever queued, so every extracted vertex is
// final.
func (r *runner) process() error {
	for n := r.pq.ExtractMin(); n != nil; n = r.pq.ExtractMin() {
		u := n.Data
		delete(r.handles, u)
		r.settled[u] = true
		r.log.Debug("settle", "vertex", u, "dist", n.Key(), "queued", r.pq.Len())
		if err := r.relax(u); err != nil {
			return err
		}
	}
	return nil
}

// relax improves the tentative distance of every unsettled neighbor of u,
// queueing newly reached vertices and lowering queued ones in place.
func (r *runner) relax(u string) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}
	du := r.dist[u]
	for _, e := range edges {
		v := e.Other(u)
		if r.settled[v] {
			continue
		}
		w := e.Weight
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, v, w)
		}
		if w > math.MaxInt64-du {
			continue // would overflow; cannot beat any finite distance
		}
		nd := du + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}

		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		if h, ok := r.handles[v]; ok {
			if _, err := r.pq.DecreaseKey(h, nd); err != nil {
				return fmt.Errorf("dijkstra: lower %q: %w", v, err)
			}
		} else {
			h, err := r.pq.Push(v, nd)
			if err != nil {
				return fmt.Errorf("dijkstra: queue %q: %w", v, err)
			}
			r.handles[v] = h
		}
		r.log.Debug("relax", "from", u, "to", v, "edge", e.ID, "dist", nd)
	}
	return nil
}
