package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/meldheap/core"
	"github.com/katalvlaran/meldheap/heap"
)

// Kruskal returns the edges of a minimum spanning tree in the order they
// were accepted, and the total weight. A graph that is not connected yields
// ErrDisconnected.
//
// Every non-loop edge is queued once keyed by weight; the heap is drained in
// key order and an edge is kept when its endpoints lie in different
// union-find components.
func Kruskal(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	if err := checkGraph(graph); err != nil {
		return nil, 0, err
	}
	cfg := buildOptions(opts)
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	all := graph.Edges()
	base, err := keyBase(all)
	if err != nil {
		return nil, 0, err
	}
	pq, err := heap.New[*core.Edge](cfg.Heap)
	if err != nil {
		return nil, 0, fmt.Errorf("prim_kruskal: %w", err)
	}
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		if _, err := pq.Push(e, e.Weight-base); err != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: queue %s: %w", e.ID, err)
		}
	}

	uf := newUnionFind(vertices)
	var (
		mst   = make([]core.Edge, 0, len(vertices)-1)
		total int64
	)
	for n := pq.ExtractMin(); n != nil && len(mst) < len(vertices)-1; n = pq.ExtractMin() {
		e := n.Data
		if uf.union(e.From, e.To) {
			mst = append(mst, *e)
			total += e.Weight
		}
	}

	if len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}
	return mst, total, nil
}

// unionFind is a disjoint-set forest with path halving and union by rank.
type unionFind struct {
	parent map[string]string
	rank   map[string]int
}

func newUnionFind(ids []string) *unionFind {
	uf := &unionFind{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		uf.parent[id] = id
	}
	return uf
}

func (uf *unionFind) find(u string) string {
	for uf.parent[u] != u {
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}
	return u
}

// union merges the sets of u and v and reports whether they were apart.
func (uf *unionFind) union(u, v string) bool {
	ru, rv := uf.find(u), uf.find(v)
	if ru == rv {
		return false
	}
	switch {
	case uf.rank[ru] < uf.rank[rv]:
		uf.parent[ru] = rv
	case uf.rank[ru] > uf.rank[rv]:
		uf.parent[rv] = ru
	default:
		uf.parent[rv] = ru
		uf.rank[ru]++
	}
	return true
}
