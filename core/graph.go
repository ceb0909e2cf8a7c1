package core

import (
	"sort"
	"strconv"
)

// AddVertex registers id. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = struct{}{}

	g.muEdgeAdj.Lock()
	g.adjacency[id] = make(map[string]map[string]struct{})
	g.muEdgeAdj.Unlock()
	return nil
}

// HasVertex reports whether id exists. The empty ID never exists.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]
	return ok
}

// AddEdge adds an edge from→to, creating missing endpoints, and returns its ID.
//
// Steps:
//  1. Validate IDs, weight, loop policy and per-edge options.
//  2. Ensure both endpoints exist.
//  3. Under the edge lock, enforce the multi-edge policy and store the edge.
//  4. Mirror undirected edges into adjacency[to][from].
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) {
	// 1) Validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if len(opts) > 0 && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	// 2) Endpoints
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Store
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}
	g.nextEdgeID++
	e := &Edge{
		ID:       "e" + strconv.FormatUint(g.nextEdgeID, 10),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
		seq:      g.nextEdgeID,
	}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[e.ID] = e
	g.link(from, to, e.ID)

	// 4) Mirror
	if !e.Directed && from != to {
		g.link(to, from, e.ID)
	}
	return e.ID, nil
}

func (g *Graph) link(from, to, eid string) {
	inner, ok := g.adjacency[from][to]
	if !ok {
		inner = make(map[string]struct{})
		g.adjacency[from][to] = inner
	}
	inner[eid] = struct{}{}
}

// Neighbors returns the edges leaving id: outgoing directed edges and every
// undirected edge incident to id, ordered by insertion. Use Edge.Other to
// find the far endpoint of an undirected edge. Callers must not mutate the
// returned edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	var out []*Edge
	for _, set := range g.adjacency[id] {
		for eid := range set {
			e := g.edges[eid]
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sortEdges(out)
	return out, nil
}

// Vertices returns every vertex ID in ascending order.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)
	return out
}

func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}

// Weighted reports whether non-zero weights are allowed.
func (g *Graph) Weighted() bool { return g.weighted }

// Directed reports the default orientation of new edges.
func (g *Graph) Directed() bool { return g.directed }

// HasDirectedEdges reports whether any stored edge is directed.
func (g *Graph) HasDirectedEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}
	return false
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.vertices)
}

// EdgeCount returns |E|. An undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return len(g.edges)
}
