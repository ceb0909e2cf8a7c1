package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override without WithMixedEdges.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// Edge connects two vertices.
type Edge struct {
	// ID is "e" followed by the insertion sequence number.
	ID string

	From string
	To   string

	// Weight is the edge cost; always zero in unweighted graphs.
	Weight int64

	// Directed marks a one-way edge. Defaults to the graph's orientation.
	Directed bool

	seq uint64
}

// Other returns the endpoint of e opposite to id. For a self-loop it
// returns id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}
	return e.From
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges.
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets WithEdgeDirected override the default per edge.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// EdgeOption configures a single edge in AddEdge.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the graph's default directedness for one edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is an in-memory graph safe for concurrent use.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, adjacency and nextEdgeID

	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool
	allowMixed bool

	nextEdgeID uint64
	vertices   map[string]struct{}
	edges      map[string]*Edge

	// adjacency[from][to][edgeID]; undirected edges are stored both ways.
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph returns an empty graph. By default it is undirected, unweighted
// and allows neither loops nor parallel edges.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
