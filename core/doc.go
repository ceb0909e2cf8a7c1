// Package core provides the small, thread-safe in-memory graph that the
// shortest-path and spanning-tree packages feed into the mergeable heaps.
//
// A Graph is configured once with functional options:
//
//   - WithDirected(bool): default orientation of new edges.
//   - WithWeighted(): permit non-zero weights (otherwise ErrBadWeight).
//   - WithMultiEdges(): permit parallel edges.
//   - WithLoops(): permit self-loops.
//   - WithMixedEdges(): permit per-edge WithEdgeDirected overrides.
//
// Storage is a nested map adjacency[from][to][edgeID], mirrored for
// undirected edges. Vertices are guarded by one sync.RWMutex and edges plus
// adjacency by another; locks are always taken in that order.
//
// Every query returns a deterministic order: Vertices() sorted by ID,
// Edges() and Neighbors() by insertion sequence ("e1", "e2", ...).
//
// Errors:
//
//	ErrEmptyVertexID        - zero-length vertex ID
//	ErrVertexNotFound       - missing vertex
//	ErrBadWeight            - non-zero weight on an unweighted graph
//	ErrLoopNotAllowed       - self-loop when loops are disabled
//	ErrMultiEdgeNotAllowed  - parallel edge when multi-edges are disabled
//	ErrMixedEdgesNotAllowed - per-edge override without mixed mode
package core
