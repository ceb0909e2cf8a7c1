// Package dijkstra computes single-source shortest paths on weighted graphs
// with non-negative edge weights, driven by a mergeable heap with a real
// decrease-key.
//
// Every vertex enters the heap once, when it is first reached, keyed by its
// tentative distance. A shorter path lowers that entry in place with
// DecreaseKey instead of pushing a duplicate, so the heap never holds more
// than V entries and nothing stale is ever popped.
//
// Complexity:
//
//   - Time, Fibonacci heap (default): O(E + V log V)
//     V ExtractMin calls at O(log V) amortized each, and at most E
//     DecreaseKey calls at O(1) amortized each.
//   - Time, binomial heap: O((V + E) log V)
//     both ExtractMin and DecreaseKey cost O(log V).
//   - Space: O(V)
//     dist, prev, the settled set and the handle map are O(V) each, and the
//     queue never holds more than one entry per vertex.
//
// Options:
//
//   - Source(id):             required starting vertex.
//   - WithReturnPath():       also return the predecessor map.
//   - WithMaxDistance(d):     never settle vertices farther than d (d >= 0).
//   - WithInfEdgeThreshold(t): edges with weight >= t are impassable (t > 0).
//   - WithMemoryMode(m):      predecessor storage policy.
//   - WithHeap(kind):         heap.Fibonacci (default) or heap.Binomial.
//   - WithLogger(l):          debug trace of every settle and relaxation.
//
// Errors (sentinel):
//
//   - ErrEmptySource     the source ID is empty.
//   - ErrNilGraph        the graph is nil.
//   - ErrUnweightedGraph the graph was built without core.WithWeighted().
//   - ErrVertexNotFound  the source is not in the graph.
//   - ErrNegativeWeight  some edge has a negative weight (checked up front).
//   - ErrBadMaxDistance  WithMaxDistance got a negative value (panics).
//   - ErrBadInfThreshold WithInfEdgeThreshold got a value <= 0 (panics).
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g,
//	    dijkstra.Source("A"),
//	    dijkstra.WithReturnPath(),
//	    dijkstra.WithHeap(heap.Binomial),
//	)
//
// Dijkstra does not lock the graph for its whole run; callers that mutate
// the graph concurrently must synchronize externally.
package dijkstra
