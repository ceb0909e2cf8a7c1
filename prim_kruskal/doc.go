// Package prim_kruskal computes a minimum spanning tree (MST) of an
// undirected, weighted *core.Graph with either Prim's or Kruskal's algorithm.
// Both are driven by the mergeable heaps of package heap.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a
//     subset T ⊆ E that connects every vertex of V with the smallest possible
//     total weight.
//   - Typical uses: cost-efficient network design, single-linkage clustering
//     (cut the heaviest tree edges), and a building block for approximation
//     algorithms.
//
// Algorithms Provided
//
//   - Prim(g, root, opts...) ([]core.Edge, int64, error)
//
//   - Strategy: grow one tree from root. Every outside vertex is queued once,
//     keyed by the cheapest edge seen so far that connects it to the tree.
//     A cheaper edge lowers that entry in place with DecreaseKey, so the
//     queue never holds more than V entries.
//
//   - Complexity:
//
//   - Time, Fibonacci heap (default): O(E + V log V). V ExtractMin calls at
//     O(log V) amortized, at most E DecreaseKey calls at O(1) amortized.
//
//   - Time, binomial heap: O((V + E) log V).
//
//   - Space: O(V) for the tree set, the best-edge map, the handle map and
//     the queue.
//
//   - Kruskal(g, opts...) ([]core.Edge, int64, error)
//
//   - Strategy: queue every non-loop edge keyed by weight, drain the heap in
//     order and keep an edge when a union-find says its endpoints are still
//     apart. Stops once |V|-1 edges are accepted.
//
//   - Complexity:
//
//   - Time: O(E log E + α(V)·E) ≈ O(E log V) with either heap; draining
//     dominates. A Fibonacci heap makes the E inserts O(1) each.
//
//   - Space: O(V + E) for the parent/rank maps and the queued edges.
//
//   - Compute(g, MSTOptions) dispatches on MSTOptions.Method.
//
// Options:
//
//   - WithMethod(m): MethodKruskal (default) or MethodPrim, for Compute.
//   - WithRoot(id):  Prim's starting vertex, for Compute.
//   - WithHeap(k):   heap.Fibonacci (default) or heap.Binomial.
//
// Keys
//
// Heap keys must be non-negative, but MST weights need not be. Each run
// offsets every key by the smallest negative weight in the graph, which
// preserves the order. Reported weights and totals are the original ones.
//
// Errors (sentinel):
//
//   - ErrInvalidGraph          nil, unweighted, directed or containing a directed
//     edge; also an unknown Method passed to Compute.
//   - ErrEmptyRoot             Prim got root == "".
//   - core.ErrVertexNotFound   Prim's root is not in the graph.
//   - ErrDisconnected          no spanning tree exists (including the empty graph).
//   - ErrWeightRange           weights span more than int64 can offset.
//
// Ties between equal keys may be broken differently by the two heap kinds,
// so the edge set can differ between runs of different kinds; the total
// weight never does.
package prim_kruskal
