// Package meldheap is a small library of mergeable priority queues and
// the graph algorithms that drive them.
//
// What is inside?
//
//	heap/          binomial and Fibonacci heaps behind one interface:
//	               Insert, Minimum, ExtractMin, Union, DecreaseKey, Delete
//	heap/render/   level-by-level text rendering of a heap
//	core/          thread-safe weighted Graph and Edge primitives
//	dijkstra/      single-source shortest paths on top of heap.Heap
//	prim_kruskal/  minimum spanning trees (Prim, Kruskal) on top of heap.Heap
//	cmd/heapctl    replays TOML or YAML heap scenarios from the command line
//
// Quick example:
//
//	h, _ := heap.New[string](heap.Fibonacci)
//	_, _ = h.Push("seven", 7)
//	n, _ := h.Push("nine", 9)
//	_, _ = h.DecreaseKey(n, 1)
//	min := h.ExtractMin() // key 1, Data "nine"
//
// Both heap kinds are interchangeable: every consumer accepts a heap.Kind
// and produces identical results for either.
package meldheap
