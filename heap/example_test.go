package heap_test

import (
	"fmt"

	"github.com/katalvlaran/meldheap/heap"
)

// ExampleNew pushes a few jobs into a Fibonacci heap and drains it in key
// order.
func ExampleNew() {
	h, err := heap.New[string](heap.Fibonacci)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_, _ = h.Push("compact", 30)
	_, _ = h.Push("flush", 10)
	_, _ = h.Push("sync", 20)

	for h.Len() > 0 {
		n := h.ExtractMin()
		fmt.Println(n.Key(), n.Data)
	}
	// Output:
	// 10 flush
	// 20 sync
	// 30 compact
}

// ExampleWithRelocate keeps a payload index valid across binomial
// decrease-key, which moves payloads between nodes.
func ExampleWithRelocate() {
	where := map[string]*heap.Node[string]{}
	h := heap.NewBinomial(heap.WithRelocate(func(n *heap.Node[string]) {
		where[n.Data] = n
	}))
	for i, s := range []string{"a", "b", "c", "d"} {
		n, _ := h.Push(s, int64(10*(i+1)))
		where[s] = n
	}

	got, _ := h.DecreaseKey(where["d"], 5)
	fmt.Println(got.Data, got.Key(), got == where["d"], got == h.Minimum())
	// Output: d 5 true true
}

// ExampleFibonacciHeap_Union melds two heaps; the argument is left empty.
func ExampleFibonacciHeap_Union() {
	a := heap.NewFibonacci[int]()
	b := heap.NewFibonacci[int]()
	for _, k := range []int64{3, 7} {
		_, _ = a.Push(int(k), k)
	}
	for _, k := range []int64{1, 4} {
		_, _ = b.Push(int(k), k)
	}
	if err := a.Union(b); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(a.Len(), b.Len(), a.Minimum().Key())
	// Output: 4 0 1
}
