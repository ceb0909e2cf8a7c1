package heap

import "math"

// FibonacciHeap is a forest of heap-ordered trees kept in a circular doubly
// linked root list. Insert and Union only splice lists; the one-tree-per-degree
// cleanup is deferred to consolidate, which runs inside ExtractMin.
//
// min always points at a root holding the smallest key. Roots are never
// marked. A tree whose root has degree d holds at least φ^d nodes, which
// bounds every degree by log_φ(n).
type FibonacciHeap[T any] struct {
	membership
	min  *Node[T]
	size int
	opts options[T]
}

var _ Heap[int] = (*FibonacciHeap[int])(nil)

// NewFibonacci returns an empty Fibonacci heap. Nodes never exchange
// payloads here, so a WithRelocate callback is stored but never called.
func NewFibonacci[T any](opts ...Option[T]) *FibonacciHeap[T] {
	return &FibonacciHeap[T]{opts: newOptions(opts)}
}

// Kind returns Fibonacci.
func (h *FibonacciHeap[T]) Kind() Kind { return Fibonacci }

// Len returns the number of nodes held.
func (h *FibonacciHeap[T]) Len() int { return h.size }

// Root returns the minimum root, which is also the entry point of the
// circular root list.
func (h *FibonacciHeap[T]) Root() *Node[T] { return h.min }

// Insert splices n into the root list as a singleton tree.
// Complexity: O(1).
func (h *FibonacciHeap[T]) Insert(n *Node[T]) error {
	if n == nil {
		return nil
	}
	if n.owner != nil {
		return ErrNodeInHeap
	}
	n.reset()
	n.owner = h.token()
	n.left, n.right = n, n
	h.min = meld(h.min, n)
	h.size++
	return nil
}

// Push creates a node for data and inserts it.
func (h *FibonacciHeap[T]) Push(data T, key int64) (*Node[T], error) {
	n, err := NewNode(data, key)
	if err != nil {
		return nil, err
	}
	return n, h.Insert(n)
}

// Minimum returns the minimum root. Complexity: O(1).
func (h *FibonacciHeap[T]) Minimum() *Node[T] { return h.min }

// ExtractMin removes the minimum, promotes its children to roots and
// consolidates the root list. Complexity: O(log n) amortized.
func (h *FibonacciHeap[T]) ExtractMin() *Node[T] {
	z := h.min
	if z == nil {
		return nil
	}

	if c := z.child; c != nil {
		x := c
		for {
			x.parent = nil
			x.mark = false
			x = x.right
			if x == c {
				break
			}
		}
	}

	if z.right == z {
		// Only tree: its children are the whole new root list.
		h.min = z.child
	} else {
		rest := z.right
		z.unlinkCircular()
		h.min = meld(rest, z.child)
	}
	z.child = nil
	h.size--

	if h.min != nil {
		h.consolidate()
	}
	z.reset()
	return z
}

// consolidate links roots of equal degree (smaller key on top) until every
// degree occurs once, then recomputes min from the degree table.
func (h *FibonacciHeap[T]) consolidate() {
	var roots []*Node[T]
	for x := h.min; ; {
		roots = append(roots, x)
		x = x.right
		if x == h.min {
			break
		}
	}

	table := make([]*Node[T], maxDegree(h.size)+1)
	for _, x := range roots {
		d := x.degree
		for {
			for d >= len(table) {
				table = append(table, nil)
			}
			y := table[d]
			if y == nil {
				break
			}
			if y.key < x.key {
				x, y = y, x
			}
			y.unlinkCircular()
			x.fibonacciLink(y)
			table[d] = nil
			d++
		}
		table[d] = x
	}

	h.min = nil
	for _, x := range table {
		if x != nil && (h.min == nil || x.key < h.min.key) {
			h.min = x
		}
	}
}

// maxDegree returns ⌊log_φ(n)⌋ + 1, an upper bound on any root degree in a
// heap of n nodes.
func maxDegree(n int) int {
	if n < 2 {
		return 1
	}
	return int(math.Log(float64(n))/math.Log(goldenRatio)) + 1
}

// Union splices other's root list into h. other must be a *FibonacciHeap.
// Complexity: O(1).
func (h *FibonacciHeap[T]) Union(other Heap[T]) error {
	if other == nil {
		return nil
	}
	o, ok := other.(*FibonacciHeap[T])
	if !ok {
		return ErrKindMismatch
	}
	if o == h {
		return ErrSelfUnion
	}
	if o == nil || o.min == nil {
		return nil
	}
	h.min = meld(h.min, o.min)
	h.size += o.size
	h.absorb(&o.membership)
	o.min, o.size = nil, 0
	return nil
}

// DecreaseKey lowers n's key. If n now beats its parent it is cut into the
// root list and marked ancestors follow. n keeps its payload.
// Complexity: O(1) amortized.
func (h *FibonacciHeap[T]) DecreaseKey(n *Node[T], key int64) (*Node[T], error) {
	if err := validateDecrease(&h.membership, n, key); err != nil {
		return nil, err
	}
	n.key = key
	h.restore(n)
	return n, nil
}

// Delete lowers n to the sentinel key, which cuts it to the root list as the
// minimum, and extracts it. The original key is restored on the result.
func (h *FibonacciHeap[T]) Delete(n *Node[T]) (*Node[T], error) {
	if err := validateMember(&h.membership, n); err != nil {
		return nil, err
	}
	orig := n.key
	n.key = sentinelKey
	h.restore(n)
	out := h.ExtractMin()
	out.key = orig
	return out, nil
}

// restore re-establishes heap order after n's key was lowered.
func (h *FibonacciHeap[T]) restore(n *Node[T]) {
	if p := n.parent; p != nil && n.key < p.key {
		h.cut(n, p)
		h.cascadingCut(p)
	}
	if n.key < h.min.key {
		h.min = n
	}
}

// cut detaches x from parent p and adds it to the root list unmarked.
func (h *FibonacciHeap[T]) cut(x, p *Node[T]) {
	if x.right == x {
		p.child = nil
	} else {
		if p.child == x {
			p.child = x.right
		}
		x.unlinkCircular()
	}
	p.degree--
	x.parent = nil
	x.mark = false
	h.min = meld(h.min, x)
}

// cascadingCut walks up from y: marked non-roots are cut, the first unmarked
// non-root is marked and the walk stops. Roots are left alone.
func (h *FibonacciHeap[T]) cascadingCut(y *Node[T]) {
	for {
		z := y.parent
		if z == nil {
			return
		}
		if !y.mark {
			y.mark = true
			return
		}
		h.cut(y, z)
		y = z
	}
}

// meld splices two circular lists and returns whichever of a and b has the
// smaller key (a on ties). Either may be nil.
func meld[T any](a, b *Node[T]) *Node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	aNext := a.right
	a.right = b.right
	a.right.left = a
	b.right = aNext
	aNext.left = b
	if b.key < a.key {
		return b
	}
	return a
}
