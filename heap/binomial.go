package heap

// BinomialHeap is a forest of binomial trees kept in a singly linked root
// list of strictly ascending degree, with at most one tree per degree.
//
// Every structural change is expressed as a union of two root lists: Insert
// unites a single-node list, ExtractMin unites the reversed child list of the
// removed root.
type BinomialHeap[T any] struct {
	membership
	head *Node[T] // lowest-degree root
	size int
	opts options[T]
}

var _ Heap[int] = (*BinomialHeap[int])(nil)

// NewBinomial returns an empty binomial heap.
func NewBinomial[T any](opts ...Option[T]) *BinomialHeap[T] {
	return &BinomialHeap[T]{opts: newOptions(opts)}
}

// Kind returns Binomial.
func (h *BinomialHeap[T]) Kind() Kind { return Binomial }

// Len returns the number of nodes held.
func (h *BinomialHeap[T]) Len() int { return h.size }

// Root returns the lowest-degree root, nil when empty.
func (h *BinomialHeap[T]) Root() *Node[T] { return h.head }

// Insert adds n as a degree-0 tree and restores one-tree-per-degree.
// Complexity: O(log n).
func (h *BinomialHeap[T]) Insert(n *Node[T]) error {
	if n == nil {
		return nil
	}
	if n.owner != nil {
		return ErrNodeInHeap
	}
	n.reset()
	n.owner = h.token()
	h.head = unite(h.head, n)
	h.size++
	return nil
}

// Push creates a node for data and inserts it.
func (h *BinomialHeap[T]) Push(data T, key int64) (*Node[T], error) {
	n, err := NewNode(data, key)
	if err != nil {
		return nil, err
	}
	return n, h.Insert(n)
}

// Minimum scans the root list; the root list is ordered by degree, not key.
// Complexity: O(log n).
func (h *BinomialHeap[T]) Minimum() *Node[T] {
	m, _ := h.minRoot()
	return m
}

// minRoot returns the first root with the smallest key and its predecessor.
func (h *BinomialHeap[T]) minRoot() (m, prev *Node[T]) {
	if h.head == nil {
		return nil, nil
	}
	m = h.head
	for p, x := h.head, h.head.right; x != nil; p, x = x, x.right {
		if x.key < m.key {
			m, prev = x, p
		}
	}
	return m, prev
}

// ExtractMin unlinks the minimum root and unites its children back.
// Complexity: O(log n).
func (h *BinomialHeap[T]) ExtractMin() *Node[T] {
	m, prev := h.minRoot()
	if m == nil {
		return nil
	}
	if prev == nil {
		h.head = m.right
	} else {
		prev.right = m.right
	}

	// Children hang off m in descending degree; reversing yields a valid
	// ascending root list.
	var forest *Node[T]
	for c := m.child; c != nil; {
		next := c.right
		c.parent = nil
		c.right = forest
		forest = c
		c = next
	}

	h.head = unite(h.head, forest)
	h.size--
	m.reset()
	return m
}

// Union drains other, which must also be a *BinomialHeap, into h.
// Complexity: O(log n).
func (h *BinomialHeap[T]) Union(other Heap[T]) error {
	if other == nil {
		return nil
	}
	o, ok := other.(*BinomialHeap[T])
	if !ok {
		return ErrKindMismatch
	}
	if o == h {
		return ErrSelfUnion
	}
	if o == nil || o.head == nil {
		return nil
	}
	h.head = unite(h.head, o.head)
	h.size += o.size
	h.absorb(&o.membership)
	o.head, o.size = nil, 0
	return nil
}

// DecreaseKey lowers n's key and bubbles the (key, Data) pair up while it is
// smaller than its parent's. The returned node holds n's payload afterwards.
// Complexity: O(log n).
func (h *BinomialHeap[T]) DecreaseKey(n *Node[T], key int64) (*Node[T], error) {
	if err := validateDecrease(&h.membership, n, key); err != nil {
		return nil, err
	}
	return h.siftUp(n, key), nil
}

// Delete forces n's payload to the root with the sentinel key and extracts it.
// The returned node is the one that carried the payload out, with the
// original key restored; it can differ from n.
func (h *BinomialHeap[T]) Delete(n *Node[T]) (*Node[T], error) {
	if err := validateMember(&h.membership, n); err != nil {
		return nil, err
	}
	orig := n.key
	h.siftUp(n, sentinelKey)
	out := h.ExtractMin()
	out.key = orig
	return out, nil
}

// siftUp assigns key to n and swaps payloads upward. No links change.
func (h *BinomialHeap[T]) siftUp(n *Node[T], key int64) *Node[T] {
	n.key = key
	moved := false
	for n.parent != nil && n.key < n.parent.key {
		p := n.parent
		n.swapPayload(p)
		h.relocated(n)
		n = p
		moved = true
	}
	if moved {
		h.relocated(n)
	}
	return n
}

func (h *BinomialHeap[T]) relocated(n *Node[T]) {
	if h.opts.relocate != nil {
		h.opts.relocate(n)
	}
}

// mergeByDegree interleaves two ascending-degree root lists into one
// non-decreasing list. On equal degrees the node from a goes first.
func mergeByDegree[T any](a, b *Node[T]) *Node[T] {
	var head, tail *Node[T]
	for a != nil && b != nil {
		var n *Node[T]
		if a.degree <= b.degree {
			n, a = a, a.right
		} else {
			n, b = b, b.right
		}
		if tail == nil {
			head = n
		} else {
			tail.right = n
		}
		tail = n
	}
	rest := a
	if rest == nil {
		rest = b
	}
	if tail == nil {
		return rest
	}
	tail.right = rest
	return head
}

// unite merges two root lists and links equal-degree trees until every
// degree occurs at most once. It returns the new head.
//
// The walk keeps x as the current root, prev as its predecessor and next as
// its successor. When three roots of one degree are adjacent (two carried in
// from the merge plus one produced by a link) x is skipped so that the later
// pair is linked, which keeps the list ascending.
func unite[T any](a, b *Node[T]) *Node[T] {
	head := mergeByDegree(a, b)
	if head == nil {
		return nil
	}
	var prev *Node[T]
	x := head
	next := x.right
	for next != nil {
		switch {
		case x.degree != next.degree,
			next.right != nil && next.right.degree == x.degree:
			prev, x = x, next
		case x.key <= next.key:
			x.right = next.right
			x.binomialLink(next)
		default:
			if prev == nil {
				head = next
			} else {
				prev.right = next
			}
			next.binomialLink(x)
			x = next
		}
		next = x.right
	}
	return head
}
