package heap

import (
	"fmt"
	"math"

	"cloudeng.io/errors"
)

// Validate walks every tree of h and reports all broken invariants at once.
// Each reported error wraps ErrCorrupt. A nil result means h is well formed.
//
// Checked for both variants: size equals the number of reachable nodes,
// parent back-links, heap order, degree equals child count and membership
// cells. Binomial: strictly ascending root degrees, 2^d nodes per tree and
// child degrees d-1..0. Fibonacci: left/right symmetry of every cycle,
// unmarked roots, at least φ^d nodes under every node and a minimum pointer
// that holds the smallest root key.
//
// Validate is a diagnostic; it costs O(n) and never changes the shape of h.
func Validate[T any](h Heap[T]) error {
	switch v := h.(type) {
	case *BinomialHeap[T]:
		c := newChecker[T](v.size, &v.membership)
		c.binomial(v)
		return c.errs.Err()
	case *FibonacciHeap[T]:
		c := newChecker[T](v.size, &v.membership)
		c.fibonacci(v)
		return c.errs.Err()
	}
	return fmt.Errorf("%w: %T", ErrUnknownKind, h)
}

type checker[T any] struct {
	errs    *errors.M
	member  *membership
	limit   int
	visited int
	overrun bool
}

func newChecker[T any](size int, m *membership) *checker[T] {
	return &checker[T]{errs: &errors.M{}, member: m, limit: size + 1}
}

func (c *checker[T]) fail(format string, args ...any) {
	c.errs.Append(fmt.Errorf("%w: "+format, append([]any{ErrCorrupt}, args...)...))
}

// visit counts a node and reports false once more nodes were reached than
// the heap claims to hold, which also stops walks around broken cycles.
func (c *checker[T]) visit() bool {
	c.visited++
	if c.visited > c.limit {
		if !c.overrun {
			c.overrun = true
			c.fail("more than %d nodes reachable", c.limit-1)
		}
		return false
	}
	return true
}

func (c *checker[T]) binomial(h *BinomialHeap[T]) {
	count, prev := 0, -1
	for r := h.head; r != nil; r = r.right {
		if !c.visit() {
			return
		}
		if r.parent != nil {
			c.fail("root %v has a parent", r)
		}
		if r.degree <= prev {
			c.fail("root degree %d follows degree %d", r.degree, prev)
		}
		prev = r.degree
		n := c.binomialTree(r)
		if n != 1<<r.degree {
			c.fail("tree at %v has %d nodes, want %d", r, n, 1<<r.degree)
		}
		count += n
	}
	if !c.overrun && count != h.size {
		c.fail("size %d but %d nodes reachable", h.size, count)
	}
}

func (c *checker[T]) binomialTree(n *Node[T]) int {
	if !holds(c.member, n) {
		c.fail("node %v not held by this heap", n)
	}
	size, kids, want := 1, 0, n.degree-1
	for x := n.child; x != nil; x = x.right {
		if !c.visit() {
			return size
		}
		if x.parent != n {
			c.fail("child %v does not point back to %v", x, n)
		}
		if x.key < n.key {
			c.fail("child %v smaller than parent %v", x, n)
		}
		if x.degree != want {
			c.fail("child %v of %v has degree %d, want %d", x, n, x.degree, want)
		}
		want--
		kids++
		size += c.binomialTree(x)
	}
	if kids != n.degree {
		c.fail("node %v has degree %d but %d children", n, n.degree, kids)
	}
	return size
}

func (c *checker[T]) fibonacci(h *FibonacciHeap[T]) {
	if h.min == nil {
		if h.size != 0 {
			c.fail("empty root list but size %d", h.size)
		}
		return
	}
	count := 0
	for _, r := range c.ring(h.min) {
		if r.parent != nil {
			c.fail("root %v has a parent", r)
		}
		if r.mark {
			c.fail("root %v is marked", r)
		}
		if r.key < h.min.key {
			c.fail("root %v smaller than minimum %v", r, h.min)
		}
		count += c.fibonacciTree(r)
	}
	if !c.overrun && count != h.size {
		c.fail("size %d but %d nodes reachable", h.size, count)
	}
}

func (c *checker[T]) fibonacciTree(n *Node[T]) int {
	if !holds(c.member, n) {
		c.fail("node %v not held by this heap", n)
	}
	var kids []*Node[T]
	if n.child != nil {
		kids = c.ring(n.child)
	}
	if len(kids) != n.degree {
		c.fail("node %v has degree %d but %d children", n, n.degree, len(kids))
	}
	size := 1
	for _, x := range kids {
		if x.parent != n {
			c.fail("child %v does not point back to %v", x, n)
		}
		if x.key < n.key {
			c.fail("child %v smaller than parent %v", x, n)
		}
		size += c.fibonacciTree(x)
	}
	if float64(size) < math.Pow(goldenRatio, float64(n.degree))-1e-9 {
		c.fail("tree at %v has %d nodes, below φ^%d", n, size, n.degree)
	}
	return size
}

// ring collects a circular list and checks left/right symmetry.
func (c *checker[T]) ring(first *Node[T]) []*Node[T] {
	var out []*Node[T]
	for x := first; ; {
		if !c.visit() {
			return out
		}
		if x.right == nil || x.left == nil {
			c.fail("node %v has a nil sibling link", x)
			return append(out, x)
		}
		if x.right.left != x {
			c.fail("node %v: right.left does not point back", x)
		}
		out = append(out, x)
		x = x.right
		if x == first {
			return out
		}
	}
}
