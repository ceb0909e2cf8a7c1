package heap

import "fmt"

// Node is a vertex of a heap tree. It is created by the caller with NewNode
// (or by Push) and handed to a heap; the heap owns its links until the node is
// extracted or deleted.
//
// Binomial heaps use child/right as singly linked open lists. Fibonacci heaps
// use left/right as circular doubly linked lists for both the root list and
// every child list.
type Node[T any] struct {
	// Data is the caller's payload.
	Data T

	key    int64
	degree int  // number of direct children
	mark   bool   // Fibonacci: lost a child since it last became a non-root
	owner  *owner // nil while detached

	parent *Node[T]
	child  *Node[T] // one designated child; the rest hang off its siblings
	left   *Node[T]
	right  *Node[T]
}

// NewNode returns a detached node holding data with the given key.
// A negative key is rejected with ErrNegativeKey.
func NewNode[T any](data T, key int64) (*Node[T], error) {
	if key < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeKey, key)
	}
	return &Node[T]{Data: data, key: key}, nil
}

// Key returns the node's priority.
func (n *Node[T]) Key() int64 { return n.key }

// Degree returns the number of direct children.
func (n *Node[T]) Degree() int { return n.degree }

// Marked reports the Fibonacci mark bit.
func (n *Node[T]) Marked() bool { return n.mark }

// InHeap reports whether the node is currently held by a heap.
func (n *Node[T]) InHeap() bool { return n.owner != nil }

// Parent returns the parent node, nil for tree roots.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// Child returns the designated child, nil for leaves.
func (n *Node[T]) Child() *Node[T] { return n.child }

// Left returns the left sibling. Always nil in a binomial heap.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right sibling. In a binomial heap the last sibling's
// Right is nil; in a Fibonacci heap the list wraps around.
func (n *Node[T]) Right() *Node[T] { return n.right }

// reset clears every heap-internal field. Key and Data are kept.
func (n *Node[T]) reset() {
	n.parent, n.child, n.left, n.right = nil, nil, nil, nil
	n.degree = 0
	n.mark = false
	n.owner = nil
}

// owner is the membership cell a heap hands to every node it holds. When a
// heap is absorbed by Union its cell is forwarded to the receiver's, so the
// absorbed nodes change hands without being visited.
type owner struct {
	fwd *owner
}

// resolve follows forwarding links to the live cell and shortens the chain
// for later lookups.
func (o *owner) resolve() *owner {
	root := o
	for root.fwd != nil {
		root = root.fwd
	}
	for o != root {
		next := o.fwd
		o.fwd = root
		o = next
	}
	return root
}

// membership is embedded by both variants and owns their cell.
type membership struct {
	cell *owner
}

func (m *membership) token() *owner {
	if m.cell == nil {
		m.cell = &owner{}
	}
	return m.cell
}

// absorb hands every node of other to m. other starts over with a new cell.
func (m *membership) absorb(other *membership) {
	other.token().fwd = m.token()
	other.cell = nil
}

// holds reports whether n belongs to the heap that embeds m.
func holds[T any](m *membership, n *Node[T]) bool {
	return n.owner != nil && m.cell != nil && n.owner.resolve() == m.cell
}

// binomialLink makes c the newest child of n. Children are prepended, so a
// binomial node's child list runs from degree-1 down to 0.
func (n *Node[T]) binomialLink(c *Node[T]) {
	c.parent = n
	c.right = n.child
	n.child = c
	n.degree++
}

// fibonacciLink splices the root c into n's circular child list.
// c must already be unlinked from its own list.
func (n *Node[T]) fibonacciLink(c *Node[T]) {
	c.parent = n
	c.mark = false
	if n.child == nil {
		c.left, c.right = c, c
	} else {
		c.right = n.child
		c.left = n.child.left
		n.child.left.right = c
		n.child.left = c
	}
	n.child = c
	n.degree++
}

// unlinkCircular removes n from the circular list it sits in and turns it
// into a singleton cycle.
func (n *Node[T]) unlinkCircular() {
	n.left.right = n.right
	n.right.left = n.left
	n.left, n.right = n, n
}

// swapPayload exchanges key and Data with o, leaving the tree shape intact.
func (n *Node[T]) swapPayload(o *Node[T]) {
	n.key, o.key = o.key, n.key
	n.Data, o.Data = o.Data, n.Data
}

func (n *Node[T]) String() string {
	return fmt.Sprintf("%v(%d)", n.Data, n.key)
}
