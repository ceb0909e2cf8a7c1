package heap

// Read-only traversal helpers. They follow right-sibling links and stop at
// either a nil link (binomial lists) or the first node again (Fibonacci
// cycles), so the same code serves both variants. None of them mutate.

// Roots returns the tree roots of h in root-list order starting at h.Root().
func Roots[T any](h Heap[T]) []*Node[T] {
	if h == nil {
		return nil
	}
	return siblings(h.Root())
}

// Children returns n's direct children in sibling order.
func Children[T any](n *Node[T]) []*Node[T] {
	if n == nil {
		return nil
	}
	return siblings(n.child)
}

// RootDegrees returns the degree of every root in root-list order.
func RootDegrees[T any](h Heap[T]) []int {
	roots := Roots(h)
	out := make([]int, len(roots))
	for i, r := range roots {
		out[i] = r.degree
	}
	return out
}

// Levels returns the tree rooted at r breadth first, one slice per depth.
func Levels[T any](r *Node[T]) [][]*Node[T] {
	if r == nil {
		return nil
	}
	var out [][]*Node[T]
	level := []*Node[T]{r}
	for len(level) > 0 {
		out = append(out, level)
		var next []*Node[T]
		for _, n := range level {
			next = append(next, Children(n)...)
		}
		level = next
	}
	return out
}

// Walk visits every node of h depth first (root, then its children), passing
// the depth below its tree root. Returning false from fn stops the walk.
func Walk[T any](h Heap[T], fn func(n *Node[T], depth int) bool) {
	var visit func(n *Node[T], depth int) bool
	visit = func(n *Node[T], depth int) bool {
		if !fn(n, depth) {
			return false
		}
		for _, c := range Children(n) {
			if !visit(c, depth+1) {
				return false
			}
		}
		return true
	}
	for _, r := range Roots(h) {
		if !visit(r, 0) {
			return
		}
	}
}

func siblings[T any](first *Node[T]) []*Node[T] {
	var out []*Node[T]
	for x := first; x != nil; {
		out = append(out, x)
		x = x.right
		if x == first {
			break
		}
	}
	return out
}
