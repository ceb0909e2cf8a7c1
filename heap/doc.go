// Package heap provides two mergeable priority queues, a binomial heap and a
// Fibonacci heap, behind one contract.
//
// Overview:
//
//   - Both variants store caller-created *Node values. A node carries an
//     opaque payload (Data) and a non-negative int64 key; a lower key means a
//     higher priority.
//   - The node handle, not the key, identifies an element: DecreaseKey and
//     Delete take the node returned by Push (or the one passed to Insert).
//   - Union is destructive: the argument heap is drained into the receiver
//     and left empty.
//
// Variants:
//
//   - BinomialHeap keeps a singly linked root list in strictly ascending
//     degree order with at most one binomial tree per degree. Every
//     structural change funnels through union.
//   - FibonacciHeap keeps a circular doubly linked root list and defers all
//     cleanup to the consolidation pass inside ExtractMin. DecreaseKey cuts
//     the node loose and cascades through marked ancestors.
//
// Complexity:
//
//	Operation    Binomial     Fibonacci (amortized)
//	Insert       O(log n)     O(1)
//	Minimum      O(log n)     O(1)
//	ExtractMin   O(log n)     O(log n)
//	Union        O(log n)     O(1)
//	DecreaseKey  O(log n)     O(1)
//	Delete       O(log n)     O(log n)
//
// Key propagation in the binomial variant swaps (key, Data) pairs between a
// child and its parent instead of relinking nodes. A payload can therefore
// move to a different *Node; DecreaseKey and Delete return the node that holds
// the payload afterwards, and WithRelocate reports every move.
//
// Errors (sentinel):
//
//   - ErrInvalidArgument wraps every rejected argument:
//     ErrNegativeKey, ErrKeyIncrease, ErrNilNode, ErrNodeInHeap, ErrNodeNotInHeap.
//   - ErrSelfUnion, ErrKindMismatch: Union preconditions.
//   - ErrUnknownKind: New / ParseKind with an unsupported variant.
//   - ErrCorrupt: reported by Validate when an invariant is broken.
//
// Thread safety:
//
//   - None. A heap must not be used from several goroutines without external
//     locking, and neither operand of Union may be observed while it runs.
//
// Example:
//
//	h, _ := heap.New[string](heap.Fibonacci)
//	a, _ := h.Push("a", 5)
//	_, _ = h.Push("b", 2)
//	_, _ = h.DecreaseKey(a, 1)
//	fmt.Println(h.ExtractMin().Data) // a
package heap
