package heap

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by heap operations.
var (
	// ErrInvalidArgument is wrapped by every argument validation failure.
	ErrInvalidArgument = errors.New("heap: invalid argument")

	// ErrNegativeKey indicates a key below zero was supplied.
	ErrNegativeKey = fmt.Errorf("%w: key must be non-negative", ErrInvalidArgument)

	// ErrKeyIncrease indicates DecreaseKey was asked to raise a key.
	ErrKeyIncrease = fmt.Errorf("%w: new key is greater than the current key", ErrInvalidArgument)

	// ErrNilNode indicates a nil node was passed where one is required.
	ErrNilNode = fmt.Errorf("%w: node is nil", ErrInvalidArgument)

	// ErrNodeInHeap indicates Insert received a node that some heap still holds.
	ErrNodeInHeap = fmt.Errorf("%w: node already belongs to a heap", ErrInvalidArgument)

	// ErrNodeNotInHeap indicates the node is not held by the receiving heap:
	// it was extracted, never inserted, or belongs to another heap.
	ErrNodeNotInHeap = fmt.Errorf("%w: node does not belong to a heap", ErrInvalidArgument)

	// ErrSelfUnion indicates a heap was asked to absorb itself.
	ErrSelfUnion = errors.New("heap: cannot union a heap with itself")

	// ErrKindMismatch indicates Union was called with a heap of another variant.
	ErrKindMismatch = errors.New("heap: cannot union heaps of different kinds")

	// ErrUnknownKind indicates an unsupported heap variant.
	ErrUnknownKind = errors.New("heap: unknown heap kind")

	// ErrCorrupt is reported by Validate for every broken structural invariant.
	ErrCorrupt = errors.New("heap: structural invariant violated")
)

// sentinelKey is the reserved out-of-band key used by Delete. Legal keys are
// >= 0, so it always sorts below every real element and never collides with
// caller data. It is replaced by the original key before Delete returns.
const sentinelKey int64 = -1

// goldenRatio bounds Fibonacci tree sizes: a tree of degree d has >= φ^d nodes.
const goldenRatio = 1.618033988749895

// Kind selects a heap variant.
type Kind int

const (
	// Binomial selects BinomialHeap.
	Binomial Kind = iota

	// Fibonacci selects FibonacciHeap.
	Fibonacci
)

// String returns the lower-case variant name.
func (k Kind) String() string {
	switch k {
	case Binomial:
		return "binomial"
	case Fibonacci:
		return "fibonacci"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps "binomial" or "fibonacci" (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binomial":
		return Binomial, nil
	case "fibonacci", "fib":
		return Fibonacci, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Heap is the contract shared by BinomialHeap and FibonacciHeap.
//
// Nodes enter a heap through Insert or Push and leave it only through
// ExtractMin or Delete, at which point every heap-internal link is cleared
// and the node belongs to the caller again.
type Heap[T any] interface {
	// Insert adds n as a new single-node tree. A nil n is ignored.
	Insert(n *Node[T]) error

	// Push creates a node for data with the given key and inserts it.
	Push(data T, key int64) (*Node[T], error)

	// Minimum returns the node with the smallest key, or nil when empty.
	Minimum() *Node[T]

	// ExtractMin removes and returns the node with the smallest key,
	// or nil when empty.
	ExtractMin() *Node[T]

	// Union drains other into the receiver. other is left empty.
	Union(other Heap[T]) error

	// DecreaseKey lowers the key of n and restores heap order. It returns the
	// node holding n's payload afterwards.
	DecreaseKey(n *Node[T], key int64) (*Node[T], error)

	// Delete removes n's payload from the heap and returns the detached node
	// carrying it, with its original key.
	Delete(n *Node[T]) (*Node[T], error)

	// Len returns the number of nodes held.
	Len() int

	// Root returns the entry point of the root list (nil when empty). It is
	// meant for read-only traversal.
	Root() *Node[T]

	// Kind reports the variant.
	Kind() Kind
}

type options[T any] struct {
	relocate func(n *Node[T])
}

// Option configures a heap at construction time. Both variants accept every
// option; one that has no effect on a variant is kept and ignored.
type Option[T any] func(*options[T])

// WithRelocate registers fn to be called whenever a payload moves into a
// different node. Binomial key propagation swaps (key, Data) pairs between
// parent and child, so a payload→node index kept by the caller must be
// refreshed from fn. The Fibonacci variant never moves payloads.
func WithRelocate[T any](fn func(n *Node[T])) Option[T] {
	return func(o *options[T]) {
		o.relocate = fn
	}
}

func newOptions[T any](opts []Option[T]) options[T] {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns an empty heap of the requested kind.
func New[T any](kind Kind, opts ...Option[T]) (Heap[T], error) {
	switch kind {
	case Binomial:
		return NewBinomial(opts...), nil
	case Fibonacci:
		return NewFibonacci(opts...), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
}

// validateDecrease checks the DecreaseKey/Delete preconditions shared by both
// variants. It never mutates n.
func validateDecrease[T any](m *membership, n *Node[T], key int64) error {
	if err := validateMember(m, n); err != nil {
		return err
	}
	if key < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeKey, key)
	}
	if key > n.key {
		return fmt.Errorf("%w: %d > %d", ErrKeyIncrease, key, n.key)
	}
	return nil
}

// validateMember checks that n is non-nil and held by the heap owning m.
// A node held by some other heap is rejected like a detached one.
func validateMember[T any](m *membership, n *Node[T]) error {
	if n == nil {
		return ErrNilNode
	}
	if !holds(m, n) {
		return ErrNodeNotInHeap
	}
	return nil
}
