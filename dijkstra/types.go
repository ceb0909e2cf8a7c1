package dijkstra

import (
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/meldheap/heap"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not built with weights.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source vertex is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or below.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// MemoryMode controls how predecessor information is stored during a run.
//
// MemoryModeFull    – the predecessor map is always built, even when the
// caller does not ask for it.
// MemoryModeCompact – the predecessor map is built only for WithReturnPath,
// saving O(V) when only distances are wanted.
type MemoryMode int

const (
	// MemoryModeFull stores all predecessors to allow direct path recovery.
	MemoryModeFull MemoryMode = iota

	// MemoryModeCompact skips the predecessor map unless WithReturnPath is set.
	MemoryModeCompact
)

// Options configures a Dijkstra run.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// ReturnPath       – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance      – cap on distances; vertices beyond it are never queued.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
//
// Heap             – queue variant. heap.Fibonacci (default) gives O(1)
// amortized DecreaseKey; heap.Binomial gives O(log V).
// Logger           – receives Debug records named "settle" and "relax".
//
//	Default discards everything.
type Options struct {
	Source           string       // starting vertex ID
	MemoryMode       MemoryMode   // predecessor storage policy
	ReturnPath       bool         // return the predecessor map
	MaxDistance      int64        // vertices beyond this distance are never settled
	InfEdgeThreshold int64        // edges with weight >= this are impassable
	Heap             heap.Kind    // priority queue variant
	Logger           *slog.Logger // debug trace; never nil after DefaultOptions
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. It is required.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithMemoryMode sets the predecessor storage policy.
// MemoryModeFull: always build the predecessor map.
// MemoryModeCompact: build it only when WithReturnPath is set.
func WithMemoryMode(mode MemoryMode) Option {
	return func(o *Options) {
		o.MemoryMode = mode
	}
}

// WithReturnPath enables the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed it are never queued and keep
// math.MaxInt64 in dist. A negative max panics with ErrBadMaxDistance.
// Default (if not set) is math.MaxInt64 (no cap).
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at which edges are
// treated as closed. Edges with weight ≥ threshold are skipped entirely.
// A threshold <= 0 panics with ErrBadInfThreshold.
// Default (if not set) is math.MaxInt64 (no edges treated as impassable).
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithHeap selects the priority queue variant. Distances are identical for
// every kind; only the cost profile of DecreaseKey changes.
func WithHeap(kind heap.Kind) Option {
	return func(o *Options) {
		o.Heap = kind
	}
}

// WithLogger sets the logger that receives a debug record for every settled
// vertex and every improved distance. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the defaults for source: full memory mode, no path,
// no distance cap, no impassable edges, a Fibonacci heap and a discarding
// logger.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MemoryMode:       MemoryModeFull,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		Heap:             heap.Fibonacci,
		Logger:           slog.New(slog.DiscardHandler),
	}
}
