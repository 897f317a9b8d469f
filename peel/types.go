package peel

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Sentinel errors for peeling.
var (
	// ErrNilGraph is returned when a nil graph or grid is passed.
	ErrNilGraph = errors.New("peel: graph is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("peel: invalid option supplied")
)

const (
	// DefaultThreshold removes nodes with at most three live neighbours.
	DefaultThreshold = 3
	// DefaultMaxPriority fits the Moore neighbourhood (0..8).
	DefaultMaxPriority = 8
	// autoMaxPriority asks Run to derive the bound from the graph.
	autoMaxPriority = -1
)

// Graph is a mutable graph whose nodes can be peeled.
//
// Nodes returns the currently active nodes. ActiveNeighbours returns the
// active nodes adjacent to k; its length is k's degree. Remove deactivates k.
// Run always asks for k's neighbours before it removes k, so Remove may drop
// k's adjacency outright.
// *gridgraph.Grid implements Graph[gridgraph.Point].
type Graph[K comparable] interface {
	Nodes() []K
	ActiveNeighbours(k K) []K
	Remove(k K)
}

// nilable is implemented by pointer graphs that can report a typed nil,
// which a plain g == nil check does not catch.
type nilable interface {
	IsNil() bool
}

// degreeBounded is implemented by graphs that know their maximum degree.
type degreeBounded interface {
	MaxDegree() int
}

// Strategy selects the priority queue that drives the run.
type Strategy int

const (
	// StrategyBucket uses bucketqueue: O(1) per operation over [0, MaxPriority].
	StrategyBucket Strategy = iota
	// StrategyHeap uses heapqueue: O(log n) per operation, no bound needed.
	StrategyHeap
)

// String returns "bucket" or "heap".
func (s Strategy) String() string {
	switch s {
	case StrategyBucket:
		return "bucket"
	case StrategyHeap:
		return "heap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "bucket" / "heap" (case-insensitive) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bucket", "":
		return StrategyBucket, nil
	case "heap":
		return StrategyHeap, nil
	}

	return StrategyBucket, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
}

// Options holds parameters and callbacks for a peeling run.
type Options struct {
	// Threshold is the largest priority that still gets removed.
	Threshold int
	// MaxPriority bounds the bucket queue; negative means derive it from the graph.
	MaxPriority int
	// Strategy selects the queue implementation.
	Strategy Strategy
	// RecordOrder keeps every removed node in Result.Order.
	RecordOrder bool
	// OnRemove runs after each removal with the node and the priority it had.
	// Set it through WithOnRemove, which types the key.
	OnRemove func(key any, priority int)
	// Logger receives debug traces.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// Option configures a run via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when the run starts.
type Option func(*Options)

// DefaultOptions returns:
//   - Threshold:   DefaultThreshold
//   - MaxPriority: derived from the graph
//   - Strategy:    StrategyBucket
//   - no order recording, no-op OnRemove, discarding Logger.
func DefaultOptions() Options {
	return Options{
		Threshold:   DefaultThreshold,
		MaxPriority: autoMaxPriority,
		Strategy:    StrategyBucket,
		OnRemove:    func(any, int) {},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithThreshold sets the removal threshold. t < 0 is invalid.
func WithThreshold(t int) Option {
	return func(o *Options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: threshold cannot be negative (%d)", ErrOptionViolation, t)
			return
		}
		o.Threshold = t
	}
}

// WithMaxPriority fixes the bucket-queue bound. p < 0 is invalid.
// Initial degrees above p are clamped to p.
func WithMaxPriority(p int) Option {
	return func(o *Options) {
		if p < 0 {
			o.err = fmt.Errorf("%w: max priority cannot be negative (%d)", ErrOptionViolation, p)
			return
		}
		o.MaxPriority = p
	}
}

// WithStrategy selects the queue implementation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != StrategyBucket && s != StrategyHeap {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithRecordOrder keeps the removal sequence in Result.Order.
func WithRecordOrder() Option {
	return func(o *Options) {
		o.RecordOrder = true
	}
}

// WithOnRemove registers a callback invoked after each removal with the
// removed node and the priority it was popped at. K must match the key type
// of the graph passed to Run; keys of any other type are not reported.
func WithOnRemove[K comparable](fn func(key K, priority int)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		o.OnRemove = func(key any, priority int) {
			if k, ok := key.(K); ok {
				fn(k, priority)
			}
		}
	}
}

// WithLogger routes debug traces to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// StopReason explains why a run ended.
type StopReason int

const (
	// StopExhausted means every node was removed.
	StopExhausted StopReason = iota
	// StopThreshold means the minimum remaining priority exceeded the threshold.
	StopThreshold
)

// String returns "exhausted" or "threshold".
func (r StopReason) String() string {
	if r == StopThreshold {
		return "threshold"
	}

	return "exhausted"
}

// Result holds the outcome of a run.
type Result[K comparable] struct {
	// Removed is the number of nodes peeled.
	Removed int
	// Remaining is the number of nodes left active.
	Remaining int
	// Order lists removed nodes in removal order; nil unless RecordOrder.
	Order []K
	// LastPriority is the priority of the last removed node, -1 if none.
	LastPriority int
	// StoppedAt is the priority that ended the run, -1 when the queue ran dry.
	StoppedAt int
	// Reason tells whether the run ran dry or hit the threshold.
	Reason StopReason
	// MaxPriority is the bound the run actually used.
	MaxPriority int
}
