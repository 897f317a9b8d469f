package peel

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvpeel/bucketqueue"
	"github.com/katalvlaran/lvpeel/heapqueue"
)

// minQueue is the slice of the queue contract the engine relies on.
// Both *bucketqueue.Queue[K] and *heapqueue.Queue[K, int] satisfy it.
type minQueue[K comparable] interface {
	PopMin() (key K, priority int, ok bool)
	DecreaseKey(key K, delta int)
	Len() int
}

// Run peels g until no active node has priority ≤ Threshold.
//
// Steps:
//  1. Apply options; surface any recorded ErrOptionViolation.
//  2. Seed every active node with its active-neighbour count, clamped to [0, MaxPriority].
//  3. Build the queue selected by Strategy.
//  4. Loop: pop the minimum; stop if the queue is empty or the priority exceeds
//     Threshold; otherwise remove the node and decrease each active neighbour by 1.
//
// g is mutated: removed nodes are deactivated through g.Remove.
//
// Complexity: O(V·d + V·P) with StrategyBucket, O(V·d·log V) with StrategyHeap.
func Run[K comparable](g Graph[K], opts ...Option) (*Result[K], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if n, ok := g.(nilable); ok && n.IsNil() {
		return nil, ErrNilGraph
	}

	// 2) Seed priorities and build the queue.
	r := &runner[K]{
		g:    g,
		opts: cfg,
		log:  cfg.Logger,
	}
	if err := r.init(); err != nil {
		return nil, err
	}

	// 3) Main loop.
	r.process()

	return r.res, nil
}

// runner holds the mutable state for a single peeling run.
type runner[K comparable] struct {
	g     Graph[K]     // graph being peeled; mutated through Remove
	opts  Options      // validated configuration
	q     minQueue[K]  // priority queue over active nodes
	res   *Result[K]   // accumulated outcome
	log   *slog.Logger // debug traces
	total int          // active nodes at start
}

// init computes initial priorities and constructs the queue.
func (r *runner[K]) init() error {
	nodes := r.g.Nodes()
	degrees := make([]int, len(nodes))
	maxSeen := 0
	for i, k := range nodes {
		degrees[i] = len(r.g.ActiveNeighbours(k))
		if degrees[i] > maxSeen {
			maxSeen = degrees[i]
		}
	}

	// 1) Resolve the priority bound.
	bound := r.opts.MaxPriority
	if bound < 0 {
		if db, ok := r.g.(degreeBounded); ok {
			bound = db.MaxDegree()
		} else {
			bound = maxSeen
		}
	}

	// 2) Clamp into [0, bound]; a degree above the bound means the caller
	//    sized MaxPriority too small, which is allowed but worth a trace.
	clamped := 0
	for i := range degrees {
		if degrees[i] > bound {
			degrees[i] = bound
			clamped++
		}
	}

	r.total = len(nodes)
	r.res = &Result[K]{
		LastPriority: -1,
		StoppedAt:    -1,
		MaxPriority:  bound,
	}
	if r.opts.RecordOrder {
		r.res.Order = make([]K, 0, len(nodes))
	}

	// 3) Build the queue in node order so tie order is reproducible.
	switch r.opts.Strategy {
	case StrategyHeap:
		items := make([]heapqueue.Item[K, int], len(nodes))
		for i, k := range nodes {
			items[i] = heapqueue.Item[K, int]{Key: k, Priority: degrees[i]}
		}
		q, err := heapqueue.FromItems(items)
		if err != nil {
			return fmt.Errorf("peel: build heap queue: %w", err)
		}
		r.q = q
	default:
		items := make([]bucketqueue.Item[K], len(nodes))
		for i, k := range nodes {
			items[i] = bucketqueue.Item[K]{Key: k, Priority: degrees[i]}
		}
		q, err := bucketqueue.FromItems(items, bound)
		if err != nil {
			return fmt.Errorf("peel: build bucket queue: %w", err)
		}
		r.q = q
	}

	r.log.Debug("peel: start",
		"nodes", r.total,
		"threshold", r.opts.Threshold,
		"max_priority", bound,
		"strategy", r.opts.Strategy.String(),
		"clamped", clamped,
	)

	return nil
}

// process is the removal loop. Each iteration removes one node or stops.
func (r *runner[K]) process() {
	for {
		// 1) Pop the lowest-priority live node.
		k, p, ok := r.q.PopMin()
		if !ok {
			r.res.Reason = StopExhausted
			break
		}

		// 2) Above threshold: nothing left is removable.
		if p > r.opts.Threshold {
			r.res.Reason = StopThreshold
			r.res.StoppedAt = p
			break
		}

		// 3) Collect its live neighbours while k is still in the graph,
		//    then remove it and record.
		ns := r.g.ActiveNeighbours(k)
		r.g.Remove(k)
		r.res.Removed++
		r.res.LastPriority = p
		if r.opts.RecordOrder {
			r.res.Order = append(r.res.Order, k)
		}
		r.opts.OnRemove(k, p)

		// 4) Each active neighbour just lost one live neighbour.
		for _, n := range ns {
			r.q.DecreaseKey(n, 1)
		}
	}

	r.res.Remaining = r.total - r.res.Removed
	r.log.Debug("peel: done",
		"removed", r.res.Removed,
		"remaining", r.res.Remaining,
		"reason", r.res.Reason.String(),
		"stopped_at", r.res.StoppedAt,
	)
}
