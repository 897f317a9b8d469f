// Package peel removes nodes from a bounded-degree graph in order of how many
// live neighbours they have, letting every removal lower the count of the
// nodes around it (cascading removal, k-core peeling).
//
// Overview:
//
//   - Each node's priority is its number of active neighbours, clamped to
//     [0, MaxPriority].
//   - The engine repeatedly pops the minimum-priority node. If that priority
//     exceeds Threshold, the run stops. Otherwise the node is removed from the
//     graph and each still-active neighbour has its priority decreased by one.
//   - A removal can push neighbours under the threshold, so a single run keeps
//     going until nothing at or below the threshold is left.
//
// Entry points:
//
//   - Run:           any Graph[K]; returns a Result with counts and optional removal order.
//   - Peel:          grid form; works on a copy and returns only the removed count.
//   - PeelInPlace:   grid form; erodes the caller's grid and returns the Result.
//   - CountEligible: one non-cascading pass; counts cells already at or below the threshold.
//
// Options:
//
//   - WithThreshold(t):    stop once the minimum priority exceeds t (default 3).
//   - WithMaxPriority(p):  bucket-queue bound; by default the graph's MaxDegree()
//     when it has one, otherwise the largest initial degree.
//   - WithStrategy(s):     StrategyBucket (default, O(1) per step) or StrategyHeap (O(log n)).
//   - WithRecordOrder():   keep the removal order in Result.Order.
//   - WithOnRemove(fn):    typed callback func(K, int) after each removal.
//   - WithLogger(l):       *slog.Logger for debug traces; silent by default.
//
// Complexity (StrategyBucket):
//
//   - Time:  O(V·d + V·P), d = max degree, P = MaxPriority.
//   - Space: O(V + P).
//
// Termination: every iteration either removes a node or stops, nodes are never
// re-queued, and decreases only target active neighbours.
//
// Tie order among equal priorities is unspecified; the removed count does not
// depend on it.
//
// Errors (sentinel):
//
//   - ErrNilGraph:        nil graph or grid, including a typed nil *gridgraph.Grid.
//   - ErrOptionViolation: negative threshold, negative max priority, unknown strategy.
//
// Run is single-threaded and owns the graph for its duration; do not mutate it
// concurrently.
package peel
