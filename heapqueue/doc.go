// Package heapqueue is a binary min-heap with keyed decrease-key.
//
// It offers the same PopMin / DecreaseKey contract as bucketqueue without a
// fixed upper bound on priorities, at O(log n) per operation instead of O(1).
// The peeling engine can run on either queue; both must remove the same set of
// nodes, which is how the tests cross-check the bucket queue.
//
// Unlike the lazy re-push used by dijkstra-style loops, every item remembers its
// heap position, so DecreaseKey updates the entry in place with heap.Fix and the
// heap never holds stale duplicates.
package heapqueue
