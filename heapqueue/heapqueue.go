package heapqueue

import (
	"container/heap"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrDuplicateKey indicates the same key was supplied twice to FromItems.
var ErrDuplicateKey = errors.New("heapqueue: duplicate key")

// Item pairs a key with its initial priority.
type Item[K comparable, P constraints.Integer] struct {
	Key      K
	Priority P
}

// entry is a heap node; index is its current position in the heap slice.
type entry[K comparable, P constraints.Integer] struct {
	key      K
	priority P
	index    int
}

// entries implements heap.Interface ordered by ascending priority.
type entries[K comparable, P constraints.Integer] []*entry[K, P]

func (h entries[K, P]) Len() int           { return len(h) }
func (h entries[K, P]) Less(i, j int) bool { return h[i].priority < h[j].priority }

func (h entries[K, P]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entries[K, P]) Push(x any) {
	e := x.(*entry[K, P])
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entries[K, P]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil // avoid memory leak
	e.index = -1
	*h = old[:n-1]

	return e
}

// Queue is a keyed min-heap. Not safe for concurrent use.
type Queue[K comparable, P constraints.Integer] struct {
	heap  entries[K, P]
	byKey map[K]*entry[K, P]
}

// New builds a queue from an initial priority assignment in O(n).
func New[K comparable, P constraints.Integer](priorities map[K]P) *Queue[K, P] {
	q := &Queue[K, P]{
		heap:  make(entries[K, P], 0, len(priorities)),
		byKey: make(map[K]*entry[K, P], len(priorities)),
	}
	for k, p := range priorities {
		q.add(k, p)
	}
	heap.Init(&q.heap)

	return q
}

// FromItems builds a queue from an ordered slice; a repeated key is rejected.
func FromItems[K comparable, P constraints.Integer](items []Item[K, P]) (*Queue[K, P], error) {
	q := &Queue[K, P]{
		heap:  make(entries[K, P], 0, len(items)),
		byKey: make(map[K]*entry[K, P], len(items)),
	}
	for _, it := range items {
		if _, dup := q.byKey[it.Key]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, it.Key)
		}
		q.add(it.Key, it.Priority)
	}
	heap.Init(&q.heap)

	return q, nil
}

func (q *Queue[K, P]) add(k K, p P) {
	e := &entry[K, P]{key: k, priority: p, index: len(q.heap)}
	q.heap = append(q.heap, e)
	q.byKey[k] = e
}

// PopMin removes and returns a minimum-priority key. ok is false when empty.
func (q *Queue[K, P]) PopMin() (key K, priority P, ok bool) {
	if len(q.heap) == 0 {
		return key, priority, false
	}
	e := heap.Pop(&q.heap).(*entry[K, P])
	delete(q.byKey, e.key)

	return e.key, e.priority, true
}

// DecreaseKey lowers key's priority by delta, clamping at zero.
// Absent keys, non-positive deltas and keys already at or below zero are ignored.
func (q *Queue[K, P]) DecreaseKey(key K, delta P) {
	e, ok := q.byKey[key]
	if !ok || delta <= 0 {
		return
	}
	var zero P
	switch {
	case e.priority <= zero:
		return // already at the floor
	case e.priority < delta:
		e.priority = zero
	default:
		e.priority -= delta
	}
	heap.Fix(&q.heap, e.index)
}

// Len reports the number of live keys.
func (q *Queue[K, P]) Len() int { return len(q.heap) }

// Contains reports whether key is still queued.
func (q *Queue[K, P]) Contains(key K) bool {
	_, ok := q.byKey[key]
	return ok
}

// Priority returns key's current priority, or ok == false if it is not live.
func (q *Queue[K, P]) Priority(key K) (priority P, ok bool) {
	e, ok := q.byKey[key]
	if !ok {
		return priority, false
	}

	return e.priority, true
}
