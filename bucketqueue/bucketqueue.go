package bucketqueue

import "fmt"

// New builds a queue from a complete initial priority assignment.
// Every priority must lie in [0, maxPriority]; the first violation aborts
// construction with ErrPriorityOutOfRange. Map iteration order decides the
// order of keys inside a bucket, so ties pop in no particular order.
//
// Complexity: O(len(priorities) + maxPriority).
func New[K comparable](priorities map[K]int, maxPriority int) (*Queue[K], error) {
	q, err := newQueue[K](maxPriority, len(priorities))
	if err != nil {
		return nil, err
	}
	for k, p := range priorities {
		if err = q.place(k, p); err != nil {
			return nil, err
		}
	}

	return q, nil
}

// FromItems builds a queue from an ordered slice of items. Behaviour matches New,
// except that keys inside one bucket keep a reproducible order and a repeated key
// is rejected with ErrDuplicateKey.
//
// Complexity: O(len(items) + maxPriority).
func FromItems[K comparable](items []Item[K], maxPriority int) (*Queue[K], error) {
	q, err := newQueue[K](maxPriority, len(items))
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if _, dup := q.index[it.Key]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, it.Key)
		}
		if err = q.place(it.Key, it.Priority); err != nil {
			return nil, err
		}
	}

	return q, nil
}

// newQueue allocates the bucket array and index.
func newQueue[K comparable](maxPriority, sizeHint int) (*Queue[K], error) {
	if maxPriority < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMaxPriority, maxPriority)
	}

	return &Queue[K]{
		buckets: make([][]K, maxPriority+1),
		index:   make(map[K]slot, sizeHint),
		cursor:  0,
		maxPrio: maxPriority,
	}, nil
}

// place validates p and appends k to bucket p.
func (q *Queue[K]) place(k K, p int) error {
	if p < 0 || p > q.maxPrio {
		return fmt.Errorf("%w: key %v priority %d not in [0, %d]", ErrPriorityOutOfRange, k, p, q.maxPrio)
	}
	q.push(k, p)

	return nil
}

// PopMin removes and returns a key with the lowest priority, together with
// that priority. ok is false once the queue is empty.
//
// The cursor only moves forward here; DecreaseKey is the only thing that
// moves it back.
func (q *Queue[K]) PopMin() (key K, priority int, ok bool) {
	// 1) Skip empty buckets. Everything below cursor is already known empty.
	for q.cursor <= q.maxPrio && len(q.buckets[q.cursor]) == 0 {
		q.cursor++
	}

	// 2) Walked past the last bucket: nothing left.
	if q.cursor > q.maxPrio {
		var zero K
		return zero, 0, false
	}

	// 3) Take the tail of the bucket; tail removal needs no swap.
	b := q.buckets[q.cursor]
	key = b[len(b)-1]
	q.remove(key, slot{priority: q.cursor, pos: len(b) - 1})

	return key, q.cursor, true
}

// DecreaseKey lowers key's priority by delta, clamping at zero, and rewinds
// the cursor when the key lands below it.
//
// It does nothing when key is not live (already popped or never inserted) or
// when delta <= 0. Priorities never go up.
func (q *Queue[K]) DecreaseKey(key K, delta int) {
	s, live := q.index[key]
	if !live || delta <= 0 {
		return
	}

	np := s.priority - delta
	if np < 0 {
		np = 0
	}
	if np == s.priority {
		return // already at zero
	}

	q.remove(key, s)
	q.push(key, np)
	if np < q.cursor {
		q.cursor = np
	}
}

// Len reports the number of live keys.
func (q *Queue[K]) Len() int { return len(q.index) }

// Contains reports whether key is still queued.
func (q *Queue[K]) Contains(key K) bool {
	_, ok := q.index[key]
	return ok
}

// Priority returns key's current priority, or ok == false if it is not live.
func (q *Queue[K]) Priority(key K) (priority int, ok bool) {
	s, ok := q.index[key]
	return s.priority, ok
}

// MaxPriority returns the upper bound fixed at construction.
func (q *Queue[K]) MaxPriority() int { return q.maxPrio }

// push appends k to bucket p and records its slot.
func (q *Queue[K]) push(k K, p int) {
	q.index[k] = slot{priority: p, pos: len(q.buckets[p])}
	q.buckets[p] = append(q.buckets[p], k)
}

// remove swap-deletes k from the bucket described by s and forgets it.
func (q *Queue[K]) remove(k K, s slot) {
	b := q.buckets[s.priority]
	last := len(b) - 1
	if s.pos != last {
		moved := b[last]
		b[s.pos] = moved
		q.index[moved] = slot{priority: s.priority, pos: s.pos}
	}
	var zero K
	b[last] = zero // drop the reference for the GC
	q.buckets[s.priority] = b[:last]
	delete(q.index, k)
}
