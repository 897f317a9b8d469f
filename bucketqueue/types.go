package bucketqueue

import "errors"

// Sentinel errors for queue construction.
var (
	// ErrBadMaxPriority indicates a negative upper priority bound.
	ErrBadMaxPriority = errors.New("bucketqueue: max priority must be non-negative")

	// ErrPriorityOutOfRange indicates an initial priority outside [0, MaxPriority].
	ErrPriorityOutOfRange = errors.New("bucketqueue: priority out of range")

	// ErrDuplicateKey indicates the same key was supplied twice to FromItems.
	ErrDuplicateKey = errors.New("bucketqueue: duplicate key")
)

// Item pairs a key with its initial priority.
type Item[K comparable] struct {
	Key      K
	Priority int
}

// slot records where a live key currently sits: bucket index and position inside it.
type slot struct {
	priority int
	pos      int
}

// Queue is a bounded min-priority queue over keys of type K.
// The zero value is not usable; build one with New or FromItems.
type Queue[K comparable] struct {
	buckets [][]K      // buckets[p] holds every live key with priority p
	index   map[K]slot // live key → bucket and position
	cursor  int        // all buckets below cursor are empty
	maxPrio int
}
