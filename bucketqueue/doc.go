// Package bucketqueue provides a min-priority queue specialised for a small,
// fixed range of non-negative integer priorities.
//
// What:
//
//   - Queue keeps one bucket per priority value 0..MaxPriority (MaxPriority+1 buckets).
//   - A key→slot index doubles as the key→priority map and allows O(1) removal by key.
//   - A lazy cursor remembers the lowest bucket that may still hold keys.
//
// Why:
//
//   - Peeling and cascade algorithms (k-core, "remove everything with ≤ k live
//     neighbours") need decrease-key on a bounded integer domain. A bucket array
//     gives O(1) amortized operations where a binary heap pays O(log n).
//   - This is the classic Dial's algorithm trade-off: a bounded priority range in
//     exchange for constant-time operations.
//
// Complexity:
//
//   - New / FromItems: O(n + P) where P = MaxPriority.
//   - PopMin:          O(1) amortized; the cursor walk is bounded by P per rewind.
//   - DecreaseKey:     O(1) (swap-remove from one bucket, append to another).
//   - Memory:          O(n + P).
//
// Guarantees (hold after every call):
//
//  1. Every live key sits in exactly one bucket: the one at its recorded priority.
//  2. The key→priority index always agrees with bucket membership.
//  3. DecreaseKey never raises a priority.
//  4. PopMin returns a key whose priority is minimal among live keys. Among equal
//     priorities the order is unspecified.
//
// Errors:
//
//   - ErrBadMaxPriority:     MaxPriority < 0.
//   - ErrPriorityOutOfRange: an initial priority lies outside [0, MaxPriority].
//   - ErrDuplicateKey:       FromItems received the same key twice.
//
// A stale DecreaseKey (key already popped or never inserted) is a silent no-op,
// and PopMin on an empty queue reports ok == false; neither is an error.
//
// Queue is not safe for concurrent use.
package bucketqueue
