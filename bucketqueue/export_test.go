package bucketqueue

import "fmt"

// CheckInvariants verifies bucket/index agreement and the cursor bound.
// It is visible to bucketqueue_test only.
func (q *Queue[K]) CheckInvariants() error {
	seen := 0
	for p, b := range q.buckets {
		if p < q.cursor && len(b) > 0 {
			return fmt.Errorf("bucket %d below cursor %d holds %d keys", p, q.cursor, len(b))
		}
		for i, k := range b {
			s, ok := q.index[k]
			if !ok {
				return fmt.Errorf("key %v in bucket %d missing from index", k, p)
			}
			if s.priority != p || s.pos != i {
				return fmt.Errorf("key %v indexed at (%d,%d), found at (%d,%d)", k, s.priority, s.pos, p, i)
			}
			seen++
		}
	}
	if seen != len(q.index) {
		return fmt.Errorf("index holds %d keys, buckets hold %d", len(q.index), seen)
	}

	return nil
}
