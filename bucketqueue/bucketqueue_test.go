package bucketqueue_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvpeel/bucketqueue"
)

// QueueSuite exercises construction, extraction and decrease-key.
type QueueSuite struct {
	suite.Suite
}

func TestQueueSuite(t *testing.T) {
	suite.Run(t, new(QueueSuite))
}

// drain pops until empty and returns the priorities in pop order.
func drain[K comparable](t *testing.T, q *bucketqueue.Queue[K]) ([]K, []int) {
	t.Helper()
	var keys []K
	var prios []int
	for {
		k, p, ok := q.PopMin()
		if !ok {
			break
		}
		require.NoError(t, q.CheckInvariants())
		keys = append(keys, k)
		prios = append(prios, p)
	}

	return keys, prios
}

// TestNewRejectsOutOfRange ensures construction fails fast instead of clamping.
func (s *QueueSuite) TestNewRejectsOutOfRange() {
	_, err := bucketqueue.New(map[string]int{"a": 9}, 8)
	require.ErrorIs(s.T(), err, bucketqueue.ErrPriorityOutOfRange)

	_, err = bucketqueue.New(map[string]int{"a": -1}, 8)
	require.ErrorIs(s.T(), err, bucketqueue.ErrPriorityOutOfRange)

	_, err = bucketqueue.New(map[string]int{}, -1)
	require.ErrorIs(s.T(), err, bucketqueue.ErrBadMaxPriority)
}

// TestFromItemsDuplicate ensures a repeated key is rejected.
func (s *QueueSuite) TestFromItemsDuplicate() {
	_, err := bucketqueue.FromItems([]bucketqueue.Item[int]{{1, 0}, {1, 2}}, 4)
	require.ErrorIs(s.T(), err, bucketqueue.ErrDuplicateKey)
}

// TestEmptyQueue checks that popping an empty queue is not an error.
func (s *QueueSuite) TestEmptyQueue() {
	q, err := bucketqueue.New(map[string]int{}, 8)
	require.NoError(s.T(), err)
	_, _, ok := q.PopMin()
	require.False(s.T(), ok)
	_, _, ok = q.PopMin()
	require.False(s.T(), ok)
	require.Equal(s.T(), 0, q.Len())
}

// TestZeroBound allows a single-bucket queue.
func (s *QueueSuite) TestZeroBound() {
	q, err := bucketqueue.New(map[string]int{"a": 0, "b": 0}, 0)
	require.NoError(s.T(), err)
	_, prios := drain(s.T(), q)
	require.Equal(s.T(), []int{0, 0}, prios)
}

// TestMaxNeighbourCountFits checks that priority 8 is representable with bound 8.
func (s *QueueSuite) TestMaxNeighbourCountFits() {
	q, err := bucketqueue.New(map[string]int{"centre": 8}, 8)
	require.NoError(s.T(), err)
	k, p, ok := q.PopMin()
	require.True(s.T(), ok)
	require.Equal(s.T(), "centre", k)
	require.Equal(s.T(), 8, p)
}

// TestPopOrder verifies non-decreasing pop order and a lossless drain.
func (s *QueueSuite) TestPopOrder() {
	in := map[string]int{"a": 3, "b": 1, "c": 4, "d": 1, "e": 5, "f": 0, "g": 8}
	q, err := bucketqueue.New(in, 8)
	require.NoError(s.T(), err)
	require.Equal(s.T(), len(in), q.Len())

	keys, prios := drain(s.T(), q)
	require.IsNonDecreasing(s.T(), prios)
	require.ElementsMatch(s.T(), []string{"a", "b", "c", "d", "e", "f", "g"}, keys)
	for i, k := range keys {
		assert.Equal(s.T(), in[k], prios[i], "key %s", k)
	}
}

// TestDecreaseKeyRewindsCursor lowers a key below the cursor after pops.
func (s *QueueSuite) TestDecreaseKeyRewindsCursor() {
	q, err := bucketqueue.FromItems([]bucketqueue.Item[string]{
		{"low", 2}, {"high", 6},
	}, 8)
	require.NoError(s.T(), err)

	k, p, ok := q.PopMin()
	require.True(s.T(), ok)
	require.Equal(s.T(), "low", k)
	require.Equal(s.T(), 2, p)

	// Cursor now sits at 2 or above; push "high" down to 1.
	q.DecreaseKey("high", 5)
	require.NoError(s.T(), q.CheckInvariants())
	got, ok := q.Priority("high")
	require.True(s.T(), ok)
	require.Equal(s.T(), 1, got)

	k, p, ok = q.PopMin()
	require.True(s.T(), ok)
	require.Equal(s.T(), "high", k)
	require.Equal(s.T(), 1, p)
}

// TestDecreaseKeyClampsAtZero ensures priorities never go negative.
func (s *QueueSuite) TestDecreaseKeyClampsAtZero() {
	q, err := bucketqueue.New(map[string]int{"a": 2}, 8)
	require.NoError(s.T(), err)
	q.DecreaseKey("a", 100)
	p, ok := q.Priority("a")
	require.True(s.T(), ok)
	require.Equal(s.T(), 0, p)
	q.DecreaseKey("a", 1)
	p, _ = q.Priority("a")
	require.Equal(s.T(), 0, p)
	require.NoError(s.T(), q.CheckInvariants())
}

// TestDecreaseKeyNeverRaises ensures non-positive deltas change nothing.
func (s *QueueSuite) TestDecreaseKeyNeverRaises() {
	q, err := bucketqueue.New(map[string]int{"a": 4}, 8)
	require.NoError(s.T(), err)
	q.DecreaseKey("a", 0)
	q.DecreaseKey("a", -3)
	p, _ := q.Priority("a")
	require.Equal(s.T(), 4, p)
}

// TestStaleDecreaseIsNoOp checks that decreasing popped or unknown keys
// leaves every other key untouched.
func (s *QueueSuite) TestStaleDecreaseIsNoOp() {
	q, err := bucketqueue.FromItems([]bucketqueue.Item[string]{
		{"a", 0}, {"b", 3}, {"c", 5},
	}, 8)
	require.NoError(s.T(), err)

	k, _, _ := q.PopMin()
	require.Equal(s.T(), "a", k)

	for i := 0; i < 10; i++ {
		q.DecreaseKey("a", 1)       // popped
		q.DecreaseKey("missing", 1) // never inserted
	}
	require.NoError(s.T(), q.CheckInvariants())
	require.False(s.T(), q.Contains("a"))
	require.Equal(s.T(), 2, q.Len())

	pb, _ := q.Priority("b")
	pc, _ := q.Priority("c")
	require.Equal(s.T(), 3, pb)
	require.Equal(s.T(), 5, pc)

	keys, prios := drain(s.T(), q)
	require.Equal(s.T(), []string{"b", "c"}, keys)
	require.Equal(s.T(), []int{3, 5}, prios)
}

// TestMaxPriority returns the construction bound.
func (s *QueueSuite) TestMaxPriority() {
	q, err := bucketqueue.New(map[int]int{}, 12)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 12, q.MaxPriority())
}

// TestRandomOperations interleaves pops and decreases and checks that every
// pop returns the true minimum among live keys.
func TestRandomOperations(t *testing.T) {
	const (
		n       = 500
		maxPrio = 8
	)
	r := rand.New(rand.NewSource(7))
	live := make(map[int]int, n)
	for i := 0; i < n; i++ {
		live[i] = r.Intn(maxPrio + 1)
	}
	q, err := bucketqueue.New(live, maxPrio)
	require.NoError(t, err)

	popped := 0
	for q.Len() > 0 {
		if r.Intn(3) == 0 {
			k := r.Intn(n + 50) // some keys never existed or are gone
			d := r.Intn(4)
			q.DecreaseKey(k, d)
			if p, ok := live[k]; ok && d > 0 {
				p -= d
				if p < 0 {
					p = 0
				}
				live[k] = p
			}
			require.NoError(t, q.CheckInvariants())
			continue
		}

		k, p, ok := q.PopMin()
		require.True(t, ok)
		require.GreaterOrEqual(t, p, 0)
		require.LessOrEqual(t, p, maxPrio)
		require.Equal(t, live[k], p)
		for other, op := range live {
			require.GreaterOrEqual(t, op, p, "live key %d has lower priority than popped %d", other, k)
		}
		delete(live, k)
		popped++
		require.NoError(t, q.CheckInvariants())
	}
	require.Equal(t, n, popped)
	require.Empty(t, live)
}

// TestErrorWrapping keeps the offending key in the message.
func TestErrorWrapping(t *testing.T) {
	_, err := bucketqueue.New(map[string]int{"x": 42}, 8)
	require.Error(t, err)
	require.True(t, errors.Is(err, bucketqueue.ErrPriorityOutOfRange))
	require.Contains(t, err.Error(), "x")
	require.Contains(t, err.Error(), "42")
}
