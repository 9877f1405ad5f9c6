package domain

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewID(t *testing.T) {
	t.Parallel()

	a, b := NewID(), NewID()
	if a == b {
		t.Fatalf("expected distinct IDs, got %s twice", a)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("expected UUID-shaped ID, got %q: %v", a, err)
	}
}

func TestSequenceNext_FrozenClock(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	seq := NewSequence(func() time.Time { return fixed })

	first := seq.Next()
	if first != fixed.UnixMilli() {
		t.Errorf("expected first value %d, got %d", fixed.UnixMilli(), first)
	}
	for i := int64(1); i <= 5; i++ {
		if got := seq.Next(); got != first+i {
			t.Errorf("expected %d, got %d", first+i, got)
		}
	}
}

func TestSequenceNext_FollowsClock(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	seq := NewSequence(func() time.Time { return now })
	seq.Next()

	now = now.Add(time.Second)
	if got := seq.Next(); got != now.UnixMilli() {
		t.Errorf("expected sequence to jump to %d, got %d", now.UnixMilli(), got)
	}
}

func TestSequenceNext_ConcurrentUnique(t *testing.T) {
	t.Parallel()

	seq := NewSequence(nil)
	const callers, perCaller = 16, 200

	var mu sync.Mutex
	seen := make(map[int64]struct{}, callers*perCaller)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]int64, 0, perCaller)
			for j := 0; j < perCaller; j++ {
				local = append(local, seq.Next())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, v := range local {
				seen[v] = struct{}{}
			}
		}()
	}
	wg.Wait()

	if len(seen) != callers*perCaller {
		t.Errorf("expected %d unique values, got %d", callers*perCaller, len(seen))
	}
}

func TestSequenceNextWithPrefix(t *testing.T) {
	t.Parallel()

	seq := NewSequence(nil)
	got := seq.NextWithPrefix(OrderNoPrefix)
	if !strings.HasPrefix(got, "OD") || len(got) <= 2 {
		t.Errorf("expected OD-prefixed number, got %q", got)
	}
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, time.April, 1, 9, 5, 7, 123000000, time.Local)
	if got := FormatTimestamp(ts); got != "2025-04-01T09:05:07.123" {
		t.Errorf("unexpected timestamp %q", got)
	}
}
