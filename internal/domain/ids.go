package domain

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the local date-time layout used for every timestamp
// exposed by the API (createdAt, deadline).
const TimestampLayout = "2006-01-02T15:04:05.000"

// FormatTimestamp renders t in local time using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// NewID returns a fresh opaque identifier.
func NewID() string {
	return uuid.NewString()
}

// Sequence hands out strictly increasing numbers that follow wall-clock
// milliseconds but never repeat, even when many callers ask within the same
// millisecond. It is safe for concurrent use.
type Sequence struct {
	last atomic.Int64
	now  func() time.Time
}

// NewSequence creates a Sequence driven by the given clock.
// A nil clock defaults to time.Now.
func NewSequence(now func() time.Time) *Sequence {
	if now == nil {
		now = time.Now
	}
	return &Sequence{now: now}
}

// Next returns max(now in milliseconds, previous+1).
func (s *Sequence) Next() int64 {
	for {
		last := s.last.Load()
		next := s.now().UnixMilli()
		if next <= last {
			next = last + 1
		}
		if s.last.CompareAndSwap(last, next) {
			return next
		}
	}
}

// NextWithPrefix returns prefix followed by the decimal form of Next.
func (s *Sequence) NextWithPrefix(prefix string) string {
	return prefix + strconv.FormatInt(s.Next(), 10)
}
