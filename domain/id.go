package domain

import (
	"fmt"
	"sync/atomic"
	"time"
)

var lastID atomic.Int64

// NewID generates a prefixed, time-based identifier. The nanosecond clock is
// bumped past the previously issued value, so IDs stay unique within the
// process even when entities are created back to back.
func NewID(prefix string) string {
	now := time.Now().UnixNano()
	for {
		last := lastID.Load()
		if now <= last {
			now = last + 1
		}
		if lastID.CompareAndSwap(last, now) {
			return fmt.Sprintf("%s-%d", prefix, now)
		}
	}
}
