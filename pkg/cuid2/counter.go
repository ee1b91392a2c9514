package cuid2

import (
	"sync"
	"sync/atomic"
)

// counterSeedMultiplier spreads random seeds across the int64 range so that
// independent processes start their counters far apart. Any fixed odd
// constant works; this one matches the reference implementation.
const counterSeedMultiplier = 476782367

// counter is a process-lifetime monotonic counter. The seed is drawn lazily,
// exactly once, even under concurrent first use; after that every next call
// is a single lock-free atomic increment.
type counter struct {
	seedOnce sync.Once
	value    atomic.Int64
}

// next returns the current counter value and advances it by one. N calls
// return N distinct values forming a contiguous range in some order. The
// value wraps on overflow; it is never reset.
func (c *counter) next(p Platform) int64 {
	c.seedOnce.Do(func() {
		c.value.Store(p.RandomInt64() * counterSeedMultiplier)
	})
	return c.value.Add(1) - 1
}
