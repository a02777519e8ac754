package debounce

import (
	"time"
)

// elapsed returns the time between since and until with nanosecond
// precision. The result is negative if until is before since.
func elapsed(since, until Instant) time.Duration {
	return time.Duration(until - since)
}
