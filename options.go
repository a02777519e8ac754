package debounce

import (
	"time"
)

// Option is a function that can be used to configure an Action or Identity.
type Option func(*config)

// WithClock returns an option that makes the Action or Identity read time from
// the given clock instead of SystemClock. A nil clock is ignored.
//
// This is mostly useful in tests, together with ManualClock.
func WithClock(clock Clock) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithNotify returns an option that calls f after every invocation of an
// Action, with true if the wrapped function was executed, and false if the
// invocation was debounced.
//
// Only the last of WithNotify and WithCallbacks takes effect. Identity ignores
// this option.
func WithNotify(f func(executed bool)) Option {
	return func(c *config) {
		c.notifier = generalNotifier(f)
	}
}

// WithCallbacks returns an option that calls onExecuted after an invocation of
// an Action which executed the wrapped function, and onDebounced with the
// time left until the Action is ready after an invocation which was
// debounced.
//
// Either callback may be nil, but not both, in which case NewAction returns
// ErrNoCallbacks.
//
// Only the last of WithNotify and WithCallbacks takes effect. Identity ignores
// this option.
func WithCallbacks(
	onExecuted func(),
	onDebounced func(remaining time.Duration),
) Option {
	return func(c *config) {
		n, err := specificNotifier(onExecuted, onDebounced)
		if err != nil {
			c.setErr(err)

			return
		}
		c.notifier = n
	}
}
