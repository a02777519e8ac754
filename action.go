package debounce

import (
	"fmt"
	"time"
)

// DefaultTimeout is a reasonable timeout for debouncing user input such as
// button clicks.
const DefaultTimeout = 400 * time.Millisecond

// State is the debounce state of some component.
type State interface {
	// Ready reports whether using the component right now would execute it,
	// rather than be debounced.
	Ready() bool
}

var (
	_ State = (*Action)(nil)
	_ State = (*Identity)(nil)
)

// Action wraps a function, and executes it on Invoke only if the previous
// execution happened at least timeout ago.
//
// Unlike the trailing debouncers common elsewhere, Action never schedules
// anything: the function runs synchronously within Invoke, or not at all.
//
// Action is not safe for concurrent use. It is meant to be driven from a single
// goroutine, such as an event loop, or guarded by the caller.
type Action struct {
	timeout  time.Duration
	fn       func()
	clock    Clock
	notifier *notifier

	// last is the instant of the last execution, valid only if invoked is
	// true.
	last    Instant
	invoked bool
}

// NewAction returns an Action which executes f at most once per timeout.
//
// The first Invoke always executes f. Subsequent calls execute f only once at
// least timeout has elapsed since the end of the previous execution.
//
// NewAction returns an error wrapping ErrInvalidConfiguration if timeout is
// not positive, f is nil, or an option is invalid.
func NewAction(timeout time.Duration, f func(), opts ...Option) (*Action, error) {
	if timeout <= 0 {
		return nil, fmt.Errorf("%w, got %s", ErrInvalidTimeout, timeout)
	}
	if f == nil {
		return nil, ErrNilFunc
	}

	c := newConfig(opts)
	if c.err != nil {
		return nil, c.err
	}

	return &Action{
		timeout:  timeout,
		fn:       f,
		clock:    c.clock,
		notifier: c.notifier,
	}, nil
}

// MustNewAction is like NewAction but panics on error.
func MustNewAction(timeout time.Duration, f func(), opts ...Option) *Action {
	a, err := NewAction(timeout, f, opts...)
	if err != nil {
		panic(err)
	}

	return a
}

// Invoke executes the wrapped function if the Action is ready, and notifies
// the configured callbacks of the outcome.
func (a *Action) Invoke() {
	elapsed, ok := a.elapsed()
	if !ok {
		a.execute()

		return
	}

	remaining := a.timeout - elapsed
	if remaining <= 0 {
		a.execute()

		return
	}

	a.notifier.debounced(remaining)
}

// Ready reports whether Invoke would execute the wrapped function if called
// right now.
func (a *Action) Ready() bool {
	elapsed, ok := a.elapsed()

	return !ok || elapsed >= a.timeout
}

// Timeout returns the timeout the Action was created with.
func (a *Action) Timeout() time.Duration {
	return a.timeout
}

func (a *Action) execute() {
	a.fn()
	a.last = a.clock.Now()
	a.invoked = true
	a.notifier.executed()
}

// elapsed returns the time since the last execution, and false if there has
// not been one yet.
func (a *Action) elapsed() (time.Duration, bool) {
	if !a.invoked {
		return 0, false
	}

	return elapsed(a.last, a.clock.Now()), true
}
