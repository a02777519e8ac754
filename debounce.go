// Package debounce provides synchronous debouncing of function calls, i.e.,
// ignoring calls which happen too soon after a previous execution.
//
// Two designs are provided. An Action wraps a function and a timeout, and
// executes the function only if the timeout has elapsed since its previous
// execution:
//
//	save, err := debounce.New(time.Second, func() { store.Save() })
//
// An Identity instead stays debounced until the function run by Debounce
// explicitly releases it, which suits work of unknown duration:
//
//	button := debounce.NewIdentity()
//
//	debounce.Debounce(button, func(scope *debounce.ReleaseScope) {
//		go fetch(func() {
//			events <- func() { _ = scope.ReleaseIn(time.Second) }
//		})
//	})
//
// Nothing in this package starts goroutines or timers. Elapsed time is
// checked against a Clock when a call is made, and functions are executed on
// the calling goroutine. None of the types are safe for concurrent use.
package debounce

import (
	"time"
)

// New returns a debounced function which calls f only if at least timeout has
// elapsed since the previous call of f. The first call always calls f.
//
// It is a shorthand for NewAction, returning the Invoke method of the Action.
func New(
	timeout time.Duration,
	f func(),
	opts ...Option,
) (debounced func(), err error) {
	a, err := NewAction(timeout, f, opts...)
	if err != nil {
		return nil, err
	}

	return a.Invoke, nil
}
