package debounce

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is the parent of all errors returned when an Action
// is constructed with invalid arguments.
var ErrInvalidConfiguration = errors.New("debounce: invalid configuration")

var (
	// ErrInvalidTimeout is returned by NewAction for a timeout <= 0.
	ErrInvalidTimeout = fmt.Errorf("%w: timeout must be positive", ErrInvalidConfiguration)

	// ErrNilFunc is returned by NewAction when the wrapped function is nil.
	ErrNilFunc = fmt.Errorf("%w: function must not be nil", ErrInvalidConfiguration)

	// ErrNoCallbacks is returned by NewAction when WithCallbacks is given
	// neither an onExecuted nor an onDebounced callback.
	ErrNoCallbacks = fmt.Errorf(
		"%w: onExecuted or onDebounced must be specified",
		ErrInvalidConfiguration,
	)
)

// ErrAlreadyReleased is returned by ReleaseScope.Release and
// ReleaseScope.ReleaseIn when the scope was already released. Only one release
// is allowed per debounce cycle.
var ErrAlreadyReleased = errors.New("debounce: multiple release calls are not allowed")
