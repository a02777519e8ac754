package debounce

import (
	"time"
)

// notifier reports the outcome of an Action invocation. Both notification
// shapes accepted by the options are normalized into it when the option is
// applied, and either callback may be nil.
type notifier struct {
	onExecuted  func()
	onDebounced func(remaining time.Duration)
}

// generalNotifier maps a single "was executed" callback onto both events.
func generalNotifier(f func(executed bool)) *notifier {
	if f == nil {
		return nil
	}

	return &notifier{
		onExecuted:  func() { f(true) },
		onDebounced: func(time.Duration) { f(false) },
	}
}

// specificNotifier returns ErrNoCallbacks if both callbacks are nil.
func specificNotifier(
	onExecuted func(),
	onDebounced func(remaining time.Duration),
) (*notifier, error) {
	if onExecuted == nil && onDebounced == nil {
		return nil, ErrNoCallbacks
	}

	return &notifier{
		onExecuted:  onExecuted,
		onDebounced: onDebounced,
	}, nil
}

func (n *notifier) executed() {
	if n != nil && n.onExecuted != nil {
		n.onExecuted()
	}
}

func (n *notifier) debounced(remaining time.Duration) {
	if n != nil && n.onDebounced != nil {
		n.onDebounced(remaining)
	}
}
