package debounce

import (
	"time"
)

// Identity is the debounce state of one component, such as a button, which is
// debounced with Debounce until explicitly released.
//
// Create one Identity per component, and reuse it for every event of that
// component. The zero value is not usable, use NewIdentity.
//
// Identity is not safe for concurrent use.
type Identity struct {
	clock Clock

	// inCycle is true between entering a cycle in Debounce and the release of
	// that cycle.
	inCycle bool

	// timeout is the delay requested by ReleaseIn, counted from releaseStart.
	// It only applies if delayed is true.
	timeout      time.Duration
	releaseStart Instant
	delayed      bool
}

// NewIdentity returns a ready Identity. Only the WithClock option has an
// effect, notification options are ignored.
func NewIdentity(opts ...Option) *Identity {
	c := newConfig(opts)

	return &Identity{clock: c.clock}
}

// Ready reports whether the next Debounce call on the Identity would run its
// function. It is false while a cycle has not been released, and while the
// timeout given to ReleaseScope.ReleaseIn has not yet elapsed.
func (id *Identity) Ready() bool {
	return !id.inCycle && id.releaseElapsed()
}

func (id *Identity) releaseElapsed() bool {
	if !id.delayed {
		return true
	}

	return elapsed(id.releaseStart, id.clock.Now()) >= id.timeout
}

func (id *Identity) enter() {
	id.inCycle = true
	id.delayed = false
	id.timeout = 0
	id.releaseStart = 0
}

// release ends the current cycle. A non-positive timeout makes the Identity
// ready immediately.
func (id *Identity) release(timeout time.Duration) {
	if timeout > 0 {
		id.timeout = timeout
		id.releaseStart = id.clock.Now()
		id.delayed = true
	} else {
		id.timeout = 0
		id.releaseStart = 0
		id.delayed = false
	}
	id.inCycle = false
}

// Debounce runs f with a new ReleaseScope if id is ready, and returns true. If
// id is not ready, f is not run and Debounce returns false.
//
// f runs synchronously, before Debounce returns. It must release the scope
// exactly once, with Release or ReleaseIn, when the work it started is done.
// The release may happen after f returns, for example from a callback of
// asynchronous work, as long as it happens on the goroutine driving id. If
// the scope is never released, id stays not ready forever.
func Debounce(id *Identity, f func(scope *ReleaseScope)) bool {
	if !id.Ready() {
		return false
	}

	id.enter()
	f(newReleaseScope(id))

	return true
}
