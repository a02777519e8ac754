package debounce

type config struct {
	clock    Clock
	notifier *notifier

	// err holds the first error produced by an option, and is returned from
	// the constructor.
	err error
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}

	if c.clock == nil {
		c.clock = SystemClock()
	}

	return c
}

func (c *config) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
}
