package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/romdo/go-debounced"
)

// demoConfig describes a simulated burst of clicks.
type demoConfig struct {
	clicks   int
	interval time.Duration

	// timeout is the Action timeout.
	timeout time.Duration

	// work is how long each executed click keeps the Identity busy before it
	// is released, and releaseIn the delay passed to ReleaseIn.
	work      time.Duration
	releaseIn time.Duration
}

func (c demoConfig) validate() error {
	if c.clicks < 1 {
		return fmt.Errorf("clicks must be at least 1, got %d", c.clicks)
	}
	if c.interval < 0 {
		return fmt.Errorf("interval must not be negative, got %s", c.interval)
	}
	if c.work < 0 {
		return fmt.Errorf("work must not be negative, got %s", c.work)
	}

	return nil
}

type summary struct {
	executed  int
	debounced int
}

func (s summary) String() string {
	return fmt.Sprintf("%d executed, %d debounced", s.executed, s.debounced)
}

// runAction clicks a button debounced with an Action.
func runAction(logger zerolog.Logger, conf demoConfig) (summary, error) {
	if err := conf.validate(); err != nil {
		return summary{}, err
	}

	clock := debounce.NewManualClock(0)
	var sum summary
	var click int

	a, err := debounce.NewAction(
		conf.timeout,
		func() {
			logger.Debug().Int("click", click).Msg("running action")
		},
		debounce.WithClock(clock),
		debounce.WithCallbacks(
			func() {
				sum.executed++
				logger.Info().
					Int("click", click).
					Stringer("at", time.Duration(clock.Now())).
					Msg("executed")
			},
			func(remaining time.Duration) {
				sum.debounced++
				logger.Info().
					Int("click", click).
					Stringer("at", time.Duration(clock.Now())).
					Stringer("remaining", remaining).
					Msg("debounced")
			},
		),
	)
	if err != nil {
		return summary{}, err
	}

	for click = 1; click <= conf.clicks; click++ {
		a.Invoke()
		clock.Advance(conf.interval)
	}

	return sum, nil
}

// runIdentity clicks a button debounced with an Identity. Work started by an
// executed click finishes conf.work later, and releases the Identity with
// ReleaseIn(conf.releaseIn).
func runIdentity(logger zerolog.Logger, conf demoConfig) (summary, error) {
	if err := conf.validate(); err != nil {
		return summary{}, err
	}

	clock := debounce.NewManualClock(0)
	button := debounce.NewIdentity(debounce.WithClock(clock))

	var sum summary
	var pending *debounce.ReleaseScope
	var doneAt debounce.Instant

	for click := 1; click <= conf.clicks; click++ {
		if pending != nil && clock.Now() >= doneAt {
			if err := pending.ReleaseIn(conf.releaseIn); err != nil {
				return sum, err
			}
			logger.Debug().
				Stringer("at", time.Duration(clock.Now())).
				Stringer("releaseIn", conf.releaseIn).
				Msg("work done, released")
			pending = nil
		}

		var releaseErr error
		executed := debounce.Debounce(button, func(scope *debounce.ReleaseScope) {
			if conf.work == 0 {
				releaseErr = scope.ReleaseIn(conf.releaseIn)

				return
			}
			pending = scope
			doneAt = clock.Now() + debounce.Instant(conf.work)
		})
		if releaseErr != nil {
			return sum, releaseErr
		}

		event := logger.Info().
			Int("click", click).
			Stringer("at", time.Duration(clock.Now()))
		if executed {
			sum.executed++
			event.Msg("executed")
		} else {
			sum.debounced++
			event.Msg("debounced")
		}

		clock.Advance(conf.interval)
	}

	return sum, nil
}
