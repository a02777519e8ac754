package debounce

import (
	"time"
)

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ReleaseScope is handed to the function run by Debounce, and ends the debounce
// cycle it was created for. Only one of Release and ReleaseIn may be called,
// and only once.
type ReleaseScope struct {
	_ noCopy

	id       *Identity
	released bool
}

func newReleaseScope(id *Identity) *ReleaseScope {
	return &ReleaseScope{id: id}
}

// Release makes the Identity ready again immediately.
//
// It returns ErrAlreadyReleased if the scope was already released, in which
// case the earlier release stays in effect.
func (s *ReleaseScope) Release() error {
	return s.release(0)
}

// ReleaseIn makes the Identity ready again once timeout has elapsed from now.
// A non-positive timeout behaves like Release.
//
// It returns ErrAlreadyReleased if the scope was already released, in which
// case the earlier release stays in effect.
func (s *ReleaseScope) ReleaseIn(timeout time.Duration) error {
	return s.release(timeout)
}

// Released reports whether Release or ReleaseIn has been called.
func (s *ReleaseScope) Released() bool {
	return s.released
}

func (s *ReleaseScope) release(timeout time.Duration) error {
	if s.released {
		return ErrAlreadyReleased
	}
	s.released = true
	s.id.release(timeout)

	return nil
}
