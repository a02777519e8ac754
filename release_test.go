package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseScope_multipleReleases(t *testing.T) {
	t.Parallel()

	release := func(s *ReleaseScope) error { return s.Release() }
	releaseIn := func(d time.Duration) func(*ReleaseScope) error {
		return func(s *ReleaseScope) error { return s.ReleaseIn(d) }
	}

	tests := []struct {
		name          string
		first         func(*ReleaseScope) error
		second        func(*ReleaseScope) error
		wantReady     bool
		wantReadyLate bool
	}{
		{
			name:          "release twice",
			first:         release,
			second:        release,
			wantReady:     true,
			wantReadyLate: true,
		},
		{
			name:          "release then releaseIn",
			first:         release,
			second:        releaseIn(time.Millisecond),
			wantReady:     true,
			wantReadyLate: true,
		},
		{
			name:          "releaseIn then release",
			first:         releaseIn(time.Second),
			second:        release,
			wantReady:     false,
			wantReadyLate: true,
		},
		{
			name:          "releaseIn twice",
			first:         releaseIn(time.Second),
			second:        releaseIn(time.Hour),
			wantReady:     false,
			wantReadyLate: true,
		},
		{
			name:          "releaseIn with zero timeout then releaseIn",
			first:         releaseIn(0),
			second:        releaseIn(time.Hour),
			wantReady:     true,
			wantReadyLate: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			clock := NewManualClock(0)
			id := NewIdentity(WithClock(clock))

			var firstErr, secondErr error
			Debounce(id, func(s *ReleaseScope) {
				firstErr = tt.first(s)
				secondErr = tt.second(s)
			})

			require.NoError(t, firstErr)
			assert.ErrorIs(t, secondErr, ErrAlreadyReleased)

			// The first release stays in effect.
			assert.Equal(t, tt.wantReady, id.Ready())
			clock.Advance(time.Second)
			assert.Equal(t, tt.wantReadyLate, id.Ready())
		})
	}
}

func TestReleaseScope_Released(t *testing.T) {
	t.Parallel()

	id := NewIdentity(WithClock(NewManualClock(0)))

	Debounce(id, func(s *ReleaseScope) {
		assert.False(t, s.Released())
		assert.NoError(t, s.ReleaseIn(time.Millisecond))
		assert.True(t, s.Released())
		assert.Error(t, s.Release())
		assert.True(t, s.Released())
	})
}

func TestReleaseScope_staleScope(t *testing.T) {
	t.Parallel()

	clock := NewManualClock(0)
	id := NewIdentity(WithClock(clock))

	var stale *ReleaseScope
	Debounce(id, func(s *ReleaseScope) {
		stale = s
		assert.NoError(t, s.Release())
	})

	// A scope from a finished cycle cannot release a later one.
	Debounce(id, func(*ReleaseScope) {})
	assert.ErrorIs(t, stale.Release(), ErrAlreadyReleased)
	assert.False(t, id.Ready())
}

func TestReleaseScope_freshScopePerCycle(t *testing.T) {
	t.Parallel()

	id := NewIdentity(WithClock(NewManualClock(0)))

	var scopes []*ReleaseScope
	for i := 0; i < 3; i++ {
		Debounce(id, func(s *ReleaseScope) {
			scopes = append(scopes, s)
			assert.NoError(t, s.Release())
		})
	}

	require.Len(t, scopes, 3)
	assert.NotSame(t, scopes[0], scopes[1])
	assert.NotSame(t, scopes[1], scopes[2])
}
