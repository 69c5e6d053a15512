package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/campus-wayfinder/stepper"
	"github.com/theoremus-urban-solutions/campus-wayfinder/wayfinding"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore(ttl time.Duration, max int) (*SessionStore, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := NewSessionStore(ttl, max)
	s.now = clock.now
	return s, clock
}

func threeLegRoute() wayfinding.Route {
	return wayfinding.Route{
		Category: wayfinding.CrossBuilding,
		Legs: []wayfinding.Leg{
			wayfinding.Indoor("https://maps.example/?floor=1"),
			wayfinding.Outdoor(),
			wayfinding.Indoor("https://maps.example/?floor=2"),
		},
	}
}

func TestSessionStore_CreateAndStep(t *testing.T) {
	s, _ := newTestStore(time.Minute, 0)

	v, err := s.Create(threeLegRoute())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, v.ID)
	assert.Equal(t, 0, v.State.Index)

	v, ok := s.Step(v.ID, DirNext)
	require.True(t, ok)
	assert.Equal(t, 1, v.State.Index)

	v, _ = s.Step(v.ID, DirNext)
	assert.Equal(t, 2, v.State.Index)
	assert.False(t, v.State.ShowNext)

	v, _ = s.Step(v.ID, DirNext)
	assert.Equal(t, 1, v.State.Index)

	v, _ = s.Step(v.ID, DirPrevious)
	assert.Equal(t, 0, v.State.Index)

	got, ok := s.Get(v.ID)
	require.True(t, ok)
	assert.Equal(t, 0, got.State.Index)
}

func TestSessionStore_EmptyRouteIsIdle(t *testing.T) {
	s, _ := newTestStore(time.Minute, 0)
	v, err := s.Create(wayfinding.Route{Legs: []wayfinding.Leg{}})
	require.NoError(t, err)
	assert.True(t, v.State.Idle)
	assert.Equal(t, stepper.Idle, v.State.Index)
}

func TestSessionStore_Expiry(t *testing.T) {
	s, clock := newTestStore(time.Minute, 0)
	v, err := s.Create(threeLegRoute())
	require.NoError(t, err)

	clock.advance(50 * time.Second)
	_, ok := s.Get(v.ID)
	require.True(t, ok, "get refreshes the session")

	clock.advance(50 * time.Second)
	_, ok = s.Step(v.ID, DirNext)
	require.True(t, ok)

	clock.advance(61 * time.Second)
	_, ok = s.Get(v.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestSessionStore_Sweep(t *testing.T) {
	s, clock := newTestStore(time.Minute, 0)
	for i := 0; i < 3; i++ {
		_, err := s.Create(threeLegRoute())
		require.NoError(t, err)
	}
	clock.advance(30 * time.Second)
	_, err := s.Create(threeLegRoute())
	require.NoError(t, err)

	clock.advance(45 * time.Second)
	assert.Equal(t, 3, s.Sweep())
	assert.Equal(t, 1, s.Len())
}

func TestSessionStore_MaxSessions(t *testing.T) {
	s, clock := newTestStore(time.Minute, 2)
	_, err := s.Create(threeLegRoute())
	require.NoError(t, err)
	_, err = s.Create(threeLegRoute())
	require.NoError(t, err)

	_, err = s.Create(threeLegRoute())
	assert.ErrorIs(t, err, ErrTooManySessions)

	clock.advance(2 * time.Minute)
	_, err = s.Create(threeLegRoute())
	assert.NoError(t, err, "expired sessions free capacity")
}

func TestSessionStore_Delete(t *testing.T) {
	s, _ := newTestStore(0, 0)
	v, err := s.Create(threeLegRoute())
	require.NoError(t, err)

	assert.True(t, s.Delete(v.ID))
	assert.False(t, s.Delete(v.ID))
	_, ok := s.Step(v.ID, DirNext)
	assert.False(t, ok)
}

func TestSessionStore_RunSweeperStops(t *testing.T) {
	s, _ := newTestStore(time.Minute, 0)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunSweeper(ctx, time.Millisecond) }()

	time.Sleep(5 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
