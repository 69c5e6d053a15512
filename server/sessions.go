package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/campus-wayfinder/stepper"
	"github.com/theoremus-urban-solutions/campus-wayfinder/wayfinding"
)

// ErrTooManySessions is returned by Create when the store is full.
var ErrTooManySessions = errors.New("too many active trips")

// Direction is a stepper intent.
type Direction string

const (
	DirNext     Direction = "next"
	DirPrevious Direction = "previous"
)

type session struct {
	route   wayfinding.Route
	stepper *stepper.Stepper
	touched time.Time
}

// SessionView is a copy of a session safe to hand to a formatter.
type SessionView struct {
	ID      uuid.UUID
	Route   wayfinding.Route
	State   stepper.State
	Touched time.Time
}

// SessionStore keeps one stepper per trip. Sessions expire after ttl without use.
type SessionStore struct {
	ttl time.Duration
	max int
	now func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

func NewSessionStore(ttl time.Duration, max int) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		max:      max,
		now:      time.Now,
		sessions: map[uuid.UUID]*session{},
	}
}

// Create starts a trip at leg 0, or idle when the route has no legs.
func (s *SessionStore) Create(route wayfinding.Route) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if s.max > 0 && len(s.sessions) >= s.max {
		s.sweepLocked(now)
		if len(s.sessions) >= s.max {
			return SessionView{}, ErrTooManySessions
		}
	}
	id := uuid.New()
	sess := &session{route: route, stepper: stepper.New(route.Legs), touched: now}
	s.sessions[id] = sess
	return view(id, sess), nil
}

func (s *SessionStore) Get(id uuid.UUID) (SessionView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.liveLocked(id)
	if !ok {
		return SessionView{}, false
	}
	sess.touched = s.now()
	return view(id, sess), true
}

// Step applies a next/previous intent.
func (s *SessionStore) Step(id uuid.UUID, dir Direction) (SessionView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.liveLocked(id)
	if !ok {
		return SessionView{}, false
	}
	switch dir {
	case DirNext:
		sess.stepper.Next()
	case DirPrevious:
		sess.stepper.Previous()
	}
	sess.touched = s.now()
	return view(id, sess), true
}

func (s *SessionStore) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops expired sessions and reports how many were removed.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

// RunSweeper sweeps every interval until ctx is done.
func (s *SessionStore) RunSweeper(ctx context.Context, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			s.Sweep()
		}
	}
}

func (s *SessionStore) liveLocked(id uuid.UUID) (*session, bool) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.expired(sess, s.now()) {
		delete(s.sessions, id)
		return nil, false
	}
	return sess, true
}

func (s *SessionStore) sweepLocked(now time.Time) int {
	n := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func (s *SessionStore) expired(sess *session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.touched) > s.ttl
}

func view(id uuid.UUID, sess *session) SessionView {
	return SessionView{ID: id, Route: sess.route, State: sess.stepper.State(), Touched: sess.touched}
}
