// Package session replaces the process-wide "current user" context with an
// explicit Session value that is threaded through every store call.
package session

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/heartmarshall/growthbox-backend/internal/domain"
)

// Session carries the caller identity and the cached baby profile.
// A Session is safe for concurrent use.
type Session struct {
	identity  string
	startedAt time.Time
	lastSeen  atomic.Int64 // unix nanos

	mu      sync.RWMutex
	profile *domain.BabyProfile
	ended   bool
}

func newSession(identity string, startedAt time.Time) *Session {
	s := &Session{identity: identity, startedAt: startedAt}
	s.touch(startedAt)
	return s
}

// New returns a session that is not tracked by any Manager. Used by
// command-line tools and tests.
func New(identity string, profile *domain.BabyProfile) *Session {
	s := newSession(identity, time.Now())
	s.setProfile(profile)
	return s
}

// Anonymous returns a session with no identity. Store operations treat it
// as unauthenticated.
func Anonymous() *Session {
	return &Session{}
}

// Identity returns the caller's owner reference, "" for anonymous sessions.
func (s *Session) Identity() string {
	if s == nil {
		return ""
	}
	return s.identity
}

// Authenticated reports whether the session has an identity and has not ended.
func (s *Session) Authenticated() bool {
	if s == nil || s.identity == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.ended
}

// StartedAt returns when the session was started.
func (s *Session) StartedAt() time.Time {
	if s == nil {
		return time.Time{}
	}
	return s.startedAt
}

// LastSeen returns when the session was last started or resolved.
func (s *Session) LastSeen() time.Time {
	if s == nil {
		return time.Time{}
	}
	return time.Unix(0, s.lastSeen.Load())
}

func (s *Session) touch(t time.Time) { s.lastSeen.Store(t.UnixNano()) }

// Profile returns a copy of the cached baby profile.
func (s *Session) Profile() (domain.BabyProfile, bool) {
	if s == nil {
		return domain.BabyProfile{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return domain.BabyProfile{}, false
	}
	return *s.profile, true
}

// BabyID returns the cached profile's baby id, "" when none.
func (s *Session) BabyID() string {
	p, ok := s.Profile()
	if !ok {
		return ""
	}
	return p.BabyID
}

func (s *Session) setProfile(p *domain.BabyProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == nil {
		s.profile = nil
		return
	}
	cp := *p
	s.profile = &cp
}

func (s *Session) end() {
	s.mu.Lock()
	s.ended = true
	s.mu.Unlock()
}
