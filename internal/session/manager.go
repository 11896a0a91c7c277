package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/heartmarshall/growthbox-backend/internal/domain"
)

// DefaultBuffer is the per-subscriber channel capacity.
const DefaultBuffer = 16

type userRegistry interface {
	Touch(ctx context.Context, ref string) (domain.User, bool, error)
}

type profileLoader interface {
	GetByOwner(ctx context.Context, ownerRef string) (*domain.BabyProfile, error)
}

type subscriber struct {
	ch chan Event
}

// Manager owns the live sessions and fans lifecycle events out to
// subscribers. Delivery never blocks: an event that does not fit into a
// subscriber's buffer is dropped and counted.
type Manager struct {
	log      *slog.Logger
	users    userRegistry
	profiles profileLoader
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
	subs     map[int]*subscriber
	nextSub  int
	closed   bool

	dropped atomic.Int64
}

// NewManager creates a session manager.
func NewManager(logger *slog.Logger, users userRegistry, profiles profileLoader) *Manager {
	return &Manager{
		log:      logger.With("component", "session"),
		users:    users,
		profiles: profiles,
		now:      time.Now,
		sessions: make(map[string]*Session),
		subs:     make(map[int]*subscriber),
	}
}

// ErrClosed is returned by Start after Close.
var ErrClosed = errors.New("session: manager closed")

// Start opens (or returns the live) session for identity. The identity is
// registered in the user registry and the baby profile is loaded into the
// session cache. A missing profile is not an error.
func (m *Manager) Start(ctx context.Context, identity string) (*Session, error) {
	if identity == "" {
		return nil, domain.ErrUnauthenticated
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrClosed
	}
	if s, ok := m.sessions[identity]; ok {
		m.mu.Unlock()
		s.touch(m.now())
		return s, nil
	}
	m.mu.Unlock()

	_, created, err := m.users.Touch(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("session.Start: register user: %w", err)
	}

	profile, err := m.profiles.GetByOwner(ctx, identity)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("session.Start: load profile: %w", err)
	}

	s := newSession(identity, m.now())
	s.setProfile(profile)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrClosed
	}
	if existing, ok := m.sessions[identity]; ok {
		// Lost a race with a concurrent Start for the same identity.
		m.mu.Unlock()
		return existing, nil
	}
	m.sessions[identity] = s
	m.mu.Unlock()

	m.log.InfoContext(ctx, "session started",
		slog.String("owner", identity),
		slog.Bool("new_user", created),
		slog.Bool("has_profile", profile != nil),
	)
	m.publish(Event{Kind: EventStarted, Identity: identity, Profile: clone(profile), At: s.startedAt, NewUser: created})

	return s, nil
}

// Resolve returns the live session for identity, starting one if needed.
// An empty identity yields the anonymous session.
func (m *Manager) Resolve(ctx context.Context, identity string) (*Session, error) {
	if identity == "" {
		return Anonymous(), nil
	}
	return m.Start(ctx, identity)
}

// Lookup returns the live session for identity without starting one.
func (m *Manager) Lookup(identity string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[identity]
	return s, ok
}

// SetProfile replaces the cached profile and notifies subscribers.
func (m *Manager) SetProfile(s *Session, p domain.BabyProfile) {
	if s == nil || s.Identity() == "" {
		return
	}
	s.setProfile(&p)
	m.publish(Event{Kind: EventProfileChanged, Identity: s.Identity(), Profile: clone(&p), At: m.now()})
}

// End closes the session for identity. Reports whether a live session existed.
func (m *Manager) End(ctx context.Context, identity string) bool {
	m.mu.Lock()
	s, ok := m.sessions[identity]
	if ok {
		delete(m.sessions, identity)
	}
	m.mu.Unlock()

	if !ok {
		return false
	}
	s.end()
	m.log.InfoContext(ctx, "session ended", slog.String("owner", identity))
	m.publish(Event{Kind: EventEnded, Identity: identity, At: m.now()})
	return true
}

// Evict ends every session not seen for longer than idle, publishing an
// expired EventEnded for each. It returns the number evicted.
func (m *Manager) Evict(ctx context.Context, idle time.Duration) int {
	now := m.now()
	cutoff := now.Add(-idle)

	m.mu.Lock()
	var stale []*Session
	for identity, s := range m.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(m.sessions, identity)
			stale = append(stale, s)
		}
	}
	m.mu.Unlock()

	for _, s := range stale {
		s.end()
		m.publish(Event{Kind: EventEnded, Identity: s.identity, At: now, Expired: true})
	}
	if len(stale) > 0 {
		m.log.DebugContext(ctx, "idle sessions evicted",
			slog.Int("count", len(stale)),
			slog.Duration("idle", idle),
		)
	}
	return len(stale)
}

// RunEviction calls Evict every interval until ctx is done.
func (m *Manager) RunEviction(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Evict(ctx, idle)
		}
	}
}

// Active returns the number of live sessions.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Subscribe registers a subscriber with the given buffer size (DefaultBuffer
// when <= 0). The returned cancel func unregisters it and closes the channel.
func (m *Manager) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	sub := &subscriber{ch: make(chan Event, buffer)}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		close(sub.ch)
		return sub.ch, func() {}
	}
	id := m.nextSub
	m.nextSub++
	m.subs[id] = sub
	m.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			m.mu.Lock()
			if _, ok := m.subs[id]; ok {
				delete(m.subs, id)
				close(sub.ch)
			}
			m.mu.Unlock()
		})
	}
	return sub.ch, cancel
}

// Dropped returns the number of events dropped because a subscriber was full.
func (m *Manager) Dropped() int64 {
	return m.dropped.Load()
}

// Close ends every live session, emits EventEnded for each, and closes all
// subscriber channels. Start fails afterwards.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	live := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for identity, s := range live {
		s.end()
		m.publish(Event{Kind: EventEnded, Identity: identity, At: m.now()})
	}

	m.mu.Lock()
	m.closed = true
	for id, sub := range m.subs {
		close(sub.ch)
		delete(m.subs, id)
	}
	m.mu.Unlock()
}

func (m *Manager) publish(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, sub := range m.subs {
		select {
		case sub.ch <- ev:
		default:
			m.dropped.Add(1)
		}
	}
}

func clone(p *domain.BabyProfile) *domain.BabyProfile {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
