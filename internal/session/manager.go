package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mistore/storefront/internal/cart"
	"github.com/mistore/storefront/internal/models"
	"github.com/mistore/storefront/internal/notification"
)

// Manager creates sessions on first use and serialises work on each of them.
// Sessions idle for longer than the idle TTL are dropped, and when the
// session cap is reached the least recently used one makes room for a new one.
type Manager struct {
	catalog       cart.Catalog
	notifications func() []models.Notification
	logger        *slog.Logger

	maxSessions int
	idleTTL     time.Duration
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// Option configures a Manager
type Option func(*Manager)

// WithMaxSessions caps the number of live sessions. Zero means no cap.
func WithMaxSessions(n int) Option {
	return func(m *Manager) { m.maxSessions = n }
}

// WithIdleTTL expires sessions not touched for d. Zero disables expiry.
func WithIdleTTL(d time.Duration) Option {
	return func(m *Manager) { m.idleTTL = d }
}

func withClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager creates a session manager. seed supplies the initial
// notification panel for every new session.
func NewManager(catalog cart.Catalog, seed func() []models.Notification, logger *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		catalog:       catalog,
		notifications: seed,
		logger:        logger,
		now:           time.Now,
		sessions:      make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewID mints a session identifier
func NewID() string {
	return uuid.NewString()
}

// Get returns the session for id, creating it if needed.
// An expired session is replaced by a fresh one.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if s, ok := m.sessions[id]; ok {
		if !m.expired(s, now) {
			s.lastSeen = now
			return s
		}
		delete(m.sessions, id)
		m.logger.Debug("session expired", "session_id", id)
	}

	m.sweepLocked(now)
	if m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
		m.evictOldestLocked()
	}

	rec := &cart.Recorder{}
	s := &Session{
		ID:            id,
		Tab:           TabCatalog,
		Notifications: notification.NewStore(m.notifications()),
		confirmations: rec,
		lastSeen:      now,
	}
	s.Cart = cart.New(m.catalog, cart.Tee{
		rec,
		cart.LogNotifier{Logger: m.logger, Attrs: []any{"session_id", id}},
	})
	m.sessions[id] = s

	m.logger.Debug("session created", "session_id", id)
	return s
}

// Do runs fn with exclusive access to the session
func (m *Manager) Do(id string, fn func(s *Session)) {
	s := m.Get(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s)
}

// Sweep drops every expired session and reports how many were dropped
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sweepLocked(m.now())
}

// Len reports the number of live sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return m.idleTTL > 0 && now.Sub(s.lastSeen) > m.idleTTL
}

func (m *Manager) sweepLocked(now time.Time) int {
	if m.idleTTL <= 0 {
		return 0
	}
	n := 0
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
			n++
		}
	}
	if n > 0 {
		m.logger.Debug("expired sessions dropped", "count", n)
	}
	return n
}

func (m *Manager) evictOldestLocked() {
	var oldest *Session
	for _, s := range m.sessions {
		if oldest == nil || s.lastSeen.Before(oldest.lastSeen) {
			oldest = s
		}
	}
	if oldest == nil {
		return
	}
	delete(m.sessions, oldest.ID)
	m.logger.Info("session evicted", "session_id", oldest.ID, "max_sessions", m.maxSessions)
}
