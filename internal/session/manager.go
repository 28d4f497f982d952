package session

import (
	"context"
	"sync"
	"time"

	"github.com/bostany/storefront/internal/cart"
	"github.com/bostany/storefront/internal/checkout"
	"github.com/bostany/storefront/internal/query"
	"github.com/bostany/storefront/internal/wishlist"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Options struct {
	// IdleTTL is how long an untouched session stays in memory. Zero keeps
	// sessions forever.
	IdleTTL        time.Duration
	SearchDebounce time.Duration
	Checkout       checkout.Options
}

// Manager owns the live sessions. Evicting a session drops its cart and
// checkout; the wishlist is reloaded from storage next time.
type Manager struct {
	storage wishlist.Storage
	opts    Options
	log     *zap.Logger
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(storage wishlist.Storage, opts Options, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		storage:  storage,
		opts:     opts,
		log:      log,
		now:      time.Now,
		sessions: map[string]*Session{},
	}
}

// Get returns a live session and marks it as seen.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if ok {
		s.lastSeen = m.now()
	}
	return s, ok
}

// GetOrCreate returns the session for id, restoring it if it was evicted.
// An empty id starts a new session. created reports whether the session is new
// to memory.
func (m *Manager) GetOrCreate(ctx context.Context, id string) (s *Session, created bool) {
	if id != "" {
		if s, ok := m.Get(id); ok {
			return s, false
		}
	} else {
		id = uuid.NewString()
	}

	// Load the wishlist outside the manager lock.
	fresh := m.newSession(ctx, id)

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[id]; ok {
		existing.lastSeen = m.now()
		return existing, false
	}
	m.sessions[id] = fresh
	m.log.Debug("session started", zap.String("session_id", id))
	return fresh, true
}

func (m *Manager) newSession(ctx context.Context, id string) *Session {
	return &Session{
		ID:       id,
		Cart:     cart.New(),
		Wishlist: wishlist.New(ctx, m.storage, wishlist.Key(id), m.log),
		Search:   query.NewDebouncer(m.opts.SearchDebounce),
		opts:     m.opts,
		lastSeen: m.now(),
	}
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep evicts sessions idle for longer than IdleTTL and returns how many.
func (m *Manager) Sweep() int {
	if m.opts.IdleTTL <= 0 {
		return 0
	}
	cutoff := m.now().Add(-m.opts.IdleTTL)

	m.mu.Lock()
	defer m.mu.Unlock()
	evicted := 0
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			s.Search.Cancel()
			delete(m.sessions, id)
			evicted++
		}
	}
	return evicted
}

// RunSweeper sweeps every interval until ctx is done.
func (m *Manager) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.log.Info("session sweeper started", zap.Duration("interval", interval), zap.Duration("idle_ttl", m.opts.IdleTTL))
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.log.Info("evicted idle sessions", zap.Int("count", n))
			}
		}
	}
}
