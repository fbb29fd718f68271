package session

import (
	"sync"
	"time"

	"github.com/ridloal/agri-storefront/internal/cart/domain"
	"github.com/ridloal/agri-storefront/internal/cart/store"
	"github.com/ridloal/agri-storefront/internal/platform/logger"
)

type entry struct {
	store    *store.Store
	lastSeen time.Time
}

// Registry owns one cart store per session id. Stores are created on first
// use and dropped by Sweep once idle for longer than the idle timeout.
type Registry struct {
	mu          sync.Mutex
	sessions    map[string]*entry
	currency    string
	idleTimeout time.Duration
	now         func() time.Time
}

type Option func(*Registry)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

func NewRegistry(currency string, idleTimeout time.Duration, opts ...Option) *Registry {
	r := &Registry{
		sessions:    make(map[string]*entry),
		currency:    currency,
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Store returns the cart for sessionID, creating an empty one if needed, and
// marks the session as active.
func (r *Registry) Store(sessionID string) *store.Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[sessionID]
	if !ok {
		s := store.New(r.currency)
		s.Subscribe(logChanges(sessionID))
		e = &entry{store: s}
		r.sessions[sessionID] = e
		logger.Info("Session %s: cart created", shortID(sessionID))
	}
	e.lastSeen = r.now()
	return e.store
}

// Sweep discards sessions idle longer than the idle timeout and reports how many went.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.idleTimeout)
	removed := 0
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func logChanges(sessionID string) store.Listener {
	id := shortID(sessionID)
	return func(snap domain.Snapshot) {
		logger.Info("Session %s: cart v%d has %d lines (%d units), total %s", id, snap.Version, snap.Count, snap.Units, snap.Total)
	}
}

func shortID(sessionID string) string {
	if len(sessionID) > 8 {
		return sessionID[:8]
	}
	return sessionID
}
