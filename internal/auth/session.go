package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"
)

// DefaultSessionTTL is the inactivity window after which a session expires.
const DefaultSessionTTL = 24 * time.Hour

// ErrNoSession is returned when a token is unknown or expired.
var ErrNoSession = errors.New("no active session")

// Session binds an opaque token to the user that owns it.
type Session struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
}

// Store persists sessions keyed by token. Implementations must be safe for
// concurrent use. A production deployment can swap in an external store;
// the in-process map is the default.
type Store interface {
	Put(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
}

// memoryStore keeps sessions in a mutex-guarded map. Expired entries are
// dropped lazily on Get and swept whenever the map is written.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
}

// NewMemoryStore returns an in-process session store.
func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string]Session)}
}

func (m *memoryStore) Put(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prune()
	m.sessions[s.Token] = s
	return nil
}

func (m *memoryStore) Get(_ context.Context, token string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return Session{}, ErrNoSession
	}
	if time.Now().After(s.ExpiresAt) {
		delete(m.sessions, token)
		return Session{}, ErrNoSession
	}
	return s, nil
}

func (m *memoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

// prune drops expired sessions. Caller holds the lock.
func (m *memoryStore) prune() {
	now := time.Now()
	for token, s := range m.sessions {
		if now.After(s.ExpiresAt) {
			delete(m.sessions, token)
		}
	}
}

// Manager issues and resolves session tokens. Multiple concurrent sessions
// per user are permitted.
type Manager struct {
	store Store
	ttl   time.Duration
}

// NewManager creates a session manager over the given store. A non-positive
// ttl falls back to DefaultSessionTTL.
func NewManager(store Store, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Manager{store: store, ttl: ttl}
}

// Issue creates a new session for the user and returns it.
func (m *Manager) Issue(ctx context.Context, userID int64) (Session, error) {
	token, err := newToken()
	if err != nil {
		return Session{}, err
	}
	s := Session{Token: token, UserID: userID, ExpiresAt: time.Now().Add(m.ttl)}
	if err := m.store.Put(ctx, s); err != nil {
		return Session{}, fmt.Errorf("store session: %w", err)
	}
	return s, nil
}

// Resolve maps a token to its owning user id and refreshes the inactivity
// window. Unknown or expired tokens yield ErrNoSession.
func (m *Manager) Resolve(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, ErrNoSession
	}
	s, err := m.store.Get(ctx, token)
	if err != nil {
		return 0, err
	}
	s.ExpiresAt = time.Now().Add(m.ttl)
	if err := m.store.Put(ctx, s); err != nil {
		return 0, fmt.Errorf("refresh session: %w", err)
	}
	return s.UserID, nil
}

// Revoke deletes the session for the token. Revoking an unknown token is
// not an error.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

// TTL reports the configured inactivity window.
func (m *Manager) TTL() time.Duration { return m.ttl }

// newToken returns 32 random bytes hex-encoded, giving an unguessable
// opaque token.
func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
