package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndResolve(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(), time.Minute)

	s, err := m.Issue(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, s.Token, 64, "token is 32 random bytes hex-encoded")

	uid, err := m.Resolve(ctx, s.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), uid)
}

func TestManager_ConcurrentSessionsPerUser(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(), time.Minute)

	s1, err := m.Issue(ctx, 7)
	require.NoError(t, err)
	s2, err := m.Issue(ctx, 7)
	require.NoError(t, err)
	assert.NotEqual(t, s1.Token, s2.Token)

	// Revoking one session leaves the other intact.
	require.NoError(t, m.Revoke(ctx, s1.Token))
	_, err = m.Resolve(ctx, s1.Token)
	assert.ErrorIs(t, err, ErrNoSession)
	uid, err := m.Resolve(ctx, s2.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), uid)
}

func TestManager_UnknownToken(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Minute)

	_, err := m.Resolve(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = m.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManager_Expiry(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(), 10*time.Millisecond)

	s, err := m.Issue(ctx, 3)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	_, err = m.Resolve(ctx, s.Token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManager_ResolveRefreshesWindow(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store, 50*time.Millisecond)

	s, err := m.Issue(ctx, 3)
	require.NoError(t, err)

	// Keep touching the session past its original deadline.
	for i := 0; i < 4; i++ {
		time.Sleep(30 * time.Millisecond)
		_, err = m.Resolve(ctx, s.Token)
		require.NoError(t, err)
	}
}

func TestManager_RevokeUnknownToken(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Minute)
	assert.NoError(t, m.Revoke(context.Background(), "missing"))
}

func TestNewManager_DefaultTTL(t *testing.T) {
	m := NewManager(NewMemoryStore(), 0)
	assert.Equal(t, DefaultSessionTTL, m.TTL())
}
