package auth

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dkovacs/codeshare/internal/models"
	"github.com/stretchr/testify/require"
)

type fakeSessionStore struct {
	sessions map[string]models.RefreshSession // keyed by token hash
	revoked  []string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]models.RefreshSession)}
}

func (f *fakeSessionStore) CreateRefreshSession(_ context.Context, arg models.CreateRefreshSessionParams) error {
	f.sessions[arg.TokenHash] = models.RefreshSession{
		ID:        arg.ID,
		UserID:    arg.UserID,
		TokenHash: arg.TokenHash,
		ExpiresAt: arg.ExpiresAt,
	}
	return nil
}

func (f *fakeSessionStore) GetRefreshSessionByTokenHash(_ context.Context, tokenHash string) (models.RefreshSession, error) {
	s, ok := f.sessions[tokenHash]
	if !ok {
		return models.RefreshSession{}, sql.ErrNoRows
	}
	return s, nil
}

func (f *fakeSessionStore) RevokeRefreshSession(_ context.Context, id string) error {
	f.revoked = append(f.revoked, id)
	for hash, s := range f.sessions {
		if s.ID == id {
			s.RevokedAt = sql.NullTime{Time: time.Now(), Valid: true}
			f.sessions[hash] = s
		}
	}
	return nil
}

func (f *fakeSessionStore) RevokeUserRefreshSessions(_ context.Context, userID string) error {
	for hash, s := range f.sessions {
		if s.UserID == userID {
			s.RevokedAt = sql.NullTime{Time: time.Now(), Valid: true}
			f.sessions[hash] = s
		}
	}
	return nil
}

func (f *fakeSessionStore) DeleteExpiredRefreshSessions(_ context.Context) error {
	for hash, s := range f.sessions {
		if s.ExpiresAt.Before(time.Now()) {
			delete(f.sessions, hash)
		}
	}
	return nil
}

func TestSessionManager_IssueAndRotate(t *testing.T) {
	store := newFakeSessionStore()
	mgr := NewSessionManager(store, time.Hour)

	token, err := mgr.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The plaintext token must not appear in the store.
	for hash := range store.sessions {
		require.NotEqual(t, token, hash)
	}

	userID, next, err := mgr.Rotate(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
	require.NotEmpty(t, next)
	require.NotEqual(t, token, next)

	// The rotated-out token is dead.
	_, _, err = mgr.Rotate(context.Background(), token)
	require.ErrorIs(t, err, ErrSessionInvalid)

	// The replacement works.
	userID, _, err = mgr.Rotate(context.Background(), next)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
}

func TestSessionManager_ExpiredSessionRejected(t *testing.T) {
	store := newFakeSessionStore()
	mgr := NewSessionManager(store, time.Hour)

	token, err := mgr.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	mgr.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, _, err = mgr.Rotate(context.Background(), token)
	require.ErrorIs(t, err, ErrSessionInvalid)
}

func TestSessionManager_RevokeAll(t *testing.T) {
	store := newFakeSessionStore()
	mgr := NewSessionManager(store, time.Hour)

	tokenA1, err := mgr.Issue(context.Background(), "user-a")
	require.NoError(t, err)
	tokenA2, err := mgr.Issue(context.Background(), "user-a")
	require.NoError(t, err)
	tokenB, err := mgr.Issue(context.Background(), "user-b")
	require.NoError(t, err)

	require.NoError(t, mgr.RevokeAll(context.Background(), "user-a"))

	_, _, err = mgr.Rotate(context.Background(), tokenA1)
	require.ErrorIs(t, err, ErrSessionInvalid)
	_, _, err = mgr.Rotate(context.Background(), tokenA2)
	require.ErrorIs(t, err, ErrSessionInvalid)

	// Other users' sessions survive.
	userID, _, err := mgr.Rotate(context.Background(), tokenB)
	require.NoError(t, err)
	require.Equal(t, "user-b", userID)
}

func TestSessionManager_SweepDropsExpiredRows(t *testing.T) {
	store := newFakeSessionStore()
	mgr := NewSessionManager(store, time.Hour)

	_, err := mgr.Issue(context.Background(), "user-a")
	require.NoError(t, err)

	expired := NewSessionManager(store, -time.Hour)
	_, err = expired.Issue(context.Background(), "user-b")
	require.NoError(t, err)

	require.Len(t, store.sessions, 2)
	require.NoError(t, mgr.Sweep(context.Background()))
	require.Len(t, store.sessions, 1)
}

func TestSessionManager_RevokeIsIdempotent(t *testing.T) {
	store := newFakeSessionStore()
	mgr := NewSessionManager(store, time.Hour)

	token, err := mgr.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	require.NoError(t, mgr.Revoke(context.Background(), token))
	require.NoError(t, mgr.Revoke(context.Background(), token))
	require.NoError(t, mgr.Revoke(context.Background(), "no-such-token"))

	_, _, err = mgr.Rotate(context.Background(), token)
	require.ErrorIs(t, err, ErrSessionInvalid)
}
