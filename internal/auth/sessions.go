package auth

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/dkovacs/codeshare/internal/crypto"
	"github.com/dkovacs/codeshare/internal/models"
	"github.com/dkovacs/codeshare/pkg/types"
)

// ErrSessionInvalid is returned when a refresh token does not map to a live
// session (unknown, expired, or revoked).
var ErrSessionInvalid = errors.New("refresh session invalid")

// SessionStore is the slice of the query layer session management needs.
type SessionStore interface {
	CreateRefreshSession(ctx context.Context, arg models.CreateRefreshSessionParams) error
	GetRefreshSessionByTokenHash(ctx context.Context, tokenHash string) (models.RefreshSession, error)
	RevokeRefreshSession(ctx context.Context, id string) error
	RevokeUserRefreshSessions(ctx context.Context, userID string) error
	DeleteExpiredRefreshSessions(ctx context.Context) error
}

// SessionManager issues and rotates opaque refresh tokens. Tokens are stored
// hashed, so a database leak does not leak usable credentials.
type SessionManager struct {
	store SessionStore
	ttl   time.Duration
	now   func() time.Time
}

// NewSessionManager creates a session manager with the given refresh TTL.
func NewSessionManager(store SessionStore, ttl time.Duration) *SessionManager {
	return &SessionManager{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Issue creates a new refresh session for the user and returns the plaintext
// refresh token. The plaintext is never persisted.
func (m *SessionManager) Issue(ctx context.Context, userID string) (string, error) {
	raw, err := crypto.RandBytes(make([]byte, 32))
	if err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	err = m.store.CreateRefreshSession(ctx, models.CreateRefreshSessionParams{
		ID:        types.NewID(),
		UserID:    userID,
		TokenHash: hashToken(token),
		ExpiresAt: m.now().Add(m.ttl),
	})
	if err != nil {
		return "", fmt.Errorf("persist refresh session: %w", err)
	}

	return token, nil
}

// Rotate validates a refresh token, revokes its session, and issues a
// replacement. Returns the session owner and the new plaintext token.
func (m *SessionManager) Rotate(ctx context.Context, token string) (string, string, error) {
	session, err := m.lookup(ctx, token)
	if err != nil {
		return "", "", err
	}

	if err := m.store.RevokeRefreshSession(ctx, session.ID); err != nil {
		return "", "", fmt.Errorf("revoke refresh session: %w", err)
	}

	next, err := m.Issue(ctx, session.UserID)
	if err != nil {
		return "", "", err
	}

	return session.UserID, next, nil
}

// Revoke invalidates the session behind the given refresh token. Unknown
// tokens are not an error; logout is idempotent.
func (m *SessionManager) Revoke(ctx context.Context, token string) error {
	session, err := m.lookup(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionInvalid) {
			return nil
		}
		return err
	}
	return m.store.RevokeRefreshSession(ctx, session.ID)
}

// RevokeAll invalidates every live session of a user.
func (m *SessionManager) RevokeAll(ctx context.Context, userID string) error {
	return m.store.RevokeUserRefreshSessions(ctx, userID)
}

// Sweep deletes sessions past their expiry. Run periodically; expired
// sessions are already unusable, this just keeps the table from growing.
func (m *SessionManager) Sweep(ctx context.Context) error {
	return m.store.DeleteExpiredRefreshSessions(ctx)
}

func (m *SessionManager) lookup(ctx context.Context, token string) (models.RefreshSession, error) {
	if token == "" {
		return models.RefreshSession{}, ErrSessionInvalid
	}

	session, err := m.store.GetRefreshSessionByTokenHash(ctx, hashToken(token))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RefreshSession{}, ErrSessionInvalid
		}
		return models.RefreshSession{}, fmt.Errorf("load refresh session: %w", err)
	}

	if session.RevokedAt.Valid || !session.ExpiresAt.After(m.now()) {
		return models.RefreshSession{}, ErrSessionInvalid
	}

	return session, nil
}
