package models

import (
	"context"
	"time"
)

const createRefreshSession = `
INSERT INTO refresh_sessions (id, user_id, token_hash, expires_at, created_at)
VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
`

type CreateRefreshSessionParams struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
}

func (q *Queries) CreateRefreshSession(ctx context.Context, arg CreateRefreshSessionParams) error {
	_, err := q.db.ExecContext(ctx, createRefreshSession, arg.ID, arg.UserID, arg.TokenHash, arg.ExpiresAt)
	return err
}

const getRefreshSessionByTokenHash = `
SELECT id, user_id, token_hash, expires_at, created_at, revoked_at
FROM refresh_sessions
WHERE token_hash = ?
`

func (q *Queries) GetRefreshSessionByTokenHash(ctx context.Context, tokenHash string) (RefreshSession, error) {
	row := q.db.QueryRowContext(ctx, getRefreshSessionByTokenHash, tokenHash)
	var s RefreshSession
	err := row.Scan(&s.ID, &s.UserID, &s.TokenHash, &s.ExpiresAt, &s.CreatedAt, &s.RevokedAt)
	return s, err
}

const revokeRefreshSession = `
UPDATE refresh_sessions SET revoked_at = CURRENT_TIMESTAMP
WHERE id = ? AND revoked_at IS NULL
`

func (q *Queries) RevokeRefreshSession(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, revokeRefreshSession, id)
	return err
}

const revokeUserRefreshSessions = `
UPDATE refresh_sessions SET revoked_at = CURRENT_TIMESTAMP
WHERE user_id = ? AND revoked_at IS NULL
`

func (q *Queries) RevokeUserRefreshSessions(ctx context.Context, userID string) error {
	_, err := q.db.ExecContext(ctx, revokeUserRefreshSessions, userID)
	return err
}

const deleteExpiredRefreshSessions = `
DELETE FROM refresh_sessions WHERE expires_at < CURRENT_TIMESTAMP
`

func (q *Queries) DeleteExpiredRefreshSessions(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteExpiredRefreshSessions)
	return err
}
