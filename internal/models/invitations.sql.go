package models

import (
	"context"
	"time"
)

const createInvitation = `
INSERT INTO invitations (id, project_id, email, role, token, status, created_at, expires_at)
VALUES (?, ?, ?, ?, ?, 'pending', CURRENT_TIMESTAMP, ?)
RETURNING id, project_id, email, role, token, status, created_at, expires_at
`

type CreateInvitationParams struct {
	ID        string
	ProjectID string
	Email     string
	Role      string
	Token     string
	ExpiresAt time.Time
}

func (q *Queries) CreateInvitation(ctx context.Context, arg CreateInvitationParams) (Invitation, error) {
	row := q.db.QueryRowContext(ctx, createInvitation,
		arg.ID,
		arg.ProjectID,
		arg.Email,
		arg.Role,
		arg.Token,
		arg.ExpiresAt,
	)
	var inv Invitation
	err := row.Scan(&inv.ID, &inv.ProjectID, &inv.Email, &inv.Role, &inv.Token, &inv.Status, &inv.CreatedAt, &inv.ExpiresAt)
	return inv, err
}

const getInvitationByToken = `
SELECT id, project_id, email, role, token, status, created_at, expires_at
FROM invitations WHERE token = ?
`

func (q *Queries) GetInvitationByToken(ctx context.Context, token string) (Invitation, error) {
	row := q.db.QueryRowContext(ctx, getInvitationByToken, token)
	var inv Invitation
	err := row.Scan(&inv.ID, &inv.ProjectID, &inv.Email, &inv.Role, &inv.Token, &inv.Status, &inv.CreatedAt, &inv.ExpiresAt)
	return inv, err
}

const listInvitationsByProject = `
SELECT id, project_id, email, role, token, status, created_at, expires_at
FROM invitations WHERE project_id = ?
ORDER BY created_at DESC
`

func (q *Queries) ListInvitationsByProject(ctx context.Context, projectID string) ([]Invitation, error) {
	rows, err := q.db.QueryContext(ctx, listInvitationsByProject, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invitations []Invitation
	for rows.Next() {
		var inv Invitation
		if err := rows.Scan(&inv.ID, &inv.ProjectID, &inv.Email, &inv.Role, &inv.Token, &inv.Status, &inv.CreatedAt, &inv.ExpiresAt); err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

const listInvitationsByEmail = `
SELECT id, project_id, email, role, token, status, created_at, expires_at
FROM invitations WHERE email = ? AND status = 'pending'
ORDER BY created_at DESC
`

func (q *Queries) ListInvitationsByEmail(ctx context.Context, email string) ([]Invitation, error) {
	rows, err := q.db.QueryContext(ctx, listInvitationsByEmail, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invitations []Invitation
	for rows.Next() {
		var inv Invitation
		if err := rows.Scan(&inv.ID, &inv.ProjectID, &inv.Email, &inv.Role, &inv.Token, &inv.Status, &inv.CreatedAt, &inv.ExpiresAt); err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

const updateInvitationStatus = `
UPDATE invitations SET status = ? WHERE id = ? AND status = 'pending'
`

type UpdateInvitationStatusParams struct {
	Status string
	ID     string
}

func (q *Queries) UpdateInvitationStatus(ctx context.Context, arg UpdateInvitationStatusParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateInvitationStatus, arg.Status, arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
