package models

import (
	"context"
)

const addProjectMember = `
INSERT INTO project_members (project_id, user_id, role, created_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (project_id, user_id) DO UPDATE SET role = excluded.role
`

type AddProjectMemberParams struct {
	ProjectID string
	UserID    string
	Role      string
}

func (q *Queries) AddProjectMember(ctx context.Context, arg AddProjectMemberParams) error {
	_, err := q.db.ExecContext(ctx, addProjectMember, arg.ProjectID, arg.UserID, arg.Role)
	return err
}

const getProjectMember = `
SELECT project_id, user_id, role, created_at
FROM project_members WHERE project_id = ? AND user_id = ?
`

type GetProjectMemberParams struct {
	ProjectID string
	UserID    string
}

func (q *Queries) GetProjectMember(ctx context.Context, arg GetProjectMemberParams) (ProjectMember, error) {
	row := q.db.QueryRowContext(ctx, getProjectMember, arg.ProjectID, arg.UserID)
	var m ProjectMember
	err := row.Scan(&m.ProjectID, &m.UserID, &m.Role, &m.CreatedAt)
	return m, err
}

const listProjectMembers = `
SELECT project_id, user_id, role, created_at
FROM project_members WHERE project_id = ?
ORDER BY created_at ASC
`

func (q *Queries) ListProjectMembers(ctx context.Context, projectID string) ([]ProjectMember, error) {
	rows, err := q.db.QueryContext(ctx, listProjectMembers, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []ProjectMember
	for rows.Next() {
		var m ProjectMember
		if err := rows.Scan(&m.ProjectID, &m.UserID, &m.Role, &m.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

const removeProjectMember = `
DELETE FROM project_members WHERE project_id = ? AND user_id = ?
`

type RemoveProjectMemberParams struct {
	ProjectID string
	UserID    string
}

func (q *Queries) RemoveProjectMember(ctx context.Context, arg RemoveProjectMemberParams) error {
	_, err := q.db.ExecContext(ctx, removeProjectMember, arg.ProjectID, arg.UserID)
	return err
}
