package models

import (
	"context"
)

const createProject = `
INSERT INTO projects (id, owner_id, name, description, is_public, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
RETURNING id, owner_id, name, description, is_public, created_at, updated_at
`

type CreateProjectParams struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	IsPublic    bool
}

func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) (Project, error) {
	row := q.db.QueryRowContext(ctx, createProject,
		arg.ID,
		arg.OwnerID,
		arg.Name,
		arg.Description,
		arg.IsPublic,
	)
	var p Project
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.IsPublic, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const getProjectByID = `
SELECT id, owner_id, name, description, is_public, created_at, updated_at
FROM projects WHERE id = ?
`

func (q *Queries) GetProjectByID(ctx context.Context, id string) (Project, error) {
	row := q.db.QueryRowContext(ctx, getProjectByID, id)
	var p Project
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.IsPublic, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const listProjectsForUser = `
SELECT DISTINCT p.id, p.owner_id, p.name, p.description, p.is_public, p.created_at, p.updated_at
FROM projects p
LEFT JOIN project_members m ON m.project_id = p.id
WHERE p.owner_id = ? OR m.user_id = ?
ORDER BY p.updated_at DESC
`

func (q *Queries) ListProjectsForUser(ctx context.Context, userID string) ([]Project, error) {
	rows, err := q.db.QueryContext(ctx, listProjectsForUser, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.IsPublic, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

const updateProject = `
UPDATE projects SET name = ?, description = ?, is_public = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

type UpdateProjectParams struct {
	Name        string
	Description string
	IsPublic    bool
	ID          string
}

func (q *Queries) UpdateProject(ctx context.Context, arg UpdateProjectParams) error {
	_, err := q.db.ExecContext(ctx, updateProject, arg.Name, arg.Description, arg.IsPublic, arg.ID)
	return err
}

const deleteProject = `
DELETE FROM projects WHERE id = ?
`

func (q *Queries) DeleteProject(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteProject, id)
	return err
}
