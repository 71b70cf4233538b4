package models

import (
	"context"
)

const createFolder = `
INSERT INTO folders (id, project_id, name, created_at, updated_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
RETURNING id, project_id, name, created_at, updated_at
`

type CreateFolderParams struct {
	ID        string
	ProjectID string
	Name      string
}

func (q *Queries) CreateFolder(ctx context.Context, arg CreateFolderParams) (Folder, error) {
	row := q.db.QueryRowContext(ctx, createFolder, arg.ID, arg.ProjectID, arg.Name)
	var f Folder
	err := row.Scan(&f.ID, &f.ProjectID, &f.Name, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

const getFolderByID = `
SELECT id, project_id, name, created_at, updated_at
FROM folders WHERE id = ?
`

func (q *Queries) GetFolderByID(ctx context.Context, id string) (Folder, error) {
	row := q.db.QueryRowContext(ctx, getFolderByID, id)
	var f Folder
	err := row.Scan(&f.ID, &f.ProjectID, &f.Name, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

const listFoldersByProject = `
SELECT id, project_id, name, created_at, updated_at
FROM folders WHERE project_id = ?
ORDER BY name ASC
`

func (q *Queries) ListFoldersByProject(ctx context.Context, projectID string) ([]Folder, error) {
	rows, err := q.db.QueryContext(ctx, listFoldersByProject, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var folders []Folder
	for rows.Next() {
		var f Folder
		if err := rows.Scan(&f.ID, &f.ProjectID, &f.Name, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		folders = append(folders, f)
	}
	return folders, rows.Err()
}

const renameFolder = `
UPDATE folders SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
`

type RenameFolderParams struct {
	Name string
	ID   string
}

func (q *Queries) RenameFolder(ctx context.Context, arg RenameFolderParams) error {
	_, err := q.db.ExecContext(ctx, renameFolder, arg.Name, arg.ID)
	return err
}

const deleteFolder = `
DELETE FROM folders WHERE id = ?
`

func (q *Queries) DeleteFolder(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteFolder, id)
	return err
}
