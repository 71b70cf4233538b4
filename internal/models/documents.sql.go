package models

import (
	"context"
	"database/sql"
)

const createDocument = `
INSERT INTO documents (id, project_id, folder_id, name, content, language, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
RETURNING id, project_id, folder_id, name, content, language, created_at, updated_at
`

type CreateDocumentParams struct {
	ID        string
	ProjectID string
	FolderID  sql.NullString
	Name      string
	Content   string
	Language  string
}

func (q *Queries) CreateDocument(ctx context.Context, arg CreateDocumentParams) (Document, error) {
	row := q.db.QueryRowContext(ctx, createDocument,
		arg.ID,
		arg.ProjectID,
		arg.FolderID,
		arg.Name,
		arg.Content,
		arg.Language,
	)
	var d Document
	err := row.Scan(&d.ID, &d.ProjectID, &d.FolderID, &d.Name, &d.Content, &d.Language, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

const getDocumentByID = `
SELECT id, project_id, folder_id, name, content, language, created_at, updated_at
FROM documents WHERE id = ?
`

func (q *Queries) GetDocumentByID(ctx context.Context, id string) (Document, error) {
	row := q.db.QueryRowContext(ctx, getDocumentByID, id)
	var d Document
	err := row.Scan(&d.ID, &d.ProjectID, &d.FolderID, &d.Name, &d.Content, &d.Language, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

const listDocumentsByProject = `
SELECT id, project_id, folder_id, name, content, language, created_at, updated_at
FROM documents WHERE project_id = ?
ORDER BY name ASC
`

func (q *Queries) ListDocumentsByProject(ctx context.Context, projectID string) ([]Document, error) {
	rows, err := q.db.QueryContext(ctx, listDocumentsByProject, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.ProjectID, &d.FolderID, &d.Name, &d.Content, &d.Language, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

const updateDocumentContent = `
UPDATE documents SET content = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
`

type UpdateDocumentContentParams struct {
	Content string
	ID      string
}

func (q *Queries) UpdateDocumentContent(ctx context.Context, arg UpdateDocumentContentParams) error {
	_, err := q.db.ExecContext(ctx, updateDocumentContent, arg.Content, arg.ID)
	return err
}

const updateDocumentMeta = `
UPDATE documents SET name = ?, language = ?, folder_id = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

type UpdateDocumentMetaParams struct {
	Name     string
	Language string
	FolderID sql.NullString
	ID       string
}

func (q *Queries) UpdateDocumentMeta(ctx context.Context, arg UpdateDocumentMetaParams) error {
	_, err := q.db.ExecContext(ctx, updateDocumentMeta, arg.Name, arg.Language, arg.FolderID, arg.ID)
	return err
}

const deleteDocument = `
DELETE FROM documents WHERE id = ?
`

func (q *Queries) DeleteDocument(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteDocument, id)
	return err
}
