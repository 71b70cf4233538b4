package models

import (
	"context"
)

const upsertDocumentGrant = `
INSERT INTO document_grants (document_id, user_id, can_edit, created_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (document_id, user_id) DO UPDATE SET can_edit = excluded.can_edit
`

type UpsertDocumentGrantParams struct {
	DocumentID string
	UserID     string
	CanEdit    bool
}

func (q *Queries) UpsertDocumentGrant(ctx context.Context, arg UpsertDocumentGrantParams) error {
	_, err := q.db.ExecContext(ctx, upsertDocumentGrant, arg.DocumentID, arg.UserID, arg.CanEdit)
	return err
}

const getDocumentGrant = `
SELECT document_id, user_id, can_edit, created_at
FROM document_grants WHERE document_id = ? AND user_id = ?
`

type GetDocumentGrantParams struct {
	DocumentID string
	UserID     string
}

func (q *Queries) GetDocumentGrant(ctx context.Context, arg GetDocumentGrantParams) (DocumentGrant, error) {
	row := q.db.QueryRowContext(ctx, getDocumentGrant, arg.DocumentID, arg.UserID)
	var g DocumentGrant
	err := row.Scan(&g.DocumentID, &g.UserID, &g.CanEdit, &g.CreatedAt)
	return g, err
}

const deleteDocumentGrant = `
DELETE FROM document_grants WHERE document_id = ? AND user_id = ?
`

type DeleteDocumentGrantParams struct {
	DocumentID string
	UserID     string
}

func (q *Queries) DeleteDocumentGrant(ctx context.Context, arg DeleteDocumentGrantParams) error {
	_, err := q.db.ExecContext(ctx, deleteDocumentGrant, arg.DocumentID, arg.UserID)
	return err
}

const upsertFolderGrant = `
INSERT INTO folder_grants (folder_id, user_id, can_edit, created_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (folder_id, user_id) DO UPDATE SET can_edit = excluded.can_edit
`

type UpsertFolderGrantParams struct {
	FolderID string
	UserID   string
	CanEdit  bool
}

func (q *Queries) UpsertFolderGrant(ctx context.Context, arg UpsertFolderGrantParams) error {
	_, err := q.db.ExecContext(ctx, upsertFolderGrant, arg.FolderID, arg.UserID, arg.CanEdit)
	return err
}

const getFolderGrant = `
SELECT folder_id, user_id, can_edit, created_at
FROM folder_grants WHERE folder_id = ? AND user_id = ?
`

type GetFolderGrantParams struct {
	FolderID string
	UserID   string
}

func (q *Queries) GetFolderGrant(ctx context.Context, arg GetFolderGrantParams) (FolderGrant, error) {
	row := q.db.QueryRowContext(ctx, getFolderGrant, arg.FolderID, arg.UserID)
	var g FolderGrant
	err := row.Scan(&g.FolderID, &g.UserID, &g.CanEdit, &g.CreatedAt)
	return g, err
}

const deleteFolderGrant = `
DELETE FROM folder_grants WHERE folder_id = ? AND user_id = ?
`

type DeleteFolderGrantParams struct {
	FolderID string
	UserID   string
}

func (q *Queries) DeleteFolderGrant(ctx context.Context, arg DeleteFolderGrantParams) error {
	_, err := q.db.ExecContext(ctx, deleteFolderGrant, arg.FolderID, arg.UserID)
	return err
}
