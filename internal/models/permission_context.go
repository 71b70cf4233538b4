package models

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dkovacs/codeshare/internal/permissions"
)

// GetPermissionContext loads the fact snapshot the permission resolver needs
// for one (document, user) pair: ownership, membership role, and any explicit
// document or folder grant. Missing rows are normal and map onto zero values.
func (q *Queries) GetPermissionContext(ctx context.Context, documentID, userID string) (permissions.Context, error) {
	doc, err := q.GetDocumentByID(ctx, documentID)
	if err != nil {
		return permissions.Context{}, err
	}

	project, err := q.GetProjectByID(ctx, doc.ProjectID)
	if err != nil {
		return permissions.Context{}, err
	}

	pc := permissions.Context{
		UserID:        userID,
		DocumentID:    documentID,
		IsOwner:       project.OwnerID == userID,
		ProjectPublic: project.IsPublic,
	}
	if doc.FolderID.Valid {
		pc.FolderID = doc.FolderID.String
	}

	member, err := q.GetProjectMember(ctx, GetProjectMemberParams{ProjectID: doc.ProjectID, UserID: userID})
	switch {
	case err == nil:
		pc.MemberRole = permissions.NormalizeRole(member.Role)
	case errors.Is(err, sql.ErrNoRows):
		pc.MemberRole = permissions.RoleNone
	default:
		return permissions.Context{}, err
	}

	docGrant, err := q.GetDocumentGrant(ctx, GetDocumentGrantParams{DocumentID: documentID, UserID: userID})
	switch {
	case err == nil:
		pc.DocumentGrant = &permissions.Grant{CanEdit: docGrant.CanEdit}
	case errors.Is(err, sql.ErrNoRows):
	default:
		return permissions.Context{}, err
	}

	if pc.FolderID != "" {
		folderGrant, err := q.GetFolderGrant(ctx, GetFolderGrantParams{FolderID: pc.FolderID, UserID: userID})
		switch {
		case err == nil:
			pc.FolderGrant = &permissions.Grant{CanEdit: folderGrant.CanEdit}
		case errors.Is(err, sql.ErrNoRows):
		default:
			return permissions.Context{}, err
		}
	}

	return pc, nil
}
