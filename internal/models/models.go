package models

import (
	"database/sql"
	"time"
)

// User is a registered account, keyed by Google identity.
type User struct {
	ID        string
	GoogleID  string
	Email     string
	Name      string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RefreshSession is a long-lived login session. Only the SHA-256 hash of the
// refresh token is stored.
type RefreshSession struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt sql.NullTime
}

// Project is a top-level collaboration space.
type Project struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectMember links a user to a project with a role.
type ProjectMember struct {
	ProjectID string
	UserID    string
	Role      string
	CreatedAt time.Time
}

// Folder groups documents inside a project.
type Folder struct {
	ID        string
	ProjectID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Document is an editable file. FolderID is null for root documents.
type Document struct {
	ID        string
	ProjectID string
	FolderID  sql.NullString
	Name      string
	Content   string
	Language  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DocumentGrant is an explicit per-user permission on a single document.
type DocumentGrant struct {
	DocumentID string
	UserID     string
	CanEdit    bool
	CreatedAt  time.Time
}

// FolderGrant is an explicit per-user permission on a folder and the
// documents inside it.
type FolderGrant struct {
	FolderID  string
	UserID    string
	CanEdit   bool
	CreatedAt time.Time
}

// Invitation is a pending offer to join a project.
type Invitation struct {
	ID        string
	ProjectID string
	Email     string
	Role      string
	Token     string
	Status    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Invitation statuses.
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationDeclined = "declined"
)

// ChatMessage is a persisted project chat message.
type ChatMessage struct {
	ID        string
	ProjectID string
	UserID    string
	Body      string
	CreatedAt time.Time
}
