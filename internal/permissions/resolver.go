// Package permissions decides what a user may do with a document.
//
// Resolution is pure: callers load the ownership, role and grant facts from
// the database and hand them in as a Context. Edit access is deliberately
// strict for root documents (documents without a folder): project EDITOR role
// alone never grants edit access there, only an explicit document grant,
// ownership or the ADMIN role.
package permissions

// Role is a project membership role.
type Role string

const (
	// RoleNone means the user is not a member of the project.
	RoleNone Role = ""
	// RoleViewer may read project content.
	RoleViewer Role = "VIEWER"
	// RoleEditor may edit documents covered by a grant.
	RoleEditor Role = "EDITOR"
	// RoleAdmin may edit everything and manage the project.
	RoleAdmin Role = "ADMIN"
)

// NormalizeRole maps a stored role string onto the closed Role set. Unknown
// values degrade to RoleNone.
func NormalizeRole(role string) Role {
	switch Role(role) {
	case RoleViewer, RoleEditor, RoleAdmin:
		return Role(role)
	default:
		return RoleNone
	}
}

// Grant is an explicit per-user permission attached to a document or folder.
type Grant struct {
	CanEdit bool
}

// Context is the fact snapshot a single permission decision is made from.
type Context struct {
	// UserID is the principal the decision is about.
	UserID string
	// DocumentID is the document the decision is about.
	DocumentID string
	// IsOwner reports whether the principal owns the project.
	IsOwner bool
	// MemberRole is the principal's project role (RoleNone if not a member).
	MemberRole Role
	// ProjectPublic reports whether the project is publicly viewable.
	ProjectPublic bool
	// FolderID is the document's parent folder; empty for root documents.
	FolderID string
	// DocumentGrant is the explicit document-level grant, if any.
	DocumentGrant *Grant
	// FolderGrant is the explicit folder-level grant, if any.
	FolderGrant *Grant
}

// Denial reasons surfaced to callers. The exact strings are part of the API
// contract with the web client.
const (
	ReasonRootRequiresExplicit = "Root file requires explicit permission"
	ReasonNoFolderAccess       = "No folder access granted"
)

// Decision is the outcome of a permission resolution.
type Decision struct {
	CanView bool   `json:"canView"`
	CanEdit bool   `json:"canEdit"`
	Reason  string `json:"reason,omitempty"`
}

// ResolveViewPermission reports whether the principal may read the document.
// Owners, any project member, and everyone on public projects may view.
func ResolveViewPermission(ctx Context) bool {
	if ctx.IsOwner {
		return true
	}
	if ctx.MemberRole != RoleNone {
		return true
	}
	return ctx.ProjectPublic
}

// ResolveEditPermission decides edit access. The branch order is business
// policy; reordering it changes outcomes for root documents.
func ResolveEditPermission(ctx Context) Decision {
	canView := ResolveViewPermission(ctx)

	// Owner and project admin can always edit.
	if ctx.IsOwner || ctx.MemberRole == RoleAdmin {
		return Decision{CanView: true, CanEdit: true}
	}

	// Explicit document grant.
	if ctx.DocumentGrant != nil && ctx.DocumentGrant.CanEdit {
		return Decision{CanView: canView, CanEdit: true}
	}

	// Folder grant covers the documents inside it.
	if ctx.FolderID != "" && ctx.FolderGrant != nil && ctx.FolderGrant.CanEdit {
		return Decision{CanView: canView, CanEdit: true}
	}

	// Root documents require an explicit grant regardless of role.
	if ctx.FolderID == "" {
		return Decision{CanView: canView, CanEdit: false, Reason: ReasonRootRequiresExplicit}
	}

	return Decision{CanView: canView, CanEdit: false, Reason: ReasonNoFolderAccess}
}
