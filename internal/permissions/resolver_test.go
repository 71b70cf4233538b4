package permissions

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveEditPermission_OwnerAlwaysAllowed(t *testing.T) {
	d := ResolveEditPermission(Context{IsOwner: true})
	require.True(t, d.CanEdit)
	require.True(t, d.CanView)
	require.Empty(t, d.Reason)
}

func TestResolveEditPermission_AdminRootDocument(t *testing.T) {
	// Project ADMIN, root document, no grants.
	d := ResolveEditPermission(Context{MemberRole: RoleAdmin})
	require.True(t, d.CanEdit)
}

func TestResolveEditPermission_EditorRootDocumentDenied(t *testing.T) {
	// EDITOR role alone never grants root-document edit access.
	d := ResolveEditPermission(Context{MemberRole: RoleEditor})
	require.False(t, d.CanEdit)
	require.True(t, d.CanView)
	require.Equal(t, ReasonRootRequiresExplicit, d.Reason)
}

func TestResolveEditPermission_DocumentGrantBeatsRootPolicy(t *testing.T) {
	d := ResolveEditPermission(Context{
		MemberRole:    RoleEditor,
		DocumentGrant: &Grant{CanEdit: true},
	})
	require.True(t, d.CanEdit)
}

func TestResolveEditPermission_DocumentGrantWithoutEditDenied(t *testing.T) {
	d := ResolveEditPermission(Context{
		MemberRole:    RoleEditor,
		DocumentGrant: &Grant{CanEdit: false},
	})
	require.False(t, d.CanEdit)
	require.Equal(t, ReasonRootRequiresExplicit, d.Reason)
}

func TestResolveEditPermission_FolderGrant(t *testing.T) {
	d := ResolveEditPermission(Context{
		MemberRole:  RoleEditor,
		FolderID:    "f1",
		FolderGrant: &Grant{CanEdit: true},
	})
	require.True(t, d.CanEdit)
}

func TestResolveEditPermission_FolderWithoutGrantDenied(t *testing.T) {
	d := ResolveEditPermission(Context{
		MemberRole: RoleEditor,
		FolderID:   "f1",
	})
	require.False(t, d.CanEdit)
	require.Equal(t, ReasonNoFolderAccess, d.Reason)
}

func TestResolveEditPermission_FolderGrantReadOnlyDenied(t *testing.T) {
	d := ResolveEditPermission(Context{
		MemberRole:  RoleEditor,
		FolderID:    "f1",
		FolderGrant: &Grant{CanEdit: false},
	})
	require.False(t, d.CanEdit)
	require.Equal(t, ReasonNoFolderAccess, d.Reason)
}

func TestResolveEditPermission_NonMemberDeniedAndInvisible(t *testing.T) {
	d := ResolveEditPermission(Context{FolderID: "f1"})
	require.False(t, d.CanEdit)
	require.False(t, d.CanView)
}

func TestResolveViewPermission(t *testing.T) {
	require.True(t, ResolveViewPermission(Context{IsOwner: true}))
	require.True(t, ResolveViewPermission(Context{MemberRole: RoleViewer}))
	require.True(t, ResolveViewPermission(Context{ProjectPublic: true}))
	require.False(t, ResolveViewPermission(Context{}))
}

func TestNormalizeRole(t *testing.T) {
	require.Equal(t, RoleAdmin, NormalizeRole("ADMIN"))
	require.Equal(t, RoleEditor, NormalizeRole("EDITOR"))
	require.Equal(t, RoleViewer, NormalizeRole("VIEWER"))
	require.Equal(t, RoleNone, NormalizeRole("superuser"))
	require.Equal(t, RoleNone, NormalizeRole(""))
}
