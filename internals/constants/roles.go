package constants

// Role names as embedded in JWT claims (always lowercase).
const (
	RoleSuperAdmin = "superadmin"
	RolePrincipal  = "principal"
	RoleStaff      = "staff"
	RoleTeacher    = "teacher"
	RoleStudent    = "student"
	RoleUser       = "user" // default for accounts with no school role yet
)

// ==========================
// Policy role sets
// ==========================
// Policies are attached per operation, not per entity. Staff and Principal
// are both above Teacher but neither strictly outranks the other, so the
// sets are spelled out instead of derived from a single rank number.
var (
	// StudentAndAbove: any authenticated school member.
	StudentAndAbove = []string{RoleStudent, RoleTeacher, RoleStaff, RolePrincipal, RoleSuperAdmin}

	// TeacherAndAbove: teaching staff and management.
	TeacherAndAbove = []string{RoleTeacher, RoleStaff, RolePrincipal, RoleSuperAdmin}

	// PrincipalAndAbove: school management.
	PrincipalAndAbove = []string{RoleStaff, RolePrincipal, RoleSuperAdmin}

	// StaffAndAbove: operational staff, no principal.
	StaffAndAbove = []string{RoleStaff, RoleSuperAdmin}

	// SuperAdminOnly: platform administrators.
	SuperAdminOnly = []string{RoleSuperAdmin}
)

func RoleAllowed(role string, allowed []string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
