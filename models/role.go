package models

// Role defines the access level of an operator account.
// The value is stored as-is in the remote profiles table and in the
// metadata attached to the auth account at sign-up.
type Role string

const (
	// RoleSuperAdmin has full access including destructive operations
	// on verified reservoir entries.
	RoleSuperAdmin Role = "SUPER_ADMIN"

	// RoleAdmin may review, verify, and delete reservoir entries.
	RoleAdmin Role = "ADMIN"

	// RoleDataEntryWorker may submit new reservoir entries from the field.
	// This is the default role when none is recorded for an account.
	RoleDataEntryWorker Role = "DATA_ENTRY_WORKER"
)

// ParseRole maps a raw role string to a known Role.
// Unknown or empty values fall back to RoleDataEntryWorker, matching the
// profile resolver's degraded path where the remote row carries no role.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleSuperAdmin, RoleAdmin, RoleDataEntryWorker:
		return Role(raw)
	default:
		return RoleDataEntryWorker
	}
}

// CanDelete reports whether the role is allowed to delete reservoir entries.
func (r Role) CanDelete() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}
