package domain

import "fmt"

// Role is the closed set of role identifiers this service gates on. Keeping
// it a distinct type forces callers through ParseRole, so a typo cannot
// silently degrade into a "role not found" negative.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
)

// ManagementRoles is the role set required by privileged endpoints.
var ManagementRoles = []Role{RoleAdmin, RoleManager}

// ParseRole validates a raw role identifier against the closed enumeration.
// Role names are case-sensitive within a realm.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string {
	return string(r)
}
