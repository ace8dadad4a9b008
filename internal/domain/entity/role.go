package entity

import (
	"slices"
	"strings"
)

// Role names a permission set. The set is open: any non-empty name is accepted.
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

func (r Role) String() string {
	return string(r)
}

// ParseRole maps an inbound role name to a Role, defaulting to RoleUser.
// The two built-in roles are matched case-insensitively.
func ParseRole(s string) Role {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return RoleUser
	case strings.EqualFold(s, string(RoleUser)):
		return RoleUser
	case strings.EqualFold(s, string(RoleAdmin)):
		return RoleAdmin
	default:
		return Role(s)
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromStrings converts claim values to Roles, dropping blanks.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if strings.TrimSpace(s) == "" {
			continue
		}
		result = append(result, ParseRole(s))
	}

	return result
}
