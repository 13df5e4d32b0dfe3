// Package entity contains the core business objects of the marketplace.
package entity

import "slices"

// Role is an authorization role carried in access tokens.
type Role string

const (
	// RoleUser is granted to every signed-in profile.
	RoleUser Role = "user"
	// RoleAdmin is granted to profiles with the admin flag.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT claims.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, dropping unknown values.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// RolesFor derives the token roles of a profile. The admin flag is the only
// source of the admin role.
func RolesFor(profile *Profile) Roles {
	roles := Roles{RoleUser}
	if profile != nil && profile.IsAdmin {
		roles = append(roles, RoleAdmin)
	}

	return roles
}
