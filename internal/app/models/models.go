package models

// RoleType defines the user role type
type RoleType string

const (
	RoleMember RoleType = "MEMBER"
	RolePastor RoleType = "PASTOR"
	RoleGuest  RoleType = "GUEST"
)

// Valid reports whether the role is one of the known roles.
func (r RoleType) Valid() bool {
	switch r {
	case RoleMember, RolePastor, RoleGuest:
		return true
	}
	return false
}
