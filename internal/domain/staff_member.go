package domain

import "time"

// StaffRole enumerates account roles.
type StaffRole string

const (
	StaffRoleStaff StaffRole = "STAFF"
	StaffRoleAdmin StaffRole = "ADMIN"
)

// Valid reports whether the role is one of the known roles.
func (r StaffRole) Valid() bool {
	return r == StaffRoleStaff || r == StaffRoleAdmin
}

// StaffMember is a user account of the tool.
type StaffMember struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         StaffRole
	CreatedAt    time.Time
}

// SafeStaff is a staff member without credentials; it is the only shape that
// leaves the service layer.
type SafeStaff struct {
	ID        string
	Name      string
	Email     string
	Role      StaffRole
	CreatedAt time.Time
}

// Safe strips the password hash.
func (s *StaffMember) Safe() SafeStaff {
	return SafeStaff{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Role:      s.Role,
		CreatedAt: s.CreatedAt,
	}
}

// IsAdmin reports whether the user may create records.
func IsAdmin(user *SafeStaff) bool {
	return user != nil && user.Role == StaffRoleAdmin
}
