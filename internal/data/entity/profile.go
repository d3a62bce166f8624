package entity

type UserRole string

const (
	RoleSeeker   UserRole = "seeker"
	RoleProvider UserRole = "provider"
	RoleBoth     UserRole = "both"
)

type Profile struct {
	Base
	Email                 string   `db:"email"`
	PasswordHash          string   `db:"password"`
	FullName              string   `db:"full_name"`
	AvatarURL             *string  `db:"avatar_url"`
	Bio                   *string  `db:"bio"`
	Role                  UserRole `db:"role"`
	Phone                 *string  `db:"phone"`
	City                  *string  `db:"city"`
	State                 *string  `db:"state"`
	IsVerified            bool     `db:"is_verified"`
	EmergencyContactName  *string  `db:"emergency_contact_name"`
	EmergencyContactPhone *string  `db:"emergency_contact_phone"`
	IsActive              bool     `db:"is_active"`
}

// CanSeek reports whether the profile may book experiences.
func (p *Profile) CanSeek() bool {
	return p.Role == RoleSeeker || p.Role == RoleBoth
}

// CanProvide reports whether the profile may list experiences.
func (p *Profile) CanProvide() bool {
	return p.Role == RoleProvider || p.Role == RoleBoth
}
