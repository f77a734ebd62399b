package domain

import "time"

// Role is the server-assigned role of a user account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// UserProfile is the denormalized copy of the authenticated user as the
// backend returns it. Immutable from the client's perspective except via an
// explicit profile update or re-login. The same shape is cached JSON-encoded
// in the credential store.
type UserProfile struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Role        Role       `json:"role,omitempty"`
	IsActive    bool       `json:"is_active"`
	IsStaff     bool       `json:"is_staff,omitempty"`
	IsVerified  bool       `json:"is_verified,omitempty"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// FullName joins first and last name for display.
func (u UserProfile) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// UserStats summarises the user base; admin only.
type UserStats struct {
	TotalUsers    int `json:"total_users"`
	ActiveUsers   int `json:"active_users"`
	VerifiedUsers int `json:"verified_users"`
	AdminUsers    int `json:"admin_users"`
	StaffUsers    int `json:"staff_users"`
}
