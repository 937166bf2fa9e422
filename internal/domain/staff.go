package domain

import "time"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// Staff is a front-desk or management account. Guests never log in; the
// customer-facing booking path is created on their behalf.
type Staff struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// CanManage reports whether the role may run management-only operations
// (no-show marking, maintenance toggles, catalog and report access).
func (r Role) CanManage() bool {
	return r == RoleManager
}
