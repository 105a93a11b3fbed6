package domain

import "time"

// Role is the closed set of access classes. Every role-dependent decision
// (dashboard routing, profile resolution) switches exhaustively over it.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	RoleSupplier Role = "supplier"
)

// LoginPath is where unauthenticated or unauthorized requests are sent.
const LoginPath = "/login"

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCustomer, RoleSupplier:
		return true
	}
	return false
}

// DashboardPath maps a role to its dashboard route. Unknown roles fall
// back to the login page rather than any privileged view.
func (r Role) DashboardPath() string {
	switch r {
	case RoleAdmin:
		return "/dashboards/admin_dashboard"
	case RoleCustomer:
		return "/dashboards/customer_dashboard"
	case RoleSupplier:
		return "/dashboards/supplier_dashboard"
	}
	return LoginPath
}

// User is a credential record. ReferenceID points at the role-specific
// profile (Customer or Supplier); it carries no meaning for admins.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	ReferenceID  string     `json:"reference_id,omitempty"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// UserSummary is the admin-dashboard view of a user: the credential row
// plus the display name resolved from its profile.
type UserSummary struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	Name      string     `json:"name"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
