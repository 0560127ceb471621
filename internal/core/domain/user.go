package domain

import "time"

// Role is the closed set of roles known to the authorization layer.
// Extending it requires touching both the route declarations and the
// guard's comparison logic, so new values are deliberate.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Identity is the authenticated view of a user: everything a request
// pipeline or response body is allowed to see. It never carries the
// password hash.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  Role   `json:"role"`
}

// User is the credential record held by the store: an Identity plus the
// stored password hash. The hash stays inside the service boundary; it is
// excluded from JSON and stripped before an Identity is returned.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity returns the hash-free view of the user.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
