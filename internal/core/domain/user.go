package domain

import "time"

const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// ValidRole reports whether role is one of the recognised account roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin || role == RoleSeller
}

// User models a registered account. The password hash never leaves the
// process boundary.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TokenClaims is the verified identity derived from a session token. It is
// built per request and never shared across requests.
type TokenClaims struct {
	UserID    string
	Username  string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}
