package domain

import "time"

// Role is fixed at registration and never changes.
type Role string

const (
	RoleCitizen     Role = "CITIZEN"
	RoleCompany     Role = "COMPANY"
	RoleInstitution Role = "INSTITUTION"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleCitizen, RoleCompany, RoleInstitution:
		return true
	}
	return false
}

// AuthContext is the verified caller of a request. A nil *AuthContext means anonymous.
type AuthContext struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}

// Identity is what a successful credential check yields.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      Identity  `json:"user"`
}
