package session

import "time"

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenPair is the login response. The access token becomes the session
// token; the refresh token is returned to the caller but never persisted by
// the container.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Profile is the platform identity record, populated only after a successful
// profile fetch. Field names follow the platform's user serializer.
type Profile struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	RealName     string    `json:"real_name"`
	Phone        string    `json:"phone"`
	UserType     string    `json:"user_type"`
	Avatar       string    `json:"avatar"`
	Gender       string    `json:"gender"`
	Organization string    `json:"organization"`
	Bio          string    `json:"bio"`
	IsVerified   bool      `json:"is_verified"`
	IsActive     bool      `json:"is_active"`
	IsStaff      bool      `json:"is_staff"`
	IsSuperuser  bool      `json:"is_superuser"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the profile's role attributes indicate the
// administrator role.
func (p Profile) IsAdmin() bool {
	return p.IsSuperuser || p.UserType == "admin"
}

// HasIdentity reports whether the profile was actually resolved from the
// server. A bare token with no resolved identity is not proof of a valid
// session.
func (p Profile) HasIdentity() bool {
	return p.Username != ""
}
