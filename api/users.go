package api

import (
	"context"
	"fmt"
	"time"

	"github.com/arenakit/arena/core/client"
)

// User is the account record as the user serializer returns it.
type User struct {
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

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Email           string `json:"email,omitempty"`
	RealName        string `json:"real_name,omitempty"`
	Phone           string `json:"phone,omitempty"`
	UserType        string `json:"user_type,omitempty"`
}

// ProfileUpdate carries the self-service profile fields. Nil fields are
// left unchanged on the server.
type ProfileUpdate struct {
	Email        *string `json:"email,omitempty"`
	RealName     *string `json:"real_name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Avatar       *string `json:"avatar,omitempty"`
	Gender       *string `json:"gender,omitempty"`
	Organization *string `json:"organization,omitempty"`
	Bio          *string `json:"bio,omitempty"`
}

// UsersService covers account self-service and the administrator's user
// management surface.
type UsersService struct {
	client *client.Client
}

// Register creates a new account. No session is required.
func (s *UsersService) Register(ctx context.Context, req RegisterRequest) (User, error) {
	var u User
	err := s.client.Post(ctx, "users/register/", req, &u)
	return u, err
}

// Me returns the account behind the current session.
func (s *UsersService) Me(ctx context.Context) (User, error) {
	var u User
	err := s.client.Get(ctx, "users/me/", nil, &u)
	return u, err
}

// UpdateProfile applies self-service profile changes and returns the
// updated account.
func (s *UsersService) UpdateProfile(ctx context.Context, upd ProfileUpdate) (User, error) {
	var u User
	err := s.client.Put(ctx, "users/update_profile/", upd, &u)
	return u, err
}

// ChangePassword replaces the current user's password.
func (s *UsersService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return s.client.Post(ctx, "users/change_password/", map[string]string{
		"old_password":     oldPassword,
		"new_password":     newPassword,
		"confirm_password": newPassword,
	}, nil)
}

// List returns a page of accounts. Administrator only.
func (s *UsersService) List(ctx context.Context, params ListParams) (Page[User], error) {
	var page Page[User]
	err := s.client.Get(ctx, "users/", params.Values(), &page)
	return page, err
}

// Get returns a single account. Administrator only.
func (s *UsersService) Get(ctx context.Context, id int64) (User, error) {
	var u User
	err := s.client.Get(ctx, fmt.Sprintf("users/%d/", id), nil, &u)
	return u, err
}

// Update patches an account's fields. Administrator only.
func (s *UsersService) Update(ctx context.Context, id int64, fields map[string]any) (User, error) {
	var u User
	err := s.client.Patch(ctx, fmt.Sprintf("users/%d/", id), fields, &u)
	return u, err
}

// Delete removes an account. Administrator only.
func (s *UsersService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("users/%d/", id))
}

// Activate re-enables a disabled account. Administrator only.
func (s *UsersService) Activate(ctx context.Context, id int64) error {
	return s.client.Put(ctx, fmt.Sprintf("users/%d/activate/", id), nil, nil)
}

// Deactivate disables an account. Administrator only.
func (s *UsersService) Deactivate(ctx context.Context, id int64) error {
	return s.client.Put(ctx, fmt.Sprintf("users/%d/deactivate/", id), nil, nil)
}

// Registrations returns a user's sign-ups. Administrator only.
func (s *UsersService) Registrations(ctx context.Context, id int64) ([]Registration, error) {
	var out []Registration
	err := s.client.Get(ctx, fmt.Sprintf("users/%d/registrations/", id), nil, &out)
	return out, err
}

// Results returns a user's recorded results. Administrator only.
func (s *UsersService) Results(ctx context.Context, id int64) ([]Result, error) {
	var out []Result
	err := s.client.Get(ctx, fmt.Sprintf("users/%d/results/", id), nil, &out)
	return out, err
}
