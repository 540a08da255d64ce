package api

import (
	"context"
	"net/http"

	"github.com/staffihq/staffi-go/internal/domain"
	"github.com/staffihq/staffi-go/internal/session"
)

// LoginEndpoint is the path suffix the transport layer uses to exempt login
// errors from auto-notification.
const LoginEndpoint = "/auth/login"

// AuthService covers login, logout, and password changes. It is the only
// service that writes to the session.
type AuthService struct {
	c    *Client
	sess *session.Session
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// LoginResponse is the backend's login body: the user profile plus the token.
type LoginResponse struct {
	ID        int64       `json:"id"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	Token     string      `json:"token"`
	IsActive  bool        `json:"isActive"`
	CreatedAt string      `json:"createdAt,omitempty"`
}

// Login authenticates and, on success, persists the token and profile so the
// session survives a client restart.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := s.c.do(ctx, http.MethodPost, LoginEndpoint, nil, credentials{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Token != "" {
		if err := s.sess.Login(resp.Token, &session.UserProfile{
			ID:        resp.ID,
			FirstName: resp.FirstName,
			LastName:  resp.LastName,
			Email:     resp.Email,
			Role:      resp.Role,
			IsActive:  resp.IsActive,
			CreatedAt: resp.CreatedAt,
		}); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

// ChangePassword changes the current user's password. The backend responds
// with plain text, not JSON.
func (s *AuthService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	_, err := s.c.doRaw(ctx, http.MethodPut, "/auth/change-password",
		nil, changePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword})
	return err
}

// CurrentProfile fetches the logged-in user's employee record.
func (s *AuthService) CurrentProfile(ctx context.Context) (*Employee, error) {
	var e Employee
	if err := s.c.do(ctx, http.MethodGet, "/employees/me", nil, nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Logout clears the local session. Token issuance is stateless on the
// backend, so there is nothing to call server-side.
func (s *AuthService) Logout() error {
	return s.sess.Logout()
}
