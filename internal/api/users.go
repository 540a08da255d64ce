package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/staffihq/staffi-go/internal/domain"
)

// User is a backend account, as distinct from an employee record.
type User struct {
	ID        int64       `json:"id"`
	Email     string      `json:"email"`
	FirstName string      `json:"firstName,omitempty"`
	LastName  string      `json:"lastName,omitempty"`
	Role      domain.Role `json:"role"`
	IsActive  bool        `json:"isActive"`
}

// UserFilter narrows a user listing. Zero values mean "no filter".
type UserFilter struct {
	Role     domain.Role
	IsActive *bool
	Search   string
}

// UserService is the admin-only account management surface.
type UserService struct {
	c *Client
}

// List returns accounts matching the filter.
func (s *UserService) List(ctx context.Context, filter UserFilter) ([]User, error) {
	q := url.Values{}
	if filter.Role != "" {
		q.Set("role", string(filter.Role))
	}
	if filter.IsActive != nil {
		q.Set("isActive", strconv.FormatBool(*filter.IsActive))
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}

	var out []User
	if err := s.c.do(ctx, http.MethodGet, "/users", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one account.
func (s *UserService) Get(ctx context.Context, id int64) (*User, error) {
	var u User
	if err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ToggleActive flips an account between active and inactive. The backend
// refuses to deactivate the caller's own account.
func (s *UserService) ToggleActive(ctx context.Context, id int64) (*User, error) {
	var u User
	path := fmt.Sprintf("/users/%d/toggle-active", id)
	if err := s.c.do(ctx, http.MethodPut, path, nil, struct{}{}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// AdminAndHRUsers fetches ADMIN and HR accounts concurrently and returns the
// combined list, ADMIN accounts first.
func (s *UserService) AdminAndHRUsers(ctx context.Context) ([]User, error) {
	var admins, hr []User

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		admins, err = s.List(ctx, UserFilter{Role: domain.RoleAdmin})
		return err
	})
	g.Go(func() error {
		var err error
		hr, err = s.List(ctx, UserFilter{Role: domain.RoleHR})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return append(admins, hr...), nil
}
