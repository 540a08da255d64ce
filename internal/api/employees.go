package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/staffihq/staffi-go/internal/domain"
)

// Employee is the backend's employee record.
type Employee struct {
	ID             int64       `json:"id"`
	UserID         int64       `json:"userId"`
	FirstName      string      `json:"firstName"`
	LastName       string      `json:"lastName"`
	Email          string      `json:"email"`
	Role           domain.Role `json:"role"`
	IsActive       bool        `json:"isActive"`
	TaxID          string      `json:"taxId"`
	TAJNumber      string      `json:"tajNumber"`
	IDCardNumber   string      `json:"idCardNumber"`
	PrimaryAddress string      `json:"primaryAddress"`
	PhoneNumber    string      `json:"phoneNumber"`
	Nationality    string      `json:"nationality"`
	BirthDate      string      `json:"birthDate"`
	CompanyName    string      `json:"companyName"`
	StartDate      string      `json:"startDate"`
	RoomNumber     *string     `json:"roomNumber"`
}

// EmployeeService is the admin-area employee CRUD surface.
type EmployeeService struct {
	c *Client
}

// List returns all employees.
func (s *EmployeeService) List(ctx context.Context) ([]Employee, error) {
	var out []Employee
	if err := s.c.do(ctx, http.MethodGet, "/employees", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one employee by ID.
func (s *EmployeeService) Get(ctx context.Context, id int64) (*Employee, error) {
	var e Employee
	if err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/employees/%d", id), nil, nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create adds a new employee.
func (s *EmployeeService) Create(ctx context.Context, e *Employee) (*Employee, error) {
	var out Employee
	if err := s.c.do(ctx, http.MethodPost, "/employees", nil, e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update overwrites an employee record.
func (s *EmployeeService) Update(ctx context.Context, id int64, e *Employee) (*Employee, error) {
	var out Employee
	if err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("/employees/%d", id), nil, e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an employee.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/employees/%d", id), nil, nil, nil)
}
