package api

import (
	"context"
	"fmt"
	"net/http"
)

// AdvanceStatus is the review state of an advance request.
type AdvanceStatus string

const (
	AdvancePending  AdvanceStatus = "PENDING"
	AdvanceApproved AdvanceStatus = "APPROVED"
	AdvanceRejected AdvanceStatus = "REJECTED"
)

// AdvanceRequest asks for a salary advance.
type AdvanceRequest struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

// AdvanceHistory is a submitted advance request with its review outcome.
type AdvanceHistory struct {
	ID              int64         `json:"id"`
	EmployeeID      int64         `json:"employeeId"`
	EmployeeName    string        `json:"employeeName"`
	EmployeeEmail   string        `json:"employeeEmail"`
	Amount          float64       `json:"amount"`
	Reason          string        `json:"reason"`
	RequestDate     string        `json:"requestDate"`
	Status          AdvanceStatus `json:"status"`
	ReviewedByID    *int64        `json:"reviewedById,omitempty"`
	ReviewedByName  string        `json:"reviewedByName,omitempty"`
	ReviewedAt      string        `json:"reviewedAt,omitempty"`
	RejectionReason string        `json:"rejectionReason,omitempty"`
}

// ReviewRequest approves or rejects an advance. RejectionReason is required
// when rejecting; the backend enforces it.
type ReviewRequest struct {
	Status          AdvanceStatus `json:"status"`
	RejectionReason string        `json:"rejectionReason,omitempty"`
}

// AdvanceService covers advance requests for employees and their review by
// admins.
type AdvanceService struct {
	c *Client
}

// Create submits a new advance request for the logged-in employee.
func (s *AdvanceService) Create(ctx context.Context, req *AdvanceRequest) (*AdvanceHistory, error) {
	var out AdvanceHistory
	if err := s.c.do(ctx, http.MethodPost, "/advances", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyHistory returns the logged-in employee's past requests.
func (s *AdvanceService) MyHistory(ctx context.Context) ([]AdvanceHistory, error) {
	var out []AdvanceHistory
	if err := s.c.do(ctx, http.MethodGet, "/advances/my-history", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns every advance request. Admin area only.
func (s *AdvanceService) List(ctx context.Context) ([]AdvanceHistory, error) {
	var out []AdvanceHistory
	if err := s.c.do(ctx, http.MethodGet, "/advances", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Review approves or rejects a pending request.
func (s *AdvanceService) Review(ctx context.Context, id int64, req *ReviewRequest) (*AdvanceHistory, error) {
	var out AdvanceHistory
	path := fmt.Sprintf("/advances/%d/review", id)
	if err := s.c.do(ctx, http.MethodPut, path, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
