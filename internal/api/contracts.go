package api

import (
	"context"
	"fmt"
	"net/http"
)

// ContractStatus is the lifecycle state of a contract.
type ContractStatus string

const (
	ContractDraft      ContractStatus = "DRAFT"
	ContractActive     ContractStatus = "ACTIVE"
	ContractTerminated ContractStatus = "TERMINATED"
	ContractExpired    ContractStatus = "EXPIRED"
)

// Contract is an employee's work contract.
type Contract struct {
	ID                  int64          `json:"id"`
	EmployeeID          int64          `json:"employeeId"`
	EmployeeName        string         `json:"employeeName"`
	ContractNumber      string         `json:"contractNumber"`
	StartDate           string         `json:"startDate"`
	EndDate             *string        `json:"endDate"`
	HourlyRate          float64        `json:"hourlyRate"`
	Currency            string         `json:"currency"`
	WorkingHoursPerWeek int64          `json:"workingHoursPerWeek"`
	PDFPath             string         `json:"pdfPath"`
	Status              ContractStatus `json:"status"`
	CreatedAt           string         `json:"createdAt"`
}

// CreateContractRequest creates a contract for an employee.
type CreateContractRequest struct {
	StartDate           string  `json:"startDate"`
	EndDate             *string `json:"endDate,omitempty"`
	HourlyRate          float64 `json:"hourlyRate"`
	Currency            string  `json:"currency,omitempty"`
	WorkingHoursPerWeek int64   `json:"workingHoursPerWeek,omitempty"`
}

// ContractService covers contract management and PDF retrieval.
type ContractService struct {
	c *Client
}

// ListByEmployee returns an employee's contracts.
func (s *ContractService) ListByEmployee(ctx context.Context, employeeID int64) ([]Contract, error) {
	var out []Contract
	path := fmt.Sprintf("/employees/%d/contracts", employeeID)
	if err := s.c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create generates a contract (and its PDF) for an employee.
func (s *ContractService) Create(ctx context.Context, employeeID int64, req *CreateContractRequest) (*Contract, error) {
	var out Contract
	path := fmt.Sprintf("/employees/%d/contracts", employeeID)
	if err := s.c.do(ctx, http.MethodPost, path, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadPDF returns the contract PDF bytes.
func (s *ContractService) DownloadPDF(ctx context.Context, contractID int64) ([]byte, error) {
	return s.c.doRaw(ctx, http.MethodGet, fmt.Sprintf("/contracts/%d/pdf", contractID), nil, nil)
}

// Invalidate terminates a contract.
func (s *ContractService) Invalidate(ctx context.Context, contractID int64) (*Contract, error) {
	var out Contract
	path := fmt.Sprintf("/contracts/%d/invalidate", contractID)
	if err := s.c.do(ctx, http.MethodPut, path, nil, struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
