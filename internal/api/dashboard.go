package api

import (
	"context"
	"net/http"
)

// DashboardStats is the admin dashboard aggregate.
type DashboardStats struct {
	TotalEmployees    int64 `json:"totalEmployees"`
	ActiveEmployees   int64 `json:"activeEmployees"`
	InactiveEmployees int64 `json:"inactiveEmployees"`

	TotalRooms       int64 `json:"totalRooms"`
	OccupiedRooms    int64 `json:"occupiedRooms"`
	AvailableRooms   int64 `json:"availableRooms"`
	TotalCapacity    int64 `json:"totalCapacity"`
	CurrentOccupancy int64 `json:"currentOccupancy"`

	TotalAdvanceRequests    int64 `json:"totalAdvanceRequests"`
	PendingAdvanceRequests  int64 `json:"pendingAdvanceRequests"`
	ApprovedAdvanceRequests int64 `json:"approvedAdvanceRequests"`
	RejectedAdvanceRequests int64 `json:"rejectedAdvanceRequests"`

	NewEmployeesThisMonth int64 `json:"newEmployeesThisMonth"`
	CheckInsThisMonth     int64 `json:"checkInsThisMonth"`
}

// DashboardService serves the admin dashboard.
type DashboardService struct {
	c *Client
}

// Stats returns the dashboard aggregate.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	if err := s.c.do(ctx, http.MethodGet, "/dashboard/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
