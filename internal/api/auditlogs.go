package api

import (
	"context"
	"net/http"
)

// AuditLog is one entry of the backend's audit trail.
type AuditLog struct {
	ID          int64  `json:"id"`
	EntityType  string `json:"entityType"`
	EntityID    int64  `json:"entityId"`
	Action      string `json:"action"`
	UserID      int64  `json:"userId"`
	UserEmail   string `json:"userEmail"`
	UserRole    string `json:"userRole"`
	Description string `json:"description"`
	OldValue    string `json:"oldValue,omitempty"`
	NewValue    string `json:"newValue,omitempty"`
	IPAddress   string `json:"ipAddress,omitempty"`
	Timestamp   string `json:"timestamp"`
}

// AuditLogService is the ADMIN-only audit trail reader.
type AuditLogService struct {
	c *Client
}

// List returns the audit trail, newest first.
func (s *AuditLogService) List(ctx context.Context) ([]AuditLog, error) {
	var out []AuditLog
	if err := s.c.do(ctx, http.MethodGet, "/audit-logs", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
