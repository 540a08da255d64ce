package api

import (
	"context"
	"fmt"
	"net/http"
)

// Accommodation is a housing site containing rooms.
type Accommodation struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Address        string `json:"address"`
	ManagerContact string `json:"managerContact"`
	TotalCapacity  int64  `json:"totalCapacity"`
}

// RoomOccupant is one active allocation inside a room.
type RoomOccupant struct {
	AllocationID int64  `json:"allocationId"`
	EmployeeID   int64  `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	CompanyName  string `json:"companyName"`
	CheckInDate  string `json:"checkInDate"`
}

// Room is one room with its current occupancy.
type Room struct {
	ID               int64          `json:"id"`
	RoomNumber       string         `json:"roomNumber"`
	Capacity         int64          `json:"capacity"`
	CurrentOccupancy int64          `json:"currentOccupancy"`
	CurrentOccupants []RoomOccupant `json:"currentOccupants"`
}

// CreateAccommodationRequest creates or updates an accommodation.
type CreateAccommodationRequest struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	ManagerContact string `json:"managerContact"`
	TotalCapacity  int64  `json:"totalCapacity,omitempty"`
}

// CreateRoomRequest creates or updates a room.
type CreateRoomRequest struct {
	AccommodationID int64  `json:"accommodationId,omitempty"`
	RoomNumber      string `json:"roomNumber"`
	Capacity        int64  `json:"capacity"`
}

// RoomHistory is one past or present allocation of an employee.
type RoomHistory struct {
	ID           int64   `json:"id"`
	RoomNumber   string  `json:"roomNumber"`
	EmployeeName string  `json:"employeeName"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate *string `json:"checkOutDate"`
	Status       string  `json:"status"`
}

// AccommodationService covers accommodations, their rooms, and allocation
// history.
type AccommodationService struct {
	c *Client
}

// List returns all accommodations.
func (s *AccommodationService) List(ctx context.Context) ([]Accommodation, error) {
	var out []Accommodation
	if err := s.c.do(ctx, http.MethodGet, "/accommodations", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create adds an accommodation.
func (s *AccommodationService) Create(ctx context.Context, req *CreateAccommodationRequest) (*Accommodation, error) {
	var out Accommodation
	if err := s.c.do(ctx, http.MethodPost, "/accommodations", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update modifies an accommodation.
func (s *AccommodationService) Update(ctx context.Context, id int64, req *CreateAccommodationRequest) (*Accommodation, error) {
	var out Accommodation
	if err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("/accommodations/%d", id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Rooms lists the rooms of one accommodation.
func (s *AccommodationService) Rooms(ctx context.Context, accommodationID int64) ([]Room, error) {
	var out []Room
	path := fmt.Sprintf("/accommodations/%d/rooms", accommodationID)
	if err := s.c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRoom adds a room to an accommodation.
func (s *AccommodationService) CreateRoom(ctx context.Context, accommodationID int64, req *CreateRoomRequest) (*Room, error) {
	var out Room
	path := fmt.Sprintf("/accommodations/%d/rooms", accommodationID)
	if err := s.c.do(ctx, http.MethodPost, path, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRoom modifies a room.
func (s *AccommodationService) UpdateRoom(ctx context.Context, roomID int64, req *CreateRoomRequest) (*Room, error) {
	var out Room
	path := fmt.Sprintf("/accommodations/rooms/%d", roomID)
	if err := s.c.do(ctx, http.MethodPut, path, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRoom removes a room. The backend rejects rooms with active
// allocations.
func (s *AccommodationService) DeleteRoom(ctx context.Context, roomID int64) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/accommodations/rooms/%d", roomID), nil, nil, nil)
}

// EmployeeRoomHistory returns an employee's allocation history.
func (s *AccommodationService) EmployeeRoomHistory(ctx context.Context, employeeID int64) ([]RoomHistory, error) {
	var out []RoomHistory
	path := fmt.Sprintf("/accommodations/employees/%d/room-history", employeeID)
	if err := s.c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
