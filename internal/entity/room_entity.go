package entity

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	Id        uuid.UUID
	Number    string
	Block     string
	Type      string
	Condition string
	Amenities []string
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	RoomRequestStatusPending  = "Pending"
	RoomRequestStatusApproved = "Approved"
	RoomRequestStatusRejected = "Rejected"
	RoomRequestStatusResolved = "Resolved"
)

// RoomChangeRequest is a student's request to move to a different room type.
type RoomChangeRequest struct {
	Id              uuid.UUID
	StudentId       uuid.UUID
	CurrentRoom     string
	DesiredRoomType string
	Reason          string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// MaintenanceRequest is a repair ticket for the student's current room.
type MaintenanceRequest struct {
	Id          uuid.UUID
	StudentId   uuid.UUID
	RoomNumber  string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
