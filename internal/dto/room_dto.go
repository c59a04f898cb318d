package dto

import (
	"time"

	"github.com/google/uuid"
)

type RoomResponse struct {
	Id        uuid.UUID `json:"id"`
	Number    string    `json:"number"`
	Block     string    `json:"block"`
	Type      string    `json:"type"`
	Condition string    `json:"condition"`
	Amenities []string  `json:"amenities"`
	Capacity  int       `json:"capacity"`
}

type CreateRoomChangeRequest struct {
	DesiredRoomType string `json:"desired_room_type" validate:"required"`
	Reason          string `json:"reason" validate:"required,min=3"`
}

type RoomChangeRequestResponse struct {
	Id              uuid.UUID  `json:"id"`
	CurrentRoom     string     `json:"current_room"`
	DesiredRoomType string     `json:"desired_room_type"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

type CreateMaintenanceRequest struct {
	Description string `json:"description" validate:"required,min=3"`
}

type MaintenanceRequestResponse struct {
	Id          uuid.UUID  `json:"id"`
	RoomNumber  string     `json:"room_number"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
