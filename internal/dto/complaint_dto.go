package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateComplaintRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required,min=3"`
	Category    string `json:"category" validate:"required,oneof=Room Mess Facility Other"`
}

type UpdateComplaintStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Open 'In Progress' Resolved"`
}

type ComplaintResponse struct {
	Id          uuid.UUID  `json:"id"`
	StudentId   uuid.UUID  `json:"student_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
