package dto

import (
	"time"

	"github.com/google/uuid"
)

type StudentResponse struct {
	Id             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone,omitempty"`
	RoomNumber     string    `json:"room_number,omitempty"`
	HostelBlock    string    `json:"hostel_block,omitempty"`
	MessPreference string    `json:"mess_preference,omitempty"`
	JoinDate       time.Time `json:"join_date"`
	DueAmount      int       `json:"due_amount"`
	CreatedAt      time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	FullName       string `json:"full_name" validate:"omitempty,min=3"`
	Phone          string `json:"phone" validate:"omitempty,min=7"`
	MessPreference string `json:"mess_preference" validate:"omitempty,oneof=Vegetarian Non-Vegetarian Vegan"`
}

// DashboardResponse aggregates the student's landing-page widgets.
type DashboardResponse struct {
	Student          StudentResponse     `json:"student"`
	OpenComplaints   int64               `json:"open_complaints"`
	PendingRequests  int64               `json:"pending_requests"`
	TodayMenu        *MessMenuResponse   `json:"today_menu,omitempty"`
	RecentComplaints []ComplaintResponse `json:"recent_complaints"`
}
