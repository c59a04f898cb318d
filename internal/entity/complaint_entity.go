package entity

import (
	"time"

	"github.com/google/uuid"
)

// ComplaintCategory is a closed enumeration. Anything outside the four
// values below is rejected at parse time.
type ComplaintCategory string

const (
	CategoryRoom     ComplaintCategory = "Room"
	CategoryMess     ComplaintCategory = "Mess"
	CategoryFacility ComplaintCategory = "Facility"
	CategoryOther    ComplaintCategory = "Other"
)

// ParseComplaintCategory matches the input against the category literals.
// Matching is exact: the complaint capture flow re-prompts on anything else.
func ParseComplaintCategory(s string) (ComplaintCategory, bool) {
	switch ComplaintCategory(s) {
	case CategoryRoom, CategoryMess, CategoryFacility, CategoryOther:
		return ComplaintCategory(s), true
	}
	return "", false
}

const (
	ComplaintStatusOpen       = "Open"
	ComplaintStatusInProgress = "In Progress"
	ComplaintStatusResolved   = "Resolved"
)

// ValidComplaintStatus reports whether s is one of the three status literals.
func ValidComplaintStatus(s string) bool {
	switch s {
	case ComplaintStatusOpen, ComplaintStatusInProgress, ComplaintStatusResolved:
		return true
	}
	return false
}

type Complaint struct {
	Id          uuid.UUID
	StudentId   uuid.UUID
	Title       string
	Description string
	Category    ComplaintCategory
	Status      string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
