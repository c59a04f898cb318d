package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessMenu holds one day of the weekly menu. Meal slots are ordered lists of
// dishes as the mess committee publishes them.
type MessMenu struct {
	Id        uuid.UUID
	Day       string
	Breakfast []string
	Lunch     []string
	Snacks    []string
	Dinner    []string
	UpdatedAt time.Time
}

type MessFeedback struct {
	Id        uuid.UUID
	StudentId uuid.UUID
	Meal      string
	Rating    int
	Comments  string
	CreatedAt time.Time
}
