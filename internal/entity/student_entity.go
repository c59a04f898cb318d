package entity

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	Id             uuid.UUID
	Email          string
	FullName       string
	Phone          string
	PasswordHash   *string
	RoomNumber     string
	HostelBlock    string
	MessPreference string
	JoinDate       time.Time
	DueAmount      int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

const (
	MessPreferenceVegetarian    = "Vegetarian"
	MessPreferenceNonVegetarian = "Non-Vegetarian"
	MessPreferenceVegan         = "Vegan"
)
