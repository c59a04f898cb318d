package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MessMenu struct {
	Id        uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Day       string                      `gorm:"type:text;not null;uniqueIndex"`
	Breakfast datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Lunch     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Snacks    datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Dinner    datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	UpdatedAt time.Time                   `gorm:"autoUpdateTime"`
}

func (MessMenu) TableName() string {
	return "mess_menus"
}

type MessFeedback struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentId uuid.UUID `gorm:"type:uuid;not null;index"`
	Meal      string    `gorm:"type:text;not null"`
	Rating    int       `gorm:"not null"`
	Comments  string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (MessFeedback) TableName() string {
	return "mess_feedbacks"
}
