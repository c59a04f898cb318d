package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Room struct {
	Id        uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Number    string                      `gorm:"type:text;not null;uniqueIndex"`
	Block     string                      `gorm:"type:text;not null"`
	Type      string                      `gorm:"type:text;not null"`
	Condition string                      `gorm:"type:text"`
	Amenities datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Capacity  int                         `gorm:"not null;default:1"`
	CreatedAt time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt time.Time                   `gorm:"autoUpdateTime"`
}

func (Room) TableName() string {
	return "rooms"
}

type RoomChangeRequest struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentId       uuid.UUID `gorm:"type:uuid;not null;index"`
	CurrentRoom     string    `gorm:"type:text;not null"`
	DesiredRoomType string    `gorm:"type:text;not null"`
	Reason          string    `gorm:"type:text"`
	Status          string    `gorm:"type:text;not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (RoomChangeRequest) TableName() string {
	return "room_change_requests"
}

type MaintenanceRequest struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentId   uuid.UUID `gorm:"type:uuid;not null;index"`
	RoomNumber  string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}
