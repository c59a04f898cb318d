package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Complaint struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title       string         `gorm:"type:text;not null"`
	Description string         `gorm:"type:text;not null"`
	Category    string         `gorm:"type:text;not null"`
	Status      string         `gorm:"type:text;not null;index"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Complaint) TableName() string {
	return "complaints"
}
