package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email          string    `gorm:"type:text;not null;uniqueIndex"`
	FullName       string    `gorm:"type:text;not null"`
	Phone          string    `gorm:"type:text"`
	PasswordHash   *string   `gorm:"type:text"`
	RoomNumber     string    `gorm:"type:text;index"`
	HostelBlock    string    `gorm:"type:text"`
	MessPreference string    `gorm:"type:text"`
	JoinDate       time.Time
	DueAmount      int            `gorm:"not null;default:0"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Student) TableName() string {
	return "students"
}
