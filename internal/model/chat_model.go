package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatSession struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentId uuid.UUID `gorm:"type:uuid;not null;index"` // Student ownership for data isolation
	Title     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

type ChatMessage struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChatSessionId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Chat             string    `gorm:"type:text;not null"`
	Role             string    `gorm:"type:text;not null"`
	ComplaintFlagged bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
