package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id        uuid.UUID
	StudentId uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ChatMessage is one transcript turn. Messages are immutable once created
// and ordered strictly by insertion.
type ChatMessage struct {
	Id               uuid.UUID
	ChatSessionId    uuid.UUID
	Chat             string
	Role             string
	ComplaintFlagged bool
	CreatedAt        time.Time
}
