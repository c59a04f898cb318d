package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type GetAllSessionsResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type GetChatHistoryResponse struct {
	Id               uuid.UUID `json:"id"`
	Role             string    `json:"role"`
	Chat             string    `json:"chat"`
	ComplaintFlagged bool      `json:"complaint_flagged"`
	CreatedAt        time.Time `json:"created_at"`
}

type SendChatRequest struct {
	ChatSessionId uuid.UUID `json:"chat_session_id" validate:"required"`
	Chat          string    `json:"chat" validate:"required"`
}

type SendChatResponseChat struct {
	Id               uuid.UUID `json:"id"`
	Chat             string    `json:"chat"`
	Role             string    `json:"role"`
	ComplaintFlagged bool      `json:"complaint_flagged"`
	CreatedAt        time.Time `json:"created_at"`
}

type SendChatResponse struct {
	UserChat *SendChatResponseChat `json:"user_chat"`
	BotChat  *SendChatResponseChat `json:"bot_chat"`
	// SubmittedComplaintId is set when this turn completed the complaint
	// capture flow.
	SubmittedComplaintId *uuid.UUID `json:"submitted_complaint_id,omitempty"`
}
