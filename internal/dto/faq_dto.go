package dto

import "github.com/google/uuid"

type FaqResponse struct {
	Id       uuid.UUID `json:"id"`
	Category string    `json:"category"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
}
