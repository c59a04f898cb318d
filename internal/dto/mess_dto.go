package dto

import (
	"time"

	"github.com/google/uuid"
)

type MessMenuResponse struct {
	Id        uuid.UUID `json:"id"`
	Day       string    `json:"day"`
	Breakfast []string  `json:"breakfast"`
	Lunch     []string  `json:"lunch"`
	Snacks    []string  `json:"snacks"`
	Dinner    []string  `json:"dinner"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpsertMessMenuRequest struct {
	Day       string   `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Breakfast []string `json:"breakfast" validate:"required,min=1"`
	Lunch     []string `json:"lunch" validate:"required,min=1"`
	Snacks    []string `json:"snacks" validate:"required,min=1"`
	Dinner    []string `json:"dinner" validate:"required,min=1"`
}

type CreateMessFeedbackRequest struct {
	Meal     string `json:"meal" validate:"required,oneof=Breakfast Lunch Snacks Dinner"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comments string `json:"comments" validate:"omitempty,max=1000"`
}

type MessFeedbackResponse struct {
	Id        uuid.UUID `json:"id"`
	Meal      string    `json:"meal"`
	Rating    int       `json:"rating"`
	Comments  string    `json:"comments,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
