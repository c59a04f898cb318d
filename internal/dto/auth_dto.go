package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FullName       string `json:"full_name" validate:"required,min=3"`
	Phone          string `json:"phone" validate:"omitempty,min=7"`
	MessPreference string `json:"mess_preference" validate:"omitempty,oneof=Vegetarian Non-Vegetarian Vegan"`
}

type RegisterResponse struct {
	Id    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Student   StudentResponse `json:"student"`
}
