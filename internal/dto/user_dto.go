package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	Id          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

type StartSessionRequest struct {
	Name string `json:"name" validate:"omitempty,min=1,max=100"`
}

type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UpdateNameRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}
