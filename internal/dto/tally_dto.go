package dto

import (
	"time"

	"github.com/google/uuid"
)

type TallyResponse struct {
	Id        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type TallyCountResponse struct {
	Total int64 `json:"total"`
	Today int64 `json:"today"`
}

type LeaderboardEntryResponse struct {
	UserId      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Count       int64     `json:"count"`
}
