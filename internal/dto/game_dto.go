package dto

import (
	"github.com/google/uuid"
)

type SubmitScoreRequest struct {
	Score int `json:"score" validate:"gte=0"`
}

type GameScoreResponse struct {
	Score int `json:"score"`
}

type GameRankingResponse struct {
	UserId      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Score       int       `json:"score"`
}
