package entity

import (
	"time"

	"github.com/google/uuid"
)

type GameScore struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Score     int
	CreatedAt time.Time
}

// GameRanking is one row of the minigame high-score table.
type GameRanking struct {
	UserId      uuid.UUID
	DisplayName string
	Score       int
}
