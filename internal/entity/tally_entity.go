package entity

import (
	"time"

	"github.com/google/uuid"
)

type Tally struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	CreatedAt time.Time
}

// LeaderboardEntry is one ranked row of the beer leaderboard.
type LeaderboardEntry struct {
	UserId      uuid.UUID
	DisplayName string
	Count       int64
}
