package model

import (
	"time"

	"github.com/google/uuid"
)

type GameScore struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Score     int       `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (GameScore) TableName() string {
	return "game_scores"
}
