package model

import (
	"time"

	"github.com/google/uuid"
)

type Tally struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (Tally) TableName() string {
	return "tallies"
}
