package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	SessionToken string
	DisplayName  string
	CreatedAt    time.Time
}
