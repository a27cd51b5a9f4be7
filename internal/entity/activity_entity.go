package entity

import (
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	Id        uuid.UUID
	EventType string
	Metadata  map[string]interface{}
	CreatedAt time.Time
}
