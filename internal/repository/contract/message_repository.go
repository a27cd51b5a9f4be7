package contract

import (
	"context"

	"beertally-be/internal/entity"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.RoomMessage) error

	// FindRecent returns the most recent limit messages of a room in
	// chronological (oldest-first) order, author names resolved at read time.
	FindRecent(ctx context.Context, roomId uuid.UUID, limit int) ([]*entity.RoomMessage, error)

	Count(ctx context.Context, roomId uuid.UUID) (int64, error)
}
