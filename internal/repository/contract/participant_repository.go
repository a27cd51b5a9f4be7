package contract

import (
	"context"

	"beertally-be/internal/entity"

	"github.com/google/uuid"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *entity.RoomParticipant) error
	FindByRoomAndUser(ctx context.Context, roomId, userId uuid.UUID) (*entity.RoomParticipant, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// ListActive returns the current roster joined with display names, ordered
	// by original join time ascending. Ordering is stable across calls.
	ListActive(ctx context.Context, roomId uuid.UUID) ([]*entity.Participant, error)
}
