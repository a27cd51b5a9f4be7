package contract

import (
	"context"

	"beertally-be/internal/entity"

	"github.com/google/uuid"
)

type GameScoreRepository interface {
	Create(ctx context.Context, score *entity.GameScore) error
	BestByUser(ctx context.Context, userId uuid.UUID) (*entity.GameScore, error)

	// Top returns the highest score per user, ranked descending.
	Top(ctx context.Context, limit int) ([]*entity.GameRanking, error)
}
