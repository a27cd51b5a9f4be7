package contract

import (
	"context"
	"time"

	"beertally-be/internal/entity"

	"github.com/google/uuid"
)

type TallyRepository interface {
	Create(ctx context.Context, tally *entity.Tally) error

	// DeleteLast removes the most recent tally row for the user. Returns the
	// deleted row, or nil when the user has no tallies.
	DeleteLast(ctx context.Context, userId uuid.UUID) (*entity.Tally, error)

	CountByUser(ctx context.Context, userId uuid.UUID) (int64, error)
	CountByUserSince(ctx context.Context, userId uuid.UUID, since time.Time) (int64, error)

	// Leaderboard aggregates counts per user, highest first.
	Leaderboard(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error)
}
