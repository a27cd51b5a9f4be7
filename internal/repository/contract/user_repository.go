package contract

import (
	"context"

	"beertally-be/internal/entity"
	"beertally-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Business Specific
	FindBySessionToken(ctx context.Context, token string) (*entity.User, error)
	UpdateDisplayName(ctx context.Context, userId uuid.UUID, name string) error
}
