package contract

import (
	"context"

	"beertally-be/internal/entity"
	"beertally-be/internal/repository/specification"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Room, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Room, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// CodeExists reports whether any room (active or not) already holds the
	// code. Used by the bounded generation retry loop.
	CodeExists(ctx context.Context, code string) (bool, error)
}
