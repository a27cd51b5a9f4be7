package unitofwork

import (
	"context"

	"beertally-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	RoomRepository() contract.RoomRepository
	ParticipantRepository() contract.ParticipantRepository
	MessageRepository() contract.MessageRepository
	TallyRepository() contract.TallyRepository
	GameScoreRepository() contract.GameScoreRepository
	ActivityRepository() contract.ActivityRepository
}
