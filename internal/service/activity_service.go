package service

import (
	"context"

	"beertally-be/internal/dto"
	"beertally-be/internal/entity"
	"beertally-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const defaultActivityLimit = 20

type IActivityService interface {
	// Record persists one feed row. Called by the event consumer, never by
	// request handlers directly.
	Record(ctx context.Context, eventType string, metadata map[string]interface{}) error

	Recent(ctx context.Context, limit int) ([]dto.ActivityResponse, error)
}

type activityService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewActivityService(uowFactory unitofwork.RepositoryFactory) IActivityService {
	return &activityService{uowFactory: uowFactory}
}

func (s *activityService) Record(ctx context.Context, eventType string, metadata map[string]interface{}) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	activity := &entity.Activity{
		Id:        uuid.New(),
		EventType: eventType,
		Metadata:  metadata,
	}
	return uow.ActivityRepository().Create(ctx, activity)
}

func (s *activityService) Recent(ctx context.Context, limit int) ([]dto.ActivityResponse, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	activities, err := uow.ActivityRepository().FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	res := make([]dto.ActivityResponse, len(activities))
	for i, a := range activities {
		res[i] = dto.ActivityResponse{
			Id:        a.Id,
			EventType: a.EventType,
			Metadata:  a.Metadata,
			CreatedAt: a.CreatedAt,
		}
	}
	return res, nil
}
