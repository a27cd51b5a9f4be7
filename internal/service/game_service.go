package service

import (
	"context"

	"beertally-be/internal/dto"
	"beertally-be/internal/entity"
	"beertally-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const defaultRankingLimit = 10

type IGameService interface {
	Submit(ctx context.Context, userId uuid.UUID, req *dto.SubmitScoreRequest) (*dto.GameScoreResponse, error)
	PersonalBest(ctx context.Context, userId uuid.UUID) (*dto.GameScoreResponse, error)
	Top(ctx context.Context, limit int) ([]dto.GameRankingResponse, error)
}

type gameService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewGameService(uowFactory unitofwork.RepositoryFactory) IGameService {
	return &gameService{uowFactory: uowFactory}
}

func (s *gameService) Submit(ctx context.Context, userId uuid.UUID, req *dto.SubmitScoreRequest) (*dto.GameScoreResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	score := &entity.GameScore{
		Id:     uuid.New(),
		UserId: userId,
		Score:  req.Score,
	}
	if err := uow.GameScoreRepository().Create(ctx, score); err != nil {
		return nil, err
	}

	return &dto.GameScoreResponse{Score: score.Score}, nil
}

func (s *gameService) PersonalBest(ctx context.Context, userId uuid.UUID) (*dto.GameScoreResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	best, err := uow.GameScoreRepository().BestByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	if best == nil {
		return &dto.GameScoreResponse{Score: 0}, nil
	}
	return &dto.GameScoreResponse{Score: best.Score}, nil
}

func (s *gameService) Top(ctx context.Context, limit int) ([]dto.GameRankingResponse, error) {
	if limit <= 0 {
		limit = defaultRankingLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	ranked, err := uow.GameScoreRepository().Top(ctx, limit)
	if err != nil {
		return nil, err
	}

	res := make([]dto.GameRankingResponse, len(ranked))
	for i, r := range ranked {
		res[i] = dto.GameRankingResponse{
			UserId:      r.UserId,
			DisplayName: r.DisplayName,
			Score:       r.Score,
		}
	}
	return res, nil
}
