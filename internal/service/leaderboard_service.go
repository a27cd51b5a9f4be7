package service

import (
	"context"
	"log"

	"beertally-be/internal/dto"
	"beertally-be/internal/repository/specification"
	"beertally-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// LeaderboardKey is the Redis sorted set holding user id → beer count.
const LeaderboardKey = "leaderboard:beers"

const defaultLeaderboardLimit = 10

type ILeaderboardService interface {
	// Top returns the ranking, highest count first. Reads the Redis cache
	// when warm and falls back to a SQL aggregate otherwise.
	Top(ctx context.Context, limit int) ([]dto.LeaderboardEntryResponse, error)
}

type leaderboardService struct {
	uowFactory unitofwork.RepositoryFactory
	redis      *redis.Client
}

func NewLeaderboardService(uowFactory unitofwork.RepositoryFactory, redisClient *redis.Client) ILeaderboardService {
	return &leaderboardService{
		uowFactory: uowFactory,
		redis:      redisClient,
	}
}

func (s *leaderboardService) Top(ctx context.Context, limit int) ([]dto.LeaderboardEntryResponse, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	if s.redis != nil {
		entries, err := s.topFromCache(ctx, limit)
		if err != nil {
			log.Printf("[WARN] Leaderboard cache read failed, falling back to SQL: %v", err)
		} else if len(entries) > 0 {
			return entries, nil
		}
	}

	return s.topFromSQL(ctx, limit)
}

func (s *leaderboardService) topFromCache(ctx context.Context, limit int) ([]dto.LeaderboardEntryResponse, error) {
	ranked, err := s.redis.ZRevRangeWithScores(ctx, LeaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	users := uow.UserRepository()

	entries := make([]dto.LeaderboardEntryResponse, 0, len(ranked))
	for _, z := range ranked {
		memberStr, ok := z.Member.(string)
		if !ok {
			continue
		}
		userId, err := uuid.Parse(memberStr)
		if err != nil {
			continue
		}
		if int64(z.Score) <= 0 {
			continue
		}

		name := "Unknown"
		user, err := users.FindOne(ctx, specification.ByID{ID: userId})
		if err == nil && user != nil {
			name = user.DisplayName
		}

		entries = append(entries, dto.LeaderboardEntryResponse{
			UserId:      userId,
			DisplayName: name,
			Count:       int64(z.Score),
		})
	}
	return entries, nil
}

func (s *leaderboardService) topFromSQL(ctx context.Context, limit int) ([]dto.LeaderboardEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	ranked, err := uow.TallyRepository().Leaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardEntryResponse, len(ranked))
	for i, e := range ranked {
		entries[i] = dto.LeaderboardEntryResponse{
			UserId:      e.UserId,
			DisplayName: e.DisplayName,
			Count:       e.Count,
		}
	}
	return entries, nil
}
