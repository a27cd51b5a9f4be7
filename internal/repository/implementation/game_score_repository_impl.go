package implementation

import (
	"context"
	"errors"

	"beertally-be/internal/entity"
	"beertally-be/internal/model"
	"beertally-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GameScoreRepositoryImpl struct {
	db *gorm.DB
}

func NewGameScoreRepository(db *gorm.DB) contract.GameScoreRepository {
	return &GameScoreRepositoryImpl{db: db}
}

func (r *GameScoreRepositoryImpl) Create(ctx context.Context, score *entity.GameScore) error {
	m := model.GameScore(*score)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*score = entity.GameScore(m)
	return nil
}

func (r *GameScoreRepositoryImpl) BestByUser(ctx context.Context, userId uuid.UUID) (*entity.GameScore, error) {
	var m model.GameScore
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("score DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	best := entity.GameScore(m)
	return &best, nil
}

func (r *GameScoreRepositoryImpl) Top(ctx context.Context, limit int) ([]*entity.GameRanking, error) {
	var results []*entity.GameRanking
	err := r.db.WithContext(ctx).Table("game_scores").
		Select("game_scores.user_id, users.display_name, MAX(game_scores.score) as score").
		Joins("JOIN users ON users.id = game_scores.user_id").
		Group("game_scores.user_id, users.display_name").
		Order("score DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
