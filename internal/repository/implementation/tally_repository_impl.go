package implementation

import (
	"context"
	"errors"
	"time"

	"beertally-be/internal/entity"
	"beertally-be/internal/model"
	"beertally-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TallyRepositoryImpl struct {
	db *gorm.DB
}

func NewTallyRepository(db *gorm.DB) contract.TallyRepository {
	return &TallyRepositoryImpl{db: db}
}

func (r *TallyRepositoryImpl) Create(ctx context.Context, tally *entity.Tally) error {
	m := model.Tally(*tally)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*tally = entity.Tally(m)
	return nil
}

func (r *TallyRepositoryImpl) DeleteLast(ctx context.Context, userId uuid.UUID) (*entity.Tally, error) {
	var m model.Tally
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&model.Tally{}, "id = ?", m.Id).Error; err != nil {
		return nil, err
	}

	deleted := entity.Tally(m)
	return &deleted, nil
}

func (r *TallyRepositoryImpl) CountByUser(ctx context.Context, userId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Tally{}).
		Where("user_id = ?", userId).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TallyRepositoryImpl) CountByUserSince(ctx context.Context, userId uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Tally{}).
		Where("user_id = ? AND created_at >= ?", userId, since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TallyRepositoryImpl) Leaderboard(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error) {
	var results []*entity.LeaderboardEntry
	err := r.db.WithContext(ctx).Table("tallies").
		Select("tallies.user_id, users.display_name, COUNT(*) as count").
		Joins("JOIN users ON users.id = tallies.user_id").
		Group("tallies.user_id, users.display_name").
		Order("count DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
