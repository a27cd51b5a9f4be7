package implementation

import (
	"context"
	"encoding/json"

	"beertally-be/internal/entity"
	"beertally-be/internal/model"
	"beertally-be/internal/repository/contract"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ActivityRepositoryImpl struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) contract.ActivityRepository {
	return &ActivityRepositoryImpl{db: db}
}

func (r *ActivityRepositoryImpl) Create(ctx context.Context, activity *entity.Activity) error {
	var meta datatypes.JSON
	if activity.Metadata != nil {
		raw, err := json.Marshal(activity.Metadata)
		if err != nil {
			return err
		}
		meta = datatypes.JSON(raw)
	}

	m := model.Activity{
		Id:        activity.Id,
		EventType: activity.EventType,
		Metadata:  meta,
		CreatedAt: activity.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	activity.CreatedAt = m.CreatedAt
	return nil
}

func (r *ActivityRepositoryImpl) FindRecent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	var models []*model.Activity
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	activities := make([]*entity.Activity, len(models))
	for i, m := range models {
		a := &entity.Activity{
			Id:        m.Id,
			EventType: m.EventType,
			CreatedAt: m.CreatedAt,
		}
		if len(m.Metadata) > 0 {
			// Rows written by older consumers may carry malformed metadata;
			// surface the activity anyway.
			_ = json.Unmarshal(m.Metadata, &a.Metadata)
		}
		activities[i] = a
	}
	return activities, nil
}
