package implementation

import (
	"context"
	"errors"

	"beertally-be/internal/entity"
	"beertally-be/internal/mapper"
	"beertally-be/internal/model"
	"beertally-be/internal/repository/contract"
	"beertally-be/internal/repository/specification"

	"gorm.io/gorm"
)

type RoomRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoomMapper
}

func NewRoomRepository(db *gorm.DB) contract.RoomRepository {
	return &RoomRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoomMapper(),
	}
}

func (r *RoomRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RoomRepositoryImpl) Create(ctx context.Context, room *entity.Room) error {
	modelRoom := r.mapper.ToModel(room)
	if err := r.db.WithContext(ctx).Create(modelRoom).Error; err != nil {
		return err
	}
	*room = *r.mapper.ToEntity(modelRoom)
	return nil
}

func (r *RoomRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Room, error) {
	var modelRoom model.Room
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelRoom).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelRoom), nil
}

func (r *RoomRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Room, error) {
	var modelRooms []*model.Room
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelRooms).Error; err != nil {
		return nil, err
	}

	rooms := make([]*entity.Room, len(modelRooms))
	for i, m := range modelRooms {
		rooms[i] = r.mapper.ToEntity(m)
	}
	return rooms, nil
}

func (r *RoomRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Room{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RoomRepositoryImpl) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Room{}).Where("code = ?", code).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
