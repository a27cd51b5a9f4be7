package implementation

import (
	"context"
	"errors"

	"beertally-be/internal/entity"
	"beertally-be/internal/mapper"
	"beertally-be/internal/model"
	"beertally-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParticipantRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoomMapper
}

func NewParticipantRepository(db *gorm.DB) contract.ParticipantRepository {
	return &ParticipantRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoomMapper(),
	}
}

func (r *ParticipantRepositoryImpl) Create(ctx context.Context, participant *entity.RoomParticipant) error {
	m := r.mapper.ParticipantToModel(participant)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*participant = *r.mapper.ParticipantToEntity(m)
	return nil
}

func (r *ParticipantRepositoryImpl) FindByRoomAndUser(ctx context.Context, roomId, userId uuid.UUID) (*entity.RoomParticipant, error) {
	var m model.RoomParticipant
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND user_id = ?", roomId, userId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ParticipantToEntity(&m), nil
}

func (r *ParticipantRepositoryImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.db.WithContext(ctx).Model(&model.RoomParticipant{}).
		Where("id = ?", id).
		Update("active", active).Error
}

func (r *ParticipantRepositoryImpl) ListActive(ctx context.Context, roomId uuid.UUID) ([]*entity.Participant, error) {
	var results []*entity.Participant
	err := r.db.WithContext(ctx).Table("room_participants").
		Select("room_participants.user_id, users.display_name, room_participants.joined_at").
		Joins("JOIN users ON users.id = room_participants.user_id").
		Where("room_participants.room_id = ? AND room_participants.active = ?", roomId, true).
		Order("room_participants.joined_at ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
