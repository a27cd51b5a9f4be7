package implementation

import (
	"context"

	"beertally-be/internal/entity"
	"beertally-be/internal/mapper"
	"beertally-be/internal/model"
	"beertally-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoomMapper
}

func NewMessageRepository(db *gorm.DB) contract.MessageRepository {
	return &MessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoomMapper(),
	}
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, message *entity.RoomMessage) error {
	m := r.mapper.MessageToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	authorName := message.AuthorName
	*message = *r.mapper.MessageToEntity(m)
	message.AuthorName = authorName
	return nil
}

func (r *MessageRepositoryImpl) FindRecent(ctx context.Context, roomId uuid.UUID, limit int) ([]*entity.RoomMessage, error) {
	var results []*entity.RoomMessage
	// Newest limit rows first, then reversed so callers get chronological order.
	err := r.db.WithContext(ctx).Table("room_messages").
		Select("room_messages.id, room_messages.room_id, room_messages.user_id, room_messages.body, room_messages.created_at, users.display_name AS author_name").
		Joins("JOIN users ON users.id = room_messages.user_id").
		Where("room_messages.room_id = ?", roomId).
		Order("room_messages.created_at DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
		results[i], results[j] = results[j], results[i]
	}
	return results, nil
}

func (r *MessageRepositoryImpl) Count(ctx context.Context, roomId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.RoomMessage{}).
		Where("room_id = ?", roomId).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
