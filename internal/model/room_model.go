package model

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code          string    `gorm:"type:varchar(6);uniqueIndex;not null"`
	DisplayName   string    `gorm:"type:varchar(100);not null"`
	CreatorUserId uuid.UUID `gorm:"type:uuid;not null;index"`
	Active        bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (Room) TableName() string {
	return "rooms"
}

type RoomParticipant struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoomId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_room_user"`
	UserId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_room_user"`
	JoinedAt time.Time `gorm:"not null"`
	Active   bool      `gorm:"not null;default:true"`
}

func (RoomParticipant) TableName() string {
	return "room_participants"
}

type RoomMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoomId    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Body      string    `gorm:"type:varchar(500);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (RoomMessage) TableName() string {
	return "room_messages"
}
