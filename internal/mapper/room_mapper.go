package mapper

import (
	"beertally-be/internal/entity"
	"beertally-be/internal/model"
)

type RoomMapper struct{}

func NewRoomMapper() *RoomMapper {
	return &RoomMapper{}
}

func (m *RoomMapper) ToEntity(r *model.Room) *entity.Room {
	if r == nil {
		return nil
	}
	return &entity.Room{
		Id:            r.Id,
		Code:          r.Code,
		DisplayName:   r.DisplayName,
		CreatorUserId: r.CreatorUserId,
		Active:        r.Active,
		CreatedAt:     r.CreatedAt,
	}
}

func (m *RoomMapper) ToModel(r *entity.Room) *model.Room {
	if r == nil {
		return nil
	}
	return &model.Room{
		Id:            r.Id,
		Code:          r.Code,
		DisplayName:   r.DisplayName,
		CreatorUserId: r.CreatorUserId,
		Active:        r.Active,
		CreatedAt:     r.CreatedAt,
	}
}

func (m *RoomMapper) ParticipantToEntity(p *model.RoomParticipant) *entity.RoomParticipant {
	if p == nil {
		return nil
	}
	return &entity.RoomParticipant{
		Id:       p.Id,
		RoomId:   p.RoomId,
		UserId:   p.UserId,
		JoinedAt: p.JoinedAt,
		Active:   p.Active,
	}
}

func (m *RoomMapper) ParticipantToModel(p *entity.RoomParticipant) *model.RoomParticipant {
	if p == nil {
		return nil
	}
	return &model.RoomParticipant{
		Id:       p.Id,
		RoomId:   p.RoomId,
		UserId:   p.UserId,
		JoinedAt: p.JoinedAt,
		Active:   p.Active,
	}
}

func (m *RoomMapper) MessageToEntity(msg *model.RoomMessage) *entity.RoomMessage {
	if msg == nil {
		return nil
	}
	return &entity.RoomMessage{
		Id:        msg.Id,
		RoomId:    msg.RoomId,
		UserId:    msg.UserId,
		Body:      msg.Body,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *RoomMapper) MessageToModel(msg *entity.RoomMessage) *model.RoomMessage {
	if msg == nil {
		return nil
	}
	return &model.RoomMessage{
		Id:        msg.Id,
		RoomId:    msg.RoomId,
		UserId:    msg.UserId,
		Body:      msg.Body,
		CreatedAt: msg.CreatedAt,
	}
}
