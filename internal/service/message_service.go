package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"beertally-be/internal/config"
	"beertally-be/internal/dto"
	"beertally-be/internal/entity"
	"beertally-be/internal/repository/specification"
	"beertally-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IMessageService interface {
	// Append validates and persists a message. The body is trimmed; an empty
	// result or one over the configured length is rejected.
	Append(ctx context.Context, roomId, userId uuid.UUID, body string) (*dto.MessageResponse, error)

	// Recent returns the last limit messages oldest-first. A non-positive
	// limit falls back to the configured history window.
	Recent(ctx context.Context, roomId uuid.UUID, limit int) ([]dto.MessageResponse, error)
}

type messageService struct {
	uowFactory unitofwork.RepositoryFactory
	chatCfg    config.ChatConfig
}

func NewMessageService(uowFactory unitofwork.RepositoryFactory, chatCfg config.ChatConfig) IMessageService {
	return &messageService{
		uowFactory: uowFactory,
		chatCfg:    chatCfg,
	}
}

func (s *messageService) Append(ctx context.Context, roomId, userId uuid.UUID, body string) (*dto.MessageResponse, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(body) > s.chatCfg.MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}

	message := &entity.RoomMessage{
		Id:     uuid.New(),
		RoomId: roomId,
		UserId: userId,
		Body:   body,
	}
	if user != nil {
		message.AuthorName = user.DisplayName
	}

	if err := uow.MessageRepository().Create(ctx, message); err != nil {
		return nil, err
	}

	res := toMessageResponse(message)
	return &res, nil
}

func (s *messageService) Recent(ctx context.Context, roomId uuid.UUID, limit int) ([]dto.MessageResponse, error) {
	if limit <= 0 || limit > s.chatCfg.HistoryLimit {
		limit = s.chatCfg.HistoryLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.MessageRepository().FindRecent(ctx, roomId, limit)
	if err != nil {
		return nil, err
	}

	res := make([]dto.MessageResponse, len(messages))
	for i, m := range messages {
		res[i] = toMessageResponse(m)
	}
	return res, nil
}

func toMessageResponse(m *entity.RoomMessage) dto.MessageResponse {
	return dto.MessageResponse{
		Id:         m.Id,
		UserId:     m.UserId,
		AuthorName: m.AuthorName,
		Body:       m.Body,
		CreatedAt:  m.CreatedAt,
	}
}
