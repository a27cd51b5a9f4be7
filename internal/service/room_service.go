package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"beertally-be/internal/config"
	"beertally-be/internal/dto"
	"beertally-be/internal/entity"
	"beertally-be/internal/repository/specification"
	"beertally-be/internal/repository/unitofwork"
	"beertally-be/pkg/events"
	pktNats "beertally-be/pkg/nats"

	"github.com/google/uuid"
)

// roomCodeAlphabet excludes nothing; ambiguous glyphs are acceptable since
// codes are always shown uppercase in a monospace context.
const roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type IRoomService interface {
	CreateRoom(ctx context.Context, userId uuid.UUID, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)

	// FindByCode resolves an active room case-insensitively.
	FindByCode(ctx context.Context, code string) (*dto.RoomResponse, error)

	// Join is idempotent: an existing membership is reactivated, a new one is
	// created with the current time. JoinedAt is never rewritten.
	Join(ctx context.Context, code string, userId uuid.UUID) (*dto.RoomResponse, error)

	// Leave flips the active flag. Leaving a room twice is a no-op.
	Leave(ctx context.Context, roomId, userId uuid.UUID) error

	Participants(ctx context.Context, roomId uuid.UUID) ([]dto.ParticipantResponse, error)
}

type roomService struct {
	uowFactory     unitofwork.RepositoryFactory
	chatCfg        config.ChatConfig
	eventPublisher *pktNats.Publisher
}

func NewRoomService(
	uowFactory unitofwork.RepositoryFactory,
	chatCfg config.ChatConfig,
	eventPublisher *pktNats.Publisher,
) IRoomService {
	return &roomService{
		uowFactory:     uowFactory,
		chatCfg:        chatCfg,
		eventPublisher: eventPublisher,
	}
}

func (s *roomService) CreateRoom(ctx context.Context, userId uuid.UUID, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrRoomNameRequired
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.RoomRepository()

	code, err := s.allocateCode(ctx, uow)
	if err != nil {
		return nil, err
	}

	room := &entity.Room{
		Id:            uuid.New(),
		Code:          code,
		DisplayName:   name,
		CreatorUserId: userId,
		Active:        true,
	}
	if err := repo.Create(ctx, room); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "ROOM_CREATED", map[string]interface{}{
		"room_id":      room.Id,
		"code":         room.Code,
		"display_name": room.DisplayName,
		"creator_id":   userId,
	})

	res := toRoomResponse(room)
	return &res, nil
}

// allocateCode draws random codes until one is free, bounded by the
// configured attempt count.
func (s *roomService) allocateCode(ctx context.Context, uow unitofwork.UnitOfWork) (string, error) {
	repo := uow.RoomRepository()
	for i := 0; i < s.chatCfg.RoomCodeAttempts; i++ {
		code, err := randomCode(s.chatCfg.RoomCodeLength)
		if err != nil {
			return "", err
		}
		exists, err := repo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCodeSpaceExhausted
}

func (s *roomService) FindByCode(ctx context.Context, code string) (*dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	room, err := uow.RoomRepository().FindOne(ctx,
		specification.ByRoomCode{Code: code},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	res := toRoomResponse(room)
	return &res, nil
}

func (s *roomService) Join(ctx context.Context, code string, userId uuid.UUID) (*dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	room, err := uow.RoomRepository().FindOne(ctx,
		specification.ByRoomCode{Code: code},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	participants := uow.ParticipantRepository()
	existing, err := participants.FindByRoomAndUser(ctx, room.Id, userId)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if !existing.Active {
			if err := participants.SetActive(ctx, existing.Id, true); err != nil {
				return nil, err
			}
		}
	} else {
		membership := &entity.RoomParticipant{
			Id:       uuid.New(),
			RoomId:   room.Id,
			UserId:   userId,
			JoinedAt: time.Now(),
			Active:   true,
		}
		if err := participants.Create(ctx, membership); err != nil {
			return nil, err
		}
	}

	res := toRoomResponse(room)
	return &res, nil
}

func (s *roomService) Leave(ctx context.Context, roomId, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	participants := uow.ParticipantRepository()

	membership, err := participants.FindByRoomAndUser(ctx, roomId, userId)
	if err != nil {
		return err
	}
	if membership == nil || !membership.Active {
		return nil
	}
	return participants.SetActive(ctx, membership.Id, false)
}

func (s *roomService) Participants(ctx context.Context, roomId uuid.UUID) ([]dto.ParticipantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	roster, err := uow.ParticipantRepository().ListActive(ctx, roomId)
	if err != nil {
		return nil, err
	}

	res := make([]dto.ParticipantResponse, len(roster))
	for i, p := range roster {
		res[i] = dto.ParticipantResponse{
			UserId:      p.UserId,
			DisplayName: p.DisplayName,
			JoinedAt:    p.JoinedAt,
		}
	}
	return res, nil
}

func (s *roomService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func toRoomResponse(room *entity.Room) dto.RoomResponse {
	return dto.RoomResponse{
		Id:          room.Id,
		Code:        room.Code,
		DisplayName: room.DisplayName,
		CreatedAt:   room.CreatedAt,
	}
}

func randomCode(length int) (string, error) {
	// 256 is not a multiple of the alphabet size; bytes past the last full
	// multiple are redrawn so every character is equally likely.
	limit := 256 - 256%len(roomCodeAlphabet)
	code := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(code) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			code = append(code, roomCodeAlphabet[int(b)%len(roomCodeAlphabet)])
			if len(code) == length {
				break
			}
		}
	}
	return string(code), nil
}
