package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"beertally-be/internal/dto"
	"beertally-be/internal/entity"
	"beertally-be/internal/repository/unitofwork"
	"beertally-be/pkg/events"
	pktNats "beertally-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// TallyTopic is the in-process queue feeding the leaderboard consumer.
const TallyTopic = "tally-events"

// TallyEventMessage is the watermill payload. Delta is +1 on record and -1 on
// delete-last so the leaderboard cache stays in sync without recounting.
type TallyEventMessage struct {
	UserId uuid.UUID `json:"user_id"`
	Delta  int       `json:"delta"`
}

type ITallyService interface {
	Record(ctx context.Context, userId uuid.UUID) (*dto.TallyResponse, error)

	// DeleteLast removes the most recent tally of the user.
	DeleteLast(ctx context.Context, userId uuid.UUID) (*dto.TallyResponse, error)

	// MyCounts returns the lifetime total and the count since local midnight.
	MyCounts(ctx context.Context, userId uuid.UUID) (*dto.TallyCountResponse, error)
}

type tallyService struct {
	uowFactory     unitofwork.RepositoryFactory
	pubSub         *gochannel.GoChannel
	eventPublisher *pktNats.Publisher
}

func NewTallyService(
	uowFactory unitofwork.RepositoryFactory,
	pubSub *gochannel.GoChannel,
	eventPublisher *pktNats.Publisher,
) ITallyService {
	return &tallyService{
		uowFactory:     uowFactory,
		pubSub:         pubSub,
		eventPublisher: eventPublisher,
	}
}

func (s *tallyService) Record(ctx context.Context, userId uuid.UUID) (*dto.TallyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tally := &entity.Tally{
		Id:     uuid.New(),
		UserId: userId,
	}
	if err := uow.TallyRepository().Create(ctx, tally); err != nil {
		return nil, err
	}

	s.publishDelta(userId, 1)
	s.publishEvent(ctx, "TALLY_RECORDED", map[string]interface{}{
		"tally_id": tally.Id,
		"user_id":  userId,
	})

	return &dto.TallyResponse{Id: tally.Id, CreatedAt: tally.CreatedAt}, nil
}

func (s *tallyService) DeleteLast(ctx context.Context, userId uuid.UUID) (*dto.TallyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deleted, err := uow.TallyRepository().DeleteLast(ctx, userId)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, ErrNoTallies
	}

	s.publishDelta(userId, -1)

	return &dto.TallyResponse{Id: deleted.Id, CreatedAt: deleted.CreatedAt}, nil
}

func (s *tallyService) MyCounts(ctx context.Context, userId uuid.UUID) (*dto.TallyCountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.TallyRepository()

	total, err := repo.CountByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := repo.CountByUserSince(ctx, userId, midnight)
	if err != nil {
		return nil, err
	}

	return &dto.TallyCountResponse{Total: total, Today: today}, nil
}

func (s *tallyService) publishDelta(userId uuid.UUID, delta int) {
	if s.pubSub == nil {
		return
	}
	payload, err := json.Marshal(TallyEventMessage{UserId: userId, Delta: delta})
	if err != nil {
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(TallyTopic, msg); err != nil {
		fmt.Printf("[WARN] Failed to publish tally delta: %v\n", err)
	}
}

func (s *tallyService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
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
