package service

import (
	"context"
	"strings"

	"beertally-be/pkg/events"
	pktNats "beertally-be/pkg/nats"
)

type IActivityConsumerService interface {
	Start() error
}

// activityConsumerService drains the domain event stream into the activity
// feed. One durable consumer, one row per event.
type activityConsumerService struct {
	subscriber      *pktNats.Subscriber
	activityService IActivityService
}

func NewActivityConsumerService(subscriber *pktNats.Subscriber, activityService IActivityService) IActivityConsumerService {
	return &activityConsumerService{
		subscriber:      subscriber,
		activityService: activityService,
	}
}

func (cs *activityConsumerService) Start() error {
	return cs.subscriber.Subscribe("events.>", "activity-feed", cs.handleEvent)
}

func (cs *activityConsumerService) handleEvent(ctx context.Context, event events.Event) error {
	// Subjects arrive as "events.<TYPE>"; the feed stores the bare type.
	eventType := strings.TrimPrefix(event.EventType(), "events.")
	return cs.activityService.Record(ctx, eventType, event.Payload())
}
