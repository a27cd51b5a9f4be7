package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type ILeaderboardConsumerService interface {
	Consume(ctx context.Context) error
}

// leaderboardConsumerService keeps the Redis ZSET in step with the tallies
// table by applying the deltas published by the tally service.
type leaderboardConsumerService struct {
	pubSub *gochannel.GoChannel
	redis  *redis.Client
}

func NewLeaderboardConsumerService(pubSub *gochannel.GoChannel, redisClient *redis.Client) ILeaderboardConsumerService {
	return &leaderboardConsumerService{
		pubSub: pubSub,
		redis:  redisClient,
	}
}

func (cs *leaderboardConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, TallyTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *leaderboardConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload TallyEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal tally event: %v", err)
		msg.Ack() // invalid payloads would retry forever otherwise
		return
	}

	if cs.redis == nil {
		msg.Ack()
		return
	}

	err := cs.redis.ZIncrBy(ctx, LeaderboardKey, float64(payload.Delta), payload.UserId.String()).Err()
	if err != nil {
		log.Printf("[ERROR] Failed to update leaderboard for %s: %v", payload.UserId, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
