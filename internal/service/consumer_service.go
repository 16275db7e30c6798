package service

import (
	"context"
	"encoding/json"
	"log"

	"mightyops-be/internal/dto"
	"mightyops-be/pkg/events"
	pktNats "mightyops-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains record events off the in-process bus. Each
// event drops the form's cached stats and, when NATS is configured,
// mirrors the change onto the audit stream.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	statsCache     *gocache.Cache
	eventPublisher *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	statsCache *gocache.Cache,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		statsCache:     statsCache,
		eventPublisher: eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
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

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.RecordEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal record event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.statsCache.Delete(statsCacheKey(payload.Form))

	if cs.eventPublisher != nil {
		var evt events.Event
		switch payload.Action {
		case dto.RecordActionCreated:
			id := 0
			if len(payload.Ids) > 0 {
				id = payload.Ids[0]
			}
			evt = events.NewRecordCreated(payload.Form, id)
		case dto.RecordActionDeleted:
			evt = events.NewRecordsDeleted(payload.Form, payload.Ids)
		default:
			log.Printf("[WARN] Unknown record event action %q", payload.Action)
			msg.Ack()
			return
		}

		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to mirror %s event to audit stream: %v", payload.Action, err)
		}
	}

	msg.Ack()
}
