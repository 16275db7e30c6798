package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"mightyops-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumerInvalidatesStatsCache(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	statsCache := gocache.New(time.Minute, time.Minute)
	statsCache.Set(statsCacheKey("notes"), &dto.StatsResponse{Total: 3}, gocache.DefaultExpiration)

	consumer := NewConsumerService(pubSub, "record-events-test", statsCache, nil)
	require.NoError(t, consumer.Consume(context.Background()))

	publisher := NewPublisherService("record-events-test", pubSub)
	payload, err := json.Marshal(dto.RecordEventMessage{
		Action: dto.RecordActionCreated,
		Form:   "notes",
		Ids:    []int{42},
	})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(context.Background(), payload))

	assert.Eventually(t, func() bool {
		_, found := statsCache.Get(statsCacheKey("notes"))
		return !found
	}, time.Second, 10*time.Millisecond)
}

func TestConsumerSurvivesMalformedPayload(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	statsCache := gocache.New(time.Minute, time.Minute)

	consumer := NewConsumerService(pubSub, "record-events-test", statsCache, nil)
	require.NoError(t, consumer.Consume(context.Background()))

	publisher := NewPublisherService("record-events-test", pubSub)
	require.NoError(t, publisher.Publish(context.Background(), []byte("not json")))

	// A valid message after the bad one still gets processed.
	statsCache.Set(statsCacheKey("evaluations"), &dto.StatsResponse{Total: 1}, gocache.DefaultExpiration)
	payload, err := json.Marshal(dto.RecordEventMessage{
		Action: dto.RecordActionDeleted,
		Form:   "evaluations",
		Ids:    []int{1, 2},
	})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(context.Background(), payload))

	assert.Eventually(t, func() bool {
		_, found := statsCache.Get(statsCacheKey("evaluations"))
		return !found
	}, time.Second, 10*time.Millisecond)
}
