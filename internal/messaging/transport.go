package messaging

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

// Transport pairs the publisher and subscriber of one message backend.
type Transport struct {
	Publisher  message.Publisher
	Subscriber message.Subscriber
}

// NewInProcessTransport delivers messages between goroutines of this process.
// Messages published while nobody is subscribed are dropped.
func NewInProcessTransport(logger watermill.LoggerAdapter) *Transport {
	ch := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, logger)

	return &Transport{
		Publisher:  ch,
		Subscriber: ch,
	}
}

// NewRedisStreamTransport delivers messages over Redis streams, consumed by
// consumerGroup.
func NewRedisStreamTransport(
	client redis.UniversalClient,
	consumerGroup string,
	logger watermill.LoggerAdapter,
) (*Transport, error) {
	publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: client,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create redis stream publisher: %w", err)
	}

	subscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
		Client:        client,
		ConsumerGroup: consumerGroup,
	}, logger)
	if err != nil {
		_ = publisher.Close()

		return nil, fmt.Errorf("create redis stream subscriber: %w", err)
	}

	return &Transport{
		Publisher:  publisher,
		Subscriber: subscriber,
	}, nil
}
