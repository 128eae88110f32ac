package broker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// bodyField is the stream entry field carrying the JSON encoded event.
const bodyField = "body"

const ackTimeout = 2 * time.Second

// StreamEntry is one media event read through the consumer group.
type StreamEntry struct {
	id     string
	body   string
	stream string
	group  string
	rdb    *redis.Client
}

func (e *StreamEntry) ID() string {
	return e.id
}

func (e *StreamEntry) Body() string {
	return e.body
}

func (e *StreamEntry) Ack() error {
	ctx, cancel := context.WithTimeout(context.Background(), ackTimeout)
	defer cancel()

	return e.rdb.XAck(ctx, e.stream, e.group, e.id).Err()
}

// Nack leaves the entry in the pending list so it can be claimed again.
func (e *StreamEntry) Nack() error {
	return nil
}
