package broker

import (
	"context"
	"errors"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/redis/go-redis/v9"

	"hotelmedia/internal/domain/repository/broker"
)

const (
	defaultBlockTime = 5 * time.Second
	defaultBatchSize = 10
)

type Receiver struct {
	rdb       *redis.Client
	stream    string
	group     string
	blockTime time.Duration
	batchSize int64
}

func NewReceiver(client *Client, cfg ReceiverConfig) *Receiver {
	r := &Receiver{
		rdb:       client.redis,
		stream:    client.stream,
		group:     client.group,
		blockTime: defaultBlockTime,
		batchSize: defaultBatchSize,
	}

	if cfg.BlockTime > 0 {
		r.blockTime = time.Duration(cfg.BlockTime) * time.Millisecond
	}
	if cfg.BatchSize > 0 {
		r.batchSize = int64(cfg.BatchSize)
	}

	return r
}

// Messages streams new entries for consumerName until ctx is done, then closes the channel.
func (r *Receiver) Messages(ctx context.Context, consumerName string) (<-chan broker.Message, error) {
	if r.rdb == nil {
		return nil, errors.New("redis not initialized")
	}

	out := make(chan broker.Message)
	go r.consume(ctx, out, consumerName)

	return out, nil
}

func (r *Receiver) consume(ctx context.Context, out chan<- broker.Message, consumerName string) {
	defer close(out)

	for ctx.Err() == nil {
		if err := r.readBatch(ctx, out, consumerName); err != nil {
			logger.Error("couldn't read media events", "consumer", consumerName, "err", err)

			select {
			case <-ctx.Done():
			case <-time.After(r.blockTime):
			}
		}
	}

	logger.Info("stopped receiving media events", "consumer", consumerName)
}

func (r *Receiver) readBatch(ctx context.Context, out chan<- broker.Message, consumerName string) error {
	streams, err := r.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    r.group,
		Consumer: consumerName,
		Streams:  []string{r.stream, ">"},
		Count:    r.batchSize,
		Block:    r.blockTime,
	}).Result()
	if errors.Is(err, redis.Nil) || ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return err
	}

	for _, s := range streams {
		for _, m := range s.Messages {
			entry := &StreamEntry{id: m.ID, stream: r.stream, group: r.group, rdb: r.rdb}

			body, ok := m.Values[bodyField].(string)
			if !ok {
				// Nobody can decode it, so keep it out of the pending list.
				logger.Warn("acking media event without body", "id", m.ID)
				_ = entry.Ack()

				continue
			}

			entry.body = body

			select {
			case out <- entry:
			case <-ctx.Done():
				return nil
			}
		}
	}

	return nil
}
