package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "revoked:"

// Revoker keeps a denylist of token ids that expires alongside the tokens themselves.
type Revoker struct {
	redis   *redis.Client
	timeout time.Duration
}

type Config struct {
	Timeout int `yaml:"timeout_in_ms"`
}

func NewRevoker(rdb *redis.Client, cfg Config) *Revoker {
	return &Revoker{
		redis:   rdb,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

func (r *Revoker) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.redis.Set(ctx, keyPrefix+tokenID, 1, ttl).Err()
}

func (r *Revoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.redis.Get(ctx, keyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (r *Revoker) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, r.timeout)
}
