package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"

	"hotelmedia/internal/domain/model"
	"hotelmedia/internal/domain/repository/broker"
)

// publishEvent announces a completed mutation. Failures never reach the caller.
func publishEvent(ctx context.Context, publisher broker.Publisher, event model.MediaEvent) {
	if publisher == nil {
		return
	}

	event.At = time.Now().UTC()

	body, err := json.Marshal(event)
	if err != nil {
		logger.Error("failed to encode media event", "err", err)

		return
	}

	if err := publisher.Publish(ctx, string(body)); err != nil {
		logger.Error("failed to publish media event", "action", event.Action, "err", err)
	}
}
