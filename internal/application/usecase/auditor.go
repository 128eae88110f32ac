package usecase

import (
	"context"
	"encoding/json"

	"github.com/dezh-tech/immortal/pkg/logger"

	"hotelmedia/internal/domain/model"
	"hotelmedia/internal/domain/repository/broker"
)

// Auditor writes every media event from the broker to the log.
type Auditor struct {
	receiver broker.Receiver
	consumer string
}

func NewAuditor(receiver broker.Receiver, consumer string) *Auditor {
	return &Auditor{
		receiver: receiver,
		consumer: consumer,
	}
}

// Run blocks until ctx is done and returns the number of events it handled.
func (a *Auditor) Run(ctx context.Context) (int, error) {
	messages, err := a.receiver.Messages(ctx, a.consumer)
	if err != nil {
		return 0, err
	}

	handled := 0
	for msg := range messages {
		var event model.MediaEvent
		if err := json.Unmarshal([]byte(msg.Body()), &event); err != nil {
			logger.Warn("dropping malformed media event", "id", msg.ID(), "err", err)
		} else {
			logger.Info("media event",
				"action", event.Action,
				"bucket", event.Bucket,
				"name", event.Name,
				"new_name", event.NewName,
				"owner", event.Owner,
				"at", event.At)
			handled++
		}

		if err := msg.Ack(); err != nil {
			logger.Error("failed to ack media event", "id", msg.ID(), "err", err)
		}
	}

	return handled, nil
}
