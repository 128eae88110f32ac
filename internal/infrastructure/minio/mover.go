package minio

import (
	"context"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/minio/minio-go/v7"

	"hotelmedia/pkg/metrics"
)

type Mover struct {
	minioClient *minio.Client
	cfg         *RemoverConfig
}

func NewMover(minioClient *minio.Client, cfg *RemoverConfig) *Mover {
	return &Mover{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Move copies oldName to newName within bucket and removes the source. An existing
// destination is never overwritten.
func (m *Mover) Move(ctx context.Context, bucket, oldName, newName string) (err error) {
	defer func(start time.Time) { metrics.ObserveStorage("move", start, err) }(time.Now())

	ctx, cancel := withTimeout(ctx, m.cfg.Timeout)
	defer cancel()

	if _, err := m.minioClient.StatObject(ctx, bucket, oldName, minio.StatObjectOptions{}); err != nil {
		return classify(err)
	}

	if err := ensureAbsent(ctx, m.minioClient, bucket, newName); err != nil {
		return err
	}

	_, err = m.minioClient.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: bucket, Object: newName},
		minio.CopySrcOptions{Bucket: bucket, Object: oldName},
	)
	if err != nil {
		return classify(err)
	}

	if err := m.minioClient.RemoveObject(ctx, bucket, oldName, minio.RemoveObjectOptions{}); err != nil {
		logger.Error("moved object but failed to remove source", "bucket", bucket, "name", oldName, "err", err)

		return classify(err)
	}

	return nil
}
