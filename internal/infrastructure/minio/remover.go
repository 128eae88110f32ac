package minio

import (
	"context"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/minio/minio-go/v7"

	"hotelmedia/pkg/metrics"
)

type Remover struct {
	minioClient *minio.Client
	cfg         *RemoverConfig
}

func NewRemover(minioClient *minio.Client, cfg *RemoverConfig) *Remover {
	return &Remover{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (r *Remover) Remove(ctx context.Context, bucket string, names ...string) (err error) {
	defer func(start time.Time) { metrics.ObserveStorage("remove", start, err) }(time.Now())

	ctx, cancel := withTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	for _, name := range names {
		if err := r.minioClient.RemoveObject(ctx, bucket, name, minio.RemoveObjectOptions{}); err != nil {
			logger.Error("failed to remove object", "bucket", bucket, "name", name, "err", err)

			return classify(err)
		}
	}

	return nil
}
