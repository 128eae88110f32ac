package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/minio/minio-go/v7"

	"hotelmedia/internal/domain/entity"
	"hotelmedia/internal/domain/repository/storage"
	"hotelmedia/pkg/metrics"
	"hotelmedia/pkg/utils"
)

type Uploader struct {
	minioClient *minio.Client
	urls        *URLResolver
	cfg         *UploaderConfig
}

func NewUploader(minioClient *minio.Client, urls *URLResolver, config *UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		urls:        urls,
		cfg:         config,
	}
}

func (u *Uploader) Upload(ctx context.Context, bucket, name string, body io.Reader, size int64,
	opts storage.UploadOptions,
) (result entity.UploadResult, err error) {
	defer func(start time.Time) { metrics.ObserveStorage("upload", start, err) }(time.Now())

	ctx, cancel := withTimeout(ctx, u.cfg.Timeout)
	defer cancel()

	if !opts.Upsert {
		if err := ensureAbsent(ctx, u.minioClient, bucket, name); err != nil {
			return entity.UploadResult{}, err
		}
	}

	contentType := opts.ContentType
	if contentType == "" {
		contentType, body, err = utils.SniffContentType(body)
		if err != nil {
			return entity.UploadResult{}, fmt.Errorf("read error: %w", err)
		}
	}

	cacheControl := opts.CacheControl
	if cacheControl == "" {
		cacheControl = u.cfg.CacheControl
	}

	info, err := u.minioClient.PutObject(ctx, bucket, name, body, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: cacheControl,
	})
	if err != nil {
		logger.Error("failed to upload object", "bucket", bucket, "name", name, "err", err)

		return entity.UploadResult{}, classify(err)
	}

	return entity.UploadResult{
		Bucket:   bucket,
		Name:     name,
		Location: u.urls.PublicURL(bucket, name),
		Type:     contentType,
		Size:     info.Size,
	}, nil
}

func ensureAbsent(ctx context.Context, client *minio.Client, bucket, name string) error {
	_, err := client.StatObject(ctx, bucket, name, minio.StatObjectOptions{})
	if err == nil {
		return fmt.Errorf("%w: %s/%s", storage.ErrObjectExists, bucket, name)
	}

	if err := classify(err); !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	return nil
}
