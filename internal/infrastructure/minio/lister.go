package minio

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"hotelmedia/internal/domain/model"
	"hotelmedia/internal/domain/repository/storage"
	"hotelmedia/pkg/metrics"
)

type Lister struct {
	minioClient *minio.Client
	cfg         *ListerConfig
}

func NewLister(minioClient *minio.Client, cfg *ListerConfig) *Lister {
	return &Lister{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// List reads every key under prefix before sorting and paging in memory, since
// S3 listings only come back in key order. Cost grows with the bucket size, which
// suits the small media buckets served here. Objects on the returned page that
// lack a content type cost one extra StatObject each.
func (l *Lister) List(ctx context.Context, bucket, prefix string,
	opts storage.ListOptions,
) (objects []model.Object, err error) {
	defer func(start time.Time) { metrics.ObserveStorage("list_objects", start, err) }(time.Now())

	ctx, cancel := withTimeout(ctx, l.cfg.Timeout)
	defer cancel()

	infos := make([]minio.ObjectInfo, 0)
	for info := range l.minioClient.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:       prefix,
		Recursive:    opts.Recursive,
		WithMetadata: true,
	}) {
		if info.Err != nil {
			return nil, classify(info.Err)
		}

		// folder placeholders
		if strings.HasSuffix(info.Key, "/") {
			continue
		}

		infos = append(infos, info)
	}

	sortInfos(infos, opts)
	infos = page(infos, opts.Offset, l.limit(opts))

	objects = make([]model.Object, 0, len(infos))
	for _, info := range infos {
		objects = append(objects, l.toObject(ctx, bucket, info))
	}

	return objects, nil
}

func (l *Lister) limit(opts storage.ListOptions) int {
	if opts.Limit > 0 {
		return opts.Limit
	}

	return l.cfg.PageLimit
}

func (l *Lister) toObject(ctx context.Context, bucket string, info minio.ObjectInfo) model.Object {
	mimeType := info.ContentType
	if mimeType == "" {
		for k, v := range info.UserMetadata {
			if strings.EqualFold(k, "content-type") {
				mimeType = v
			}
		}
	}

	if mimeType == "" {
		if stat, err := l.minioClient.StatObject(ctx, bucket, info.Key, minio.StatObjectOptions{}); err == nil {
			mimeType = stat.ContentType
		}
	}

	meta := map[string]string{
		"mimetype": mimeType,
		"size":     strconv.FormatInt(info.Size, 10),
		"etag":     info.ETag,
	}
	for k, v := range info.UserMetadata {
		if _, ok := meta[strings.ToLower(k)]; !ok {
			meta[strings.ToLower(k)] = v
		}
	}

	return model.Object{
		ID:        uuid.NewSHA1(uuid.NameSpaceURL, []byte(bucket+"/"+info.Key)).String(),
		Name:      info.Key,
		CreatedAt: info.LastModified,
		MimeType:  mimeType,
		Size:      info.Size,
		Metadata:  meta,
	}
}

func sortInfos(infos []minio.ObjectInfo, opts storage.ListOptions) {
	desc := opts.Order != storage.SortAsc

	sort.SliceStable(infos, func(i, j int) bool {
		a, b := infos[i], infos[j]
		if opts.SortBy == storage.SortByName {
			if desc {
				return a.Key > b.Key
			}

			return a.Key < b.Key
		}

		if desc {
			return a.LastModified.After(b.LastModified)
		}

		return a.LastModified.Before(b.LastModified)
	})
}

func page(infos []minio.ObjectInfo, offset, limit int) []minio.ObjectInfo {
	if offset >= len(infos) {
		return nil
	}

	if offset > 0 {
		infos = infos[offset:]
	}

	if limit > 0 && limit < len(infos) {
		infos = infos[:limit]
	}

	return infos
}
