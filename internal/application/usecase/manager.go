package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"golang.org/x/sync/errgroup"

	"hotelmedia/internal/application/usecase/abstraction"
	"hotelmedia/internal/domain/entity"
	"hotelmedia/internal/domain/model"
	"hotelmedia/internal/domain/repository/broker"
	"hotelmedia/internal/domain/repository/storage"
	"hotelmedia/pkg/metrics"
	"hotelmedia/pkg/utils"
)

// Manager browses every bucket of the object store and applies single object mutations.
type Manager struct {
	ensurer   abstraction.BucketEnsurer
	buckets   storage.BucketLister
	lister    storage.Lister
	uploader  storage.Uploader
	mover     storage.Mover
	remover   storage.Remover
	urls      storage.URLResolver
	publisher broker.Publisher
	cfg       ManagerConfig
	now       func() time.Time
}

func NewManager(ensurer abstraction.BucketEnsurer, buckets storage.BucketLister, lister storage.Lister,
	uploader storage.Uploader, mover storage.Mover, remover storage.Remover, urls storage.URLResolver,
	publisher broker.Publisher, cfg ManagerConfig,
) *Manager {
	return &Manager{
		ensurer:   ensurer,
		buckets:   buckets,
		lister:    lister,
		uploader:  uploader,
		mover:     mover,
		remover:   remover,
		urls:      urls,
		publisher: publisher,
		cfg:       cfg.withDefaults(),
		now:       time.Now,
	}
}

// FetchMedia lists the newest objects of every bucket. A bucket that cannot be listed
// is skipped; only failing to list the buckets themselves is an error.
func (m *Manager) FetchMedia(ctx context.Context) ([]model.MediaItem, error) {
	if err := m.ensurer.EnsureBucketExists(ctx, m.cfg.DefaultBucket); err != nil {
		logger.Warn("couldn't ensure default bucket", "bucket", m.cfg.DefaultBucket, "err", err)
	}

	buckets, err := m.buckets.ListBuckets(ctx)
	if err != nil {
		return nil, asPermission(err, "listing buckets")
	}

	perBucket := make([][]model.MediaItem, len(buckets))

	var g errgroup.Group
	g.SetLimit(m.cfg.ListConcurrency)

	for i, b := range buckets {
		g.Go(func() error {
			objects, err := m.lister.List(ctx, b.Name, "", storage.ListOptions{
				Limit:  m.cfg.ListLimit,
				Offset: 0,
				SortBy: storage.SortByCreatedAt,
				Order:  storage.SortDesc,
			})
			if err != nil {
				logger.Error("failed to list bucket, skipping", "bucket", b.Name, "err", err)
				metrics.BucketSkipped()

				return nil
			}

			perBucket[i] = m.toItems(b.Name, objects)

			return nil
		})
	}

	_ = g.Wait()

	items := make([]model.MediaItem, 0)
	for _, bucketItems := range perBucket {
		items = append(items, bucketItems...)
	}

	return items, nil
}

func (m *Manager) toItems(bucket string, objects []model.Object) []model.MediaItem {
	items := make([]model.MediaItem, 0, len(objects))
	for _, o := range objects {
		items = append(items, model.MediaItem{
			Bucket:    bucket,
			ID:        o.ID,
			URL:       m.urls.PublicURL(bucket, o.Name),
			Type:      model.MediaTypeOf(o.MimeType),
			Name:      o.Name,
			Size:      o.Size,
			CreatedAt: o.CreatedAt,
			Metadata:  o.Metadata,
		})
	}

	return items
}

// Create stores file under a generated name in bucket, never overwriting.
func (m *Manager) Create(ctx context.Context, file entity.File, bucket string) (entity.UploadResult, error) {
	if bucket == "" {
		bucket = m.cfg.DefaultBucket
	}

	if err := m.ensurer.EnsureBucketExists(ctx, bucket); err != nil {
		return entity.UploadResult{}, err
	}

	name := utils.NewObjectName("", file.Name, file.ContentType, m.now())

	result, err := m.uploader.Upload(ctx, bucket, name, file.Body, file.Size, storage.UploadOptions{
		ContentType:  file.ContentType,
		CacheControl: m.cfg.CacheControl,
		Upsert:       false,
	})
	if err != nil {
		return entity.UploadResult{}, asPermission(err, "uploading "+file.Name)
	}

	return result, nil
}

func (m *Manager) Upload(ctx context.Context, file entity.File, owner string) (entity.UploadResult, error) {
	if !strings.HasPrefix(file.ContentType, "image/") && !strings.HasPrefix(file.ContentType, "video/") {
		return entity.UploadResult{}, ErrUnsupportedType
	}

	if file.Size > m.cfg.MaxFileSize {
		return entity.UploadResult{}, ErrFileTooLarge
	}

	result, err := m.Create(ctx, file, m.cfg.DefaultBucket)
	if err != nil {
		return entity.UploadResult{}, err
	}

	publishEvent(ctx, m.publisher, model.MediaEvent{
		Action: model.ActionUploaded,
		Bucket: result.Bucket,
		Name:   result.Name,
		Owner:  owner,
	})

	return result, nil
}

func (m *Manager) Delete(ctx context.Context, bucket, name, owner string) error {
	if err := m.remover.Remove(ctx, bucket, name); err != nil {
		return asPermission(err, "deleting "+name)
	}

	publishEvent(ctx, m.publisher, model.MediaEvent{
		Action: model.ActionDeleted,
		Bucket: bucket,
		Name:   name,
		Owner:  owner,
	})

	return nil
}

// Rename reports whether anything changed. Equal names are a no-op.
func (m *Manager) Rename(ctx context.Context, bucket, oldName, newName, owner string) (bool, error) {
	if oldName == newName {
		return false, nil
	}

	if newName == "" {
		return false, ErrMissingName
	}

	if err := m.mover.Move(ctx, bucket, oldName, newName); err != nil {
		return false, asPermission(err, "renaming "+oldName)
	}

	publishEvent(ctx, m.publisher, model.MediaEvent{
		Action:  model.ActionRenamed,
		Bucket:  bucket,
		Name:    oldName,
		NewName: newName,
		Owner:   owner,
	})

	return true, nil
}
