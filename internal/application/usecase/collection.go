package usecase

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"

	"hotelmedia/internal/application/usecase/abstraction"
	"hotelmedia/internal/domain/entity"
	"hotelmedia/internal/domain/model"
	"hotelmedia/internal/domain/repository/broker"
	"hotelmedia/internal/domain/repository/database"
	"hotelmedia/internal/domain/repository/storage"
	"hotelmedia/pkg/utils"
)

var allowedTypes = map[model.MediaType][]string{
	model.MediaImage: {"image/jpeg", "image/png", "image/webp", "image/gif"},
	model.MediaVideo: {"video/mp4", "video/webm", "video/quicktime"},
}

// Collection maintains the ordered image and video URL lists of a service or gallery entry.
type Collection struct {
	retriever database.CollectionRetriever
	writer    database.CollectionWriter
	ensurer   abstraction.BucketEnsurer
	uploader  storage.Uploader
	remover   storage.Remover
	urls      storage.URLResolver
	publisher broker.Publisher
	cfg       CollectionConfig
	now       func() time.Time
}

func NewCollection(retriever database.CollectionRetriever, writer database.CollectionWriter,
	ensurer abstraction.BucketEnsurer, uploader storage.Uploader, remover storage.Remover,
	urls storage.URLResolver, publisher broker.Publisher, cfg CollectionConfig,
) *Collection {
	return &Collection{
		retriever: retriever,
		writer:    writer,
		ensurer:   ensurer,
		uploader:  uploader,
		remover:   remover,
		urls:      urls,
		publisher: publisher,
		cfg:       cfg.withDefaults(),
		now:       time.Now,
	}
}

func (c *Collection) MaxFiles() int {
	return c.cfg.MaxFiles
}

func (c *Collection) Get(ctx context.Context, ref model.CollectionRef) (*model.MediaCollection, error) {
	return c.retriever.GetCollection(ctx, ref)
}

// AddFiles uploads files into the list of type t. The batch is checked as a whole
// before anything is uploaded; files failing during upload are skipped.
func (c *Collection) AddFiles(ctx context.Context, ref model.CollectionRef, t model.MediaType,
	files []entity.File, owner string,
) (entity.BatchResult, error) {
	if len(files) == 0 {
		return entity.BatchResult{}, ErrUploadFailed
	}

	current, err := c.retriever.GetCollection(ctx, ref)
	if err != nil {
		return entity.BatchResult{}, err
	}

	list := current.List(t)
	if len(list)+len(files) > c.cfg.MaxFiles {
		return entity.BatchResult{List: list}, &TooManyFilesError{Type: t, Max: c.cfg.MaxFiles}
	}

	if err := c.validate(t, files); err != nil {
		return entity.BatchResult{List: list}, err
	}

	bucket := ref.Kind.Bucket()
	if err := c.ensurer.EnsureBucketExists(ctx, bucket); err != nil {
		return entity.BatchResult{List: list}, err
	}

	result := entity.BatchResult{Uploaded: make([]string, 0, len(files))}

	var lastErr error
	for _, f := range files {
		name := utils.NewObjectName(ref.EntityID, f.Name, f.ContentType, c.now())

		uploaded, err := c.uploader.Upload(ctx, bucket, name, f.Body, f.Size, storage.UploadOptions{
			ContentType:  f.ContentType,
			CacheControl: c.cfg.CacheControl,
			Upsert:       false,
		})
		if err != nil {
			logger.Error("failed to upload collection file", "collection", ref.Key(), "file", f.Name, "err", err)
			result.Failed++
			lastErr = err

			continue
		}

		result.Uploaded = append(result.Uploaded, uploaded.Location)
	}

	if len(result.Uploaded) == 0 {
		result.List = list

		return result, fmt.Errorf("%w: %w", ErrUploadFailed, asPermission(lastErr, "uploading files"))
	}

	next := append(slices.Clone(list), result.Uploaded...)
	if err := c.writer.ReplaceList(ctx, ref, t, next); err != nil {
		logger.Error("uploaded files but couldn't store the list", "collection", ref.Key(),
			"urls", result.Uploaded, "err", err)
		result.List = list

		return result, err
	}

	result.List = next
	c.changed(ctx, ref, owner)

	return result, nil
}

// validate resolves missing content types from file contents and rejects the batch
// if any file has a disallowed type or is over the size ceiling for t.
func (c *Collection) validate(t model.MediaType, files []entity.File) error {
	for i := range files {
		ct := normalizeContentType(files[i].ContentType)
		if ct == "" || ct == "application/octet-stream" {
			sniffed, body, err := utils.SniffContentType(files[i].Body)
			if err != nil {
				return fmt.Errorf("couldn't read %s: %w", files[i].Name, err)
			}

			ct = normalizeContentType(sniffed)
			files[i].Body = body
		}

		files[i].ContentType = ct
	}

	for _, f := range files {
		if !slices.Contains(allowedTypes[t], f.ContentType) {
			return &InvalidFileTypeError{Type: t, Name: f.Name, MimeType: f.ContentType}
		}
	}

	limit := c.sizeLimit(t)
	for _, f := range files {
		if f.Size > limit {
			return &FileTooLargeError{Type: t, Name: f.Name, Limit: limit}
		}
	}

	return nil
}

func (c *Collection) sizeLimit(t model.MediaType) int64 {
	if t == model.MediaVideo {
		return c.cfg.MaxVideoSize
	}

	return c.cfg.MaxImageSize
}

func normalizeContentType(ct string) string {
	if ct == "" {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(ct))
	}

	return mediaType
}

// AddURL appends an externally hosted URL to the list of type t without fetching it.
func (c *Collection) AddURL(ctx context.Context, ref model.CollectionRef, t model.MediaType,
	raw, owner string,
) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyURL
	}

	if !isAbsoluteURL(raw) {
		return nil, ErrInvalidURL
	}

	current, err := c.retriever.GetCollection(ctx, ref)
	if err != nil {
		return nil, err
	}

	list := current.List(t)
	if len(list) >= c.cfg.MaxFiles {
		return list, &TooManyFilesError{Type: t, Max: c.cfg.MaxFiles}
	}

	next := append(slices.Clone(list), raw)
	if err := c.writer.ReplaceList(ctx, ref, t, next); err != nil {
		return list, err
	}

	c.changed(ctx, ref, owner)

	return next, nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}

// Delete drops target from the list of type t. target must be in that list.
// Objects stored in this collection's bucket are removed first; if that fails
// the list is left as is.
func (c *Collection) Delete(ctx context.Context, ref model.CollectionRef, t model.MediaType,
	target, owner string,
) ([]string, error) {
	current, err := c.retriever.GetCollection(ctx, ref)
	if err != nil {
		return nil, err
	}

	list := current.List(t)
	if !slices.Contains(list, target) {
		return list, fmt.Errorf("%s is not in the %s list of %s: %w", target, t, ref.Key(), storage.ErrNotFound)
	}

	bucket := ref.Kind.Bucket()

	if strings.Contains(target, bucket) {
		name, ok := c.urls.ObjectName(bucket, target)
		if ok {
			if err := c.remover.Remove(ctx, bucket, name); err != nil {
				return list, asPermission(err, "deleting "+name)
			}
		} else {
			logger.Warn("couldn't derive object name, removing url only", "url", target)
		}
	}

	next := slices.DeleteFunc(slices.Clone(list), func(u string) bool { return u == target })
	if err := c.writer.ReplaceList(ctx, ref, t, next); err != nil {
		return list, err
	}

	c.changed(ctx, ref, owner)

	return next, nil
}

func (c *Collection) changed(ctx context.Context, ref model.CollectionRef, owner string) {
	publishEvent(ctx, c.publisher, model.MediaEvent{
		Action: model.ActionCollectionChanged,
		Bucket: ref.Kind.Bucket(),
		Name:   ref.Key(),
		Owner:  owner,
	})
}
