package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"hotelmedia/internal/domain/entity"
	"hotelmedia/internal/domain/model"
	"hotelmedia/internal/domain/repository/broker"
	"hotelmedia/internal/domain/repository/storage"
)

type fakeBuckets struct {
	mu        sync.Mutex
	buckets   []model.Bucket
	listErr   error
	createErr error
	created   []string
}

func (f *fakeBuckets) ListBuckets(context.Context) ([]model.Bucket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}

	return append([]model.Bucket(nil), f.buckets...), nil
}

func (f *fakeBuckets) CreateBucket(_ context.Context, name string, _ model.BucketPolicy) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.created = append(f.created, name)
	if f.createErr != nil {
		return f.createErr
	}

	f.buckets = append(f.buckets, model.Bucket{Name: name})

	return nil
}

type fakeLister struct {
	mu      sync.Mutex
	objects map[string][]model.Object
	errs    map[string]error
	opts    []storage.ListOptions
}

func (f *fakeLister) List(_ context.Context, bucket, _ string, opts storage.ListOptions) ([]model.Object, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.opts = append(f.opts, opts)
	if err := f.errs[bucket]; err != nil {
		return nil, err
	}

	return f.objects[bucket], nil
}

type upload struct {
	bucket string
	name   string
	body   string
	opts   storage.UploadOptions
}

type fakeUploader struct {
	uploads []upload
	// failOn fails uploads whose original body matches.
	failOn map[string]error
}

func (f *fakeUploader) Upload(_ context.Context, bucket, name string, body io.Reader, size int64,
	opts storage.UploadOptions,
) (entity.UploadResult, error) {
	data, _ := io.ReadAll(body)
	if err := f.failOn[string(data)]; err != nil {
		return entity.UploadResult{}, err
	}

	f.uploads = append(f.uploads, upload{bucket: bucket, name: name, body: string(data), opts: opts})

	return entity.UploadResult{
		Bucket:   bucket,
		Name:     name,
		Location: fakeURLs{}.PublicURL(bucket, name),
		Type:     opts.ContentType,
		Size:     size,
	}, nil
}

type fakeMover struct {
	calls int
	err   error
}

func (f *fakeMover) Move(context.Context, string, string, string) error {
	f.calls++

	return f.err
}

type fakeRemover struct {
	removed []string
	err     error
}

func (f *fakeRemover) Remove(_ context.Context, bucket string, names ...string) error {
	if f.err != nil {
		return f.err
	}

	for _, n := range names {
		f.removed = append(f.removed, bucket+"/"+n)
	}

	return nil
}

type fakeURLs struct{}

func (fakeURLs) PublicURL(bucket, name string) string {
	return "https://cdn.test/" + bucket + "/" + name
}

func (fakeURLs) ObjectName(bucket, url string) (string, bool) {
	marker := "/" + bucket + "/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return "", false
	}

	return url[idx+len(marker):], true
}

type fakePublisher struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (f *fakePublisher) Publish(_ context.Context, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	f.messages = append(f.messages, message)

	return nil
}

type fakeCollections struct {
	colls    map[string]*model.MediaCollection
	writes   int
	getErr   error
	writeErr error
}

func newFakeCollections() *fakeCollections {
	return &fakeCollections{colls: map[string]*model.MediaCollection{}}
}

func (f *fakeCollections) GetCollection(_ context.Context, ref model.CollectionRef) (*model.MediaCollection, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	c, ok := f.colls[ref.Key()]
	if !ok {
		return model.NewMediaCollection(ref), nil
	}

	cp := *c
	cp.Images = append([]string{}, c.Images...)
	cp.Videos = append([]string{}, c.Videos...)

	return &cp, nil
}

func (f *fakeCollections) ReplaceList(_ context.Context, ref model.CollectionRef, t model.MediaType,
	urls []string,
) error {
	if f.writeErr != nil {
		return f.writeErr
	}

	f.writes++

	c, ok := f.colls[ref.Key()]
	if !ok {
		c = model.NewMediaCollection(ref)
		f.colls[ref.Key()] = c
	}

	if t == model.MediaVideo {
		c.Videos = append([]string{}, urls...)
	} else {
		c.Images = append([]string{}, urls...)
	}

	return nil
}

type fakeRooms struct {
	rooms []model.Room
	err   error
}

func (f *fakeRooms) ListRooms(context.Context) ([]model.Room, error) {
	return f.rooms, f.err
}

type fakeBookings struct {
	written []*model.BookingRequest
	err     error
}

func (f *fakeBookings) WriteBookingRequest(_ context.Context, req *model.BookingRequest) error {
	if f.err != nil {
		return f.err
	}

	f.written = append(f.written, req)

	return nil
}

type fakeMessage struct {
	id    string
	body  string
	acked bool
}

func (m *fakeMessage) ID() string   { return m.id }
func (m *fakeMessage) Body() string { return m.body }
func (m *fakeMessage) Nack() error  { return nil }

func (m *fakeMessage) Ack() error {
	m.acked = true

	return nil
}

type fakeReceiver struct {
	messages []*fakeMessage
	err      error
}

func (f *fakeReceiver) Messages(context.Context, string) (<-chan broker.Message, error) {
	if f.err != nil {
		return nil, f.err
	}

	ch := make(chan broker.Message, len(f.messages))
	for _, m := range f.messages {
		ch <- m
	}
	close(ch)

	return ch, nil
}

var errBoom = errors.New("boom")
