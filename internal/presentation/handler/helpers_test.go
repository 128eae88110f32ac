package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hotelmedia/internal/application/usecase"
	"hotelmedia/internal/domain/dto"
	"hotelmedia/internal/domain/entity"
	"hotelmedia/internal/domain/model"
	"hotelmedia/internal/presentation"
	"hotelmedia/internal/presentation/middleware"
	"hotelmedia/pkg/i18n"
)

const testOwner = "ops@hotel.test"

var en = i18n.Default().Localizer("en")

type mockManager struct{ mock.Mock }

func (m *mockManager) FetchMedia(ctx context.Context) ([]model.MediaItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.MediaItem)

	return items, args.Error(1)
}

func (m *mockManager) Upload(ctx context.Context, file entity.File, owner string) (entity.UploadResult, error) {
	args := m.Called(ctx, file, owner)
	res, _ := args.Get(0).(entity.UploadResult)

	return res, args.Error(1)
}

func (m *mockManager) Delete(ctx context.Context, bucket, name, owner string) error {
	return m.Called(ctx, bucket, name, owner).Error(0)
}

func (m *mockManager) Rename(ctx context.Context, bucket, oldName, newName, owner string) (bool, error) {
	args := m.Called(ctx, bucket, oldName, newName, owner)

	return args.Bool(0), args.Error(1)
}

type mockCollection struct{ mock.Mock }

func (m *mockCollection) MaxFiles() int { return 30 }

func (m *mockCollection) Get(ctx context.Context, ref model.CollectionRef) (*model.MediaCollection, error) {
	args := m.Called(ctx, ref)
	col, _ := args.Get(0).(*model.MediaCollection)

	return col, args.Error(1)
}

func (m *mockCollection) AddFiles(ctx context.Context, ref model.CollectionRef, t model.MediaType,
	files []entity.File, owner string,
) (entity.BatchResult, error) {
	args := m.Called(ctx, ref, t, files, owner)
	res, _ := args.Get(0).(entity.BatchResult)

	return res, args.Error(1)
}

func (m *mockCollection) AddURL(ctx context.Context, ref model.CollectionRef, t model.MediaType,
	raw, owner string,
) ([]string, error) {
	args := m.Called(ctx, ref, t, raw, owner)
	list, _ := args.Get(0).([]string)

	return list, args.Error(1)
}

func (m *mockCollection) Delete(ctx context.Context, ref model.CollectionRef, t model.MediaType,
	target, owner string,
) ([]string, error) {
	args := m.Called(ctx, ref, t, target, owner)
	list, _ := args.Get(0).([]string)

	return list, args.Error(1)
}

type mockCatalog struct{ mock.Mock }

func (m *mockCatalog) ListRooms(ctx context.Context) ([]model.Room, error) {
	args := m.Called(ctx)
	rooms, _ := args.Get(0).([]model.Room)

	return rooms, args.Error(1)
}

func (m *mockCatalog) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) ([]model.Room, error) {
	args := m.Called(ctx, req)
	rooms, _ := args.Get(0).([]model.Room)

	return rooms, args.Error(1)
}

type mockRevoker struct{ mock.Mock }

func (m *mockRevoker) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	return m.Called(ctx, tokenID, until).Error(0)
}

func (m *mockRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)

	return args.Bool(0), args.Error(1)
}

type testServer struct {
	echo       *echo.Echo
	manager    *mockManager
	collection *mockCollection
	catalog    *mockCatalog
	revoker    *mockRevoker
	identity   *presentation.Identity
}

// newTestServer mounts the real routes behind a stand in for the admin
// middleware that always admits testOwner.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	s := &testServer{
		echo:       echo.New(),
		manager:    &mockManager{},
		collection: &mockCollection{},
		catalog:    &mockCatalog{},
		revoker:    &mockRevoker{},
		identity: &presentation.Identity{
			Subject:   testOwner,
			TokenID:   "jti-1",
			Method:    "jwt",
			ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	admit := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(presentation.KeyIdentity, s.identity)

			return next(c)
		}
	}

	s.echo.Use(middleware.Locale(i18n.Default()))
	Register(s.echo, Handlers{
		Media:      NewMediaHandler(s.manager),
		Collection: NewCollectionHandler(s.collection),
		Nav:        NewNavHandler(usecase.NewNavigator()),
		Catalog:    NewCatalogHandler(s.catalog),
		Auth:       NewAuthHandler(s.revoker),
	}, admit)

	t.Cleanup(func() {
		s.manager.AssertExpectations(t)
		s.collection.AssertExpectations(t)
		s.catalog.AssertExpectations(t)
		s.revoker.AssertExpectations(t)
	})

	return s
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

type part struct {
	name        string
	contentType string
	body        []byte
}

func multipartRequest(t *testing.T, target, field string, parts ...part) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, p := range parts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+p.name+`"`)
		if p.contentType != "" {
			h.Set("Content-Type", p.contentType)
		}

		pw, err := w.CreatePart(h)
		require.NoError(t, err)

		_, err = pw.Write(p.body)
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &v), string(body))

	return v
}
