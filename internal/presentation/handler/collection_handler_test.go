package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotelmedia/internal/application/usecase"
	"hotelmedia/internal/domain/dto"
	"hotelmedia/internal/domain/entity"
	"hotelmedia/internal/domain/model"
	"hotelmedia/internal/domain/repository/storage"
	"hotelmedia/pkg/i18n"
)

var spaRef = model.CollectionRef{Kind: model.KindService, EntityID: "spa"}

func TestCollectionGet(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	col := model.NewMediaCollection(spaRef)
	col.Images = []string{"https://cdn.test/service-media/spa/1.png"}
	s.collection.On("Get", mock.Anything, spaRef).Return(col, nil).Once()

	rec := s.do(httptest.NewRequest(http.MethodGet, "/admin/collections/service/spa", http.NoBody))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decode[dto.CollectionResponse](t, rec)
	assert.Equal(t, 30, resp.MaxFiles)
	assert.Equal(t, col.Images, *resp.Images)
	assert.Empty(t, *resp.Videos)
}

func TestCollectionRouteValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		method      string
		target      string
		expectedKey i18n.Key
	}{
		{"unknown kind on read", http.MethodGet, "/admin/collections/suite/1", i18n.UploaderUnknownKind},
		{"unknown kind on delete", http.MethodDelete, "/admin/collections/suite/1/images?url=x", i18n.UploaderUnknownKind},
		{"unknown type", http.MethodDelete, "/admin/collections/gallery/1/audio?url=x", i18n.UploaderUnknownType},
		{"missing url", http.MethodDelete, "/admin/collections/gallery/1/images", i18n.UploaderEnterValidURL},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := newTestServer(t)

			rec := s.do(httptest.NewRequest(tc.method, tc.target, http.NoBody))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, en.T(tc.expectedKey), decode[dto.Notice](t, rec).Description)
		})
	}
}

func TestCollectionAddFiles(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	twoFiles := mock.MatchedBy(func(files []entity.File) bool {
		return len(files) == 2 && files[0].Name == "a.png" && files[1].Name == "b.jpg"
	})
	list := []string{"https://cdn.test/service-media/spa/a.png", "https://cdn.test/service-media/spa/b.jpg"}
	s.collection.On("AddFiles", mock.Anything, spaRef, model.MediaImage, twoFiles, testOwner).
		Return(entity.BatchResult{Uploaded: list, List: list}, nil).Once()

	rec := s.do(multipartRequest(t, "/admin/collections/service/spa/images/files", filesField,
		part{name: "a.png", contentType: "image/png", body: []byte("a")},
		part{name: "b.jpg", contentType: "image/jpeg", body: []byte("b")},
	))
	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decode[dto.CollectionResponse](t, rec)
	assert.True(t, resp.ResetInput)
	assert.Equal(t, 2, resp.Uploaded)
	assert.Equal(t, list, *resp.Images)
	assert.Nil(t, resp.Videos)
	assert.Equal(t, en.T(i18n.UploaderImagesUploaded, 2), resp.Notice.Description)
	assert.Equal(t, en.T(i18n.UploaderSuccessTitle), resp.Notice.Title)
}

func TestCollectionAddFilesFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		mediaType      string
		expectedStatus int
		expectedTitle  string
		expectedDesc   string
	}{
		{
			name:           "too many images",
			err:            &usecase.TooManyFilesError{Type: model.MediaImage, Max: 30},
			mediaType:      "images",
			expectedStatus: http.StatusBadRequest,
			expectedTitle:  en.T(i18n.UploaderTooManyTitle),
			expectedDesc:   en.T(i18n.UploaderTooManyImages, 30),
		},
		{
			name:           "wrong video type",
			err:            &usecase.InvalidFileTypeError{Type: model.MediaVideo, Name: "a.png", MimeType: "image/png"},
			mediaType:      "videos",
			expectedStatus: http.StatusBadRequest,
			expectedTitle:  en.T(i18n.UploaderInvalidTypeTitle),
			expectedDesc:   en.T(i18n.UploaderOnlyVideos),
		},
		{
			name:           "image too large",
			err:            &usecase.FileTooLargeError{Type: model.MediaImage, Name: "a.png", Limit: 10 << 20},
			mediaType:      "images",
			expectedStatus: http.StatusBadRequest,
			expectedTitle:  en.T(i18n.UploaderTooLargeTitle),
			expectedDesc:   en.T(i18n.UploaderTooLarge, "10 MiB"),
		},
		{
			name:           "nothing uploaded",
			err:            fmt.Errorf("%w: %w", usecase.ErrUploadFailed, storage.ErrNotFound),
			mediaType:      "images",
			expectedStatus: http.StatusBadGateway,
			expectedTitle:  en.T(i18n.TitleError),
			expectedDesc:   en.T(i18n.UploaderNothingUploaded),
		},
		{
			name: "nothing uploaded for lack of permission",
			err: fmt.Errorf("%w: %w", usecase.ErrUploadFailed,
				&usecase.PermissionError{Action: "uploading files", Err: storage.ErrPermissionDenied}),
			mediaType:      "images",
			expectedStatus: http.StatusForbidden,
			expectedTitle:  en.T(i18n.TitleError),
			expectedDesc:   en.T(i18n.MediaPermissionDenied, "uploading files", "permission denied"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := newTestServer(t)
			s.collection.On("AddFiles", mock.Anything, spaRef, mock.Anything, mock.Anything, testOwner).
				Return(entity.BatchResult{}, tc.err).Once()

			rec := s.do(multipartRequest(t, "/admin/collections/service/spa/"+tc.mediaType+"/files", filesField,
				part{name: "a.png", contentType: "image/png", body: []byte("a")}))
			assert.Equal(t, tc.expectedStatus, rec.Code)

			resp := decode[dto.CollectionResponse](t, rec)
			assert.True(t, resp.ResetInput)
			assert.Nil(t, resp.Images)
			assert.Equal(t, tc.expectedTitle, resp.Notice.Title)
			assert.Equal(t, tc.expectedDesc, resp.Notice.Description)
		})
	}
}

func TestCollectionAddFilesWithoutFiles(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	rec := s.do(multipartRequest(t, "/admin/collections/gallery/7/videos/files", filesField))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[dto.CollectionResponse](t, rec)
	assert.True(t, resp.ResetInput)
	assert.Equal(t, en.T(i18n.MediaMissingFile), resp.Notice.Description)
}

func TestCollectionAddURL(t *testing.T) {
	t.Parallel()

	t.Run("added", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		list := []string{"https://youtu.be/tour"}
		s.collection.On("AddURL", mock.Anything, spaRef, model.MediaVideo, "https://youtu.be/tour", testOwner).
			Return(list, nil).Once()

		rec := s.do(jsonRequest(t, http.MethodPost, "/admin/collections/service/spa/videos/urls",
			dto.AddURLRequest{URL: "https://youtu.be/tour"}))
		assert.Equal(t, http.StatusCreated, rec.Code)

		resp := decode[dto.CollectionResponse](t, rec)
		assert.Equal(t, list, *resp.Videos)
		assert.Equal(t, "", *resp.Input)
		assert.Equal(t, en.T(i18n.UploaderURLAdded), resp.Notice.Description)
	})

	t.Run("invalid url keeps input", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		s.collection.On("AddURL", mock.Anything, spaRef, model.MediaImage, "not a url", testOwner).
			Return(nil, usecase.ErrInvalidURL).Once()

		rec := s.do(jsonRequest(t, http.MethodPost, "/admin/collections/service/spa/images/urls",
			dto.AddURLRequest{URL: "not a url"}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decode[dto.CollectionResponse](t, rec)
		assert.Equal(t, "not a url", *resp.Input)
		assert.Nil(t, resp.Images)
		assert.Equal(t, en.T(i18n.UploaderInvalidURLTitle), resp.Notice.Title)
		assert.Equal(t, en.T(i18n.UploaderEnterValidURL), resp.Notice.Description)
	})

	t.Run("empty url", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		s.collection.On("AddURL", mock.Anything, spaRef, model.MediaImage, "  ", testOwner).
			Return(nil, usecase.ErrEmptyURL).Once()

		rec := s.do(jsonRequest(t, http.MethodPost, "/admin/collections/service/spa/images/urls",
			dto.AddURLRequest{URL: "  "}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, en.T(i18n.UploaderEmptyURLTitle), decode[dto.CollectionResponse](t, rec).Notice.Title)
	})
}

func TestCollectionDelete(t *testing.T) {
	t.Parallel()

	const target = "https://cdn.test/gallery-media/7/a.png"

	galleryRef := model.CollectionRef{Kind: model.KindGallery, EntityID: "7"}

	t.Run("asks for confirmation", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)

		rec := s.do(httptest.NewRequest(http.MethodDelete,
			"/admin/collections/gallery/7/images?url="+target, http.NoBody))
		assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
		s.collection.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		s.collection.On("Delete", mock.Anything, galleryRef, model.MediaImage, target, testOwner).
			Return([]string{}, nil).Once()

		rec := s.do(httptest.NewRequest(http.MethodDelete,
			"/admin/collections/gallery/7/images?confirm=true&url="+target, http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decode[dto.CollectionResponse](t, rec)
		assert.Empty(t, *resp.Images)
		assert.Equal(t, en.T(i18n.UploaderDeletedTitle), resp.Notice.Title)
	})

	t.Run("storage refuses", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		s.collection.On("Delete", mock.Anything, galleryRef, model.MediaImage, target, testOwner).
			Return(nil, &usecase.PermissionError{Action: "deleting file", Err: storage.ErrPermissionDenied}).Once()

		rec := s.do(httptest.NewRequest(http.MethodDelete,
			"/admin/collections/gallery/7/images?confirm=true&url="+target, http.NoBody))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("url not in list", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		s.collection.On("Delete", mock.Anything, galleryRef, model.MediaImage, target, testOwner).
			Return([]string{"https://cdn.test/gallery-media/7/keep.png"},
				fmt.Errorf("%s is not in the image list of gallery:7: %w", target, storage.ErrNotFound)).Once()

		rec := s.do(httptest.NewRequest(http.MethodDelete,
			"/admin/collections/gallery/7/images?confirm=true&url="+target, http.NoBody))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
