package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	"hotelmedia/internal/application/usecase/abstraction"
	"hotelmedia/internal/domain/dto"
	"hotelmedia/internal/domain/entity"
	"hotelmedia/internal/domain/model"
	"hotelmedia/internal/presentation"
	"hotelmedia/pkg/i18n"
)

const filesField = "files"

type CollectionHandler struct {
	collection abstraction.MediaCollection
}

func NewCollectionHandler(collection abstraction.MediaCollection) *CollectionHandler {
	return &CollectionHandler{collection: collection}
}

func (h *CollectionHandler) Get(c echo.Context) error {
	ref, rerr := collectionRef(c)
	if rerr != nil {
		return badRequest(c, rerr.key, rerr.reason)
	}

	col, err := h.collection.Get(c.Request().Context(), ref)
	if err != nil {
		logger.Error("failed to load collection", "collection", ref.Key(), "err", err)

		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.CollectionResponse{
		Images:   &col.Images,
		Videos:   &col.Videos,
		MaxFiles: h.collection.MaxFiles(),
	})
}

func (h *CollectionHandler) AddFiles(c echo.Context) error {
	ref, t, rerr := target(c)
	if rerr != nil {
		return badRequest(c, rerr.key, rerr.reason)
	}

	loc := presentation.Localizer(c)
	resp := dto.CollectionResponse{MaxFiles: h.collection.MaxFiles(), ResetInput: true}

	form, err := c.MultipartForm()
	if err != nil || len(form.File[filesField]) == 0 {
		resp.Notice = ptr(dto.ErrorNotice(loc, loc.T(i18n.MediaMissingFile)))
		c.Response().Header().Set(presentation.ReasonTag, "missing multipart files")

		return c.JSON(http.StatusBadRequest, resp)
	}

	files := make([]entity.File, 0, len(form.File[filesField]))
	closers := make([]io.Closer, 0, len(form.File[filesField]))

	defer func() {
		for _, cl := range closers {
			_ = cl.Close()
		}
	}()

	for _, fh := range form.File[filesField] {
		f, err := fh.Open()
		if err != nil {
			return fail(c, err)
		}

		closers = append(closers, f)
		files = append(files, entity.File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Size:        fh.Size,
			Body:        f,
		})
	}

	res, err := h.collection.AddFiles(c.Request().Context(), ref, t, files, presentation.Owner(c))
	if err != nil {
		logger.Error("collection upload failed", "collection", ref.Key(), "type", t, "err", err)

		status, notice := errorNotice(loc, err)
		resp.Notice = &notice
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.JSON(status, resp)
	}

	key := i18n.UploaderImagesUploaded
	if t == model.MediaVideo {
		key = i18n.UploaderVideosUploaded
	}

	resp.Notice = ptr(dto.SuccessNotice(loc.T(i18n.UploaderSuccessTitle), loc.T(key, len(res.Uploaded))))
	resp.Uploaded = len(res.Uploaded)
	resp.Failed = res.Failed
	setList(&resp, t, res.List)

	return c.JSON(http.StatusCreated, resp)
}

func (h *CollectionHandler) AddURL(c echo.Context) error {
	ref, t, rerr := target(c)
	if rerr != nil {
		return badRequest(c, rerr.key, rerr.reason)
	}

	var req dto.AddURLRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, i18n.UploaderEnterValidURL, "invalid url body")
	}

	loc := presentation.Localizer(c)
	resp := dto.CollectionResponse{MaxFiles: h.collection.MaxFiles()}

	list, err := h.collection.AddURL(c.Request().Context(), ref, t, req.URL, presentation.Owner(c))
	if err != nil {
		status, notice := errorNotice(loc, err)
		resp.Notice = &notice
		resp.Input = ptr(req.URL)
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.JSON(status, resp)
	}

	resp.Notice = ptr(dto.SuccessNotice(loc.T(i18n.TitleSuccess), loc.T(i18n.UploaderURLAdded)))
	resp.Input = ptr("")
	setList(&resp, t, list)

	return c.JSON(http.StatusCreated, resp)
}

func (h *CollectionHandler) Delete(c echo.Context) error {
	ref, t, rerr := target(c)
	if rerr != nil {
		return badRequest(c, rerr.key, rerr.reason)
	}

	raw := strings.TrimSpace(c.QueryParam(presentation.URLParam))
	if raw == "" {
		return badRequest(c, i18n.UploaderEnterValidURL, "missing url parameter")
	}

	if c.QueryParam(presentation.ConfirmParam) != "true" {
		return confirm(c, i18n.MediaConfirmDelete)
	}

	list, err := h.collection.Delete(c.Request().Context(), ref, t, raw, presentation.Owner(c))
	if err != nil {
		logger.Error("collection delete failed", "collection", ref.Key(), "url", raw, "err", err)

		return fail(c, err)
	}

	loc := presentation.Localizer(c)
	resp := dto.CollectionResponse{
		Notice:   ptr(dto.SuccessNotice(loc.T(i18n.UploaderDeletedTitle), loc.T(i18n.UploaderDeleted))),
		MaxFiles: h.collection.MaxFiles(),
	}
	setList(&resp, t, list)

	return c.JSON(http.StatusOK, resp)
}

// routeError is a malformed path parameter.
type routeError struct {
	key    i18n.Key
	reason string
}

var (
	errUnknownKind = &routeError{i18n.UploaderUnknownKind, "unknown collection kind"}
	errUnknownType = &routeError{i18n.UploaderUnknownType, "unknown media type"}
)

func target(c echo.Context) (model.CollectionRef, model.MediaType, *routeError) {
	ref, rerr := collectionRef(c)
	if rerr != nil {
		return model.CollectionRef{}, "", rerr
	}

	t, ok := model.ParseMediaType(c.Param(presentation.TypeParam))
	if !ok {
		return model.CollectionRef{}, "", errUnknownType
	}

	return ref, t, nil
}

func collectionRef(c echo.Context) (model.CollectionRef, *routeError) {
	kind, ok := model.ParseCollectionKind(c.Param(presentation.KindParam))
	if !ok {
		return model.CollectionRef{}, errUnknownKind
	}

	id := strings.TrimSpace(c.Param(presentation.IDParam))
	if id == "" {
		return model.CollectionRef{}, errUnknownKind
	}

	return model.CollectionRef{Kind: kind, EntityID: id}, nil
}

func setList(resp *dto.CollectionResponse, t model.MediaType, list []string) {
	if list == nil {
		list = []string{}
	}

	if t == model.MediaVideo {
		resp.Videos = &list
	} else {
		resp.Images = &list
	}
}
