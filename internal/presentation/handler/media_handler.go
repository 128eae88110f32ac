package handler

import (
	"net/http"
	"net/url"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	"hotelmedia/internal/application/usecase/abstraction"
	"hotelmedia/internal/domain/dto"
	"hotelmedia/internal/domain/entity"
	"hotelmedia/internal/presentation"
	"hotelmedia/pkg/i18n"
)

const fileField = "file"

type MediaHandler struct {
	manager abstraction.MediaManager
}

func NewMediaHandler(manager abstraction.MediaManager) *MediaHandler {
	return &MediaHandler{manager: manager}
}

func (h *MediaHandler) List(c echo.Context) error {
	items, err := h.manager.FetchMedia(c.Request().Context())
	if err != nil {
		logger.Error("failed to fetch media", "err", err)

		loc := presentation.Localizer(c)
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		status, notice := errorNotice(loc, err)
		if err.Error() == "" {
			notice.Description = loc.T(i18n.MediaLoadFailed)
		}

		return c.JSON(status, dto.MediaResponse{Notice: &notice})
	}

	return c.JSON(http.StatusOK, dto.MediaResponse{Items: &items})
}

func (h *MediaHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile(fileField)
	if err != nil {
		return badRequest(c, i18n.MediaMissingFile, "missing multipart file")
	}

	f, err := fh.Open()
	if err != nil {
		return fail(c, err)
	}
	defer f.Close()

	_, err = h.manager.Upload(c.Request().Context(), entity.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	}, presentation.Owner(c))
	if err != nil {
		logger.Error("media upload failed", "name", fh.Filename, "err", err)

		return fail(c, err)
	}

	return h.refreshed(c, http.StatusCreated, i18n.MediaUploaded, nil)
}

func (h *MediaHandler) Delete(c echo.Context) error {
	bucket, name := c.Param(presentation.BucketParam), objectName(c)

	if c.QueryParam(presentation.ConfirmParam) != "true" {
		return confirm(c, i18n.MediaConfirmDelete)
	}

	if err := h.manager.Delete(c.Request().Context(), bucket, name, presentation.Owner(c)); err != nil {
		logger.Error("media delete failed", "bucket", bucket, "name", name, "err", err)

		return fail(c, err)
	}

	return h.refreshed(c, http.StatusOK, i18n.MediaDeleted, nil)
}

func (h *MediaHandler) Rename(c echo.Context) error {
	var req dto.RenameRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, i18n.MediaMissingName, "invalid rename body")
	}

	bucket, name := c.Param(presentation.BucketParam), objectName(c)

	changed, err := h.manager.Rename(c.Request().Context(), bucket, name, req.Name, presentation.Owner(c))
	if err != nil {
		logger.Error("media rename failed", "bucket", bucket, "name", name, "new_name", req.Name, "err", err)

		return fail(c, err)
	}

	if !changed {
		return c.JSON(http.StatusOK, dto.MediaResponse{Changed: ptr(false)})
	}

	return h.refreshed(c, http.StatusOK, i18n.MediaRenamed, ptr(true))
}

// refreshed answers a successful mutation with a fresh listing. When that
// listing fails the notice is still sent and items are left out.
func (h *MediaHandler) refreshed(c echo.Context, status int, key i18n.Key, changed *bool) error {
	loc := presentation.Localizer(c)
	resp := dto.MediaResponse{
		Notice:  ptr(dto.SuccessNotice(loc.T(i18n.TitleSuccess), loc.T(key))),
		Changed: changed,
	}

	items, err := h.manager.FetchMedia(c.Request().Context())
	if err != nil {
		logger.Warn("couldn't refresh media after mutation", "err", err)
	} else {
		resp.Items = &items
	}

	return c.JSON(status, resp)
}

// objectName returns the wildcard part of the route, which may span several segments.
func objectName(c echo.Context) string {
	raw := c.Param("*")

	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}

	return name
}

// confirm asks the client to repeat the request with confirm=true.
func confirm(c echo.Context, key i18n.Key) error {
	loc := presentation.Localizer(c)

	return c.JSON(http.StatusPreconditionRequired, dto.ConfirmPrompt{
		Confirm: presentation.ConfirmParam + "=true",
		Notice:  dto.Notice{Title: loc.T(key), Variant: dto.VariantDestructive},
	})
}
