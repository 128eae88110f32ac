package handler

import (
	"errors"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/labstack/echo/v4"

	"hotelmedia/internal/application/usecase"
	"hotelmedia/internal/domain/dto"
	"hotelmedia/internal/domain/model"
	"hotelmedia/internal/domain/repository/storage"
	"hotelmedia/internal/presentation"
	"hotelmedia/pkg/i18n"
)

// errorNotice maps a usecase error to its status code and localized notice.
// Errors with no dedicated message surface their raw text.
func errorNotice(loc *i18n.Localizer, err error) (int, dto.Notice) {
	var (
		permission *usecase.PermissionError
		tooMany    *usecase.TooManyFilesError
		tooLarge   *usecase.FileTooLargeError
		wrongType  *usecase.InvalidFileTypeError
	)

	switch {
	case errors.As(err, &permission):
		return http.StatusForbidden, dto.ErrorNotice(loc,
			loc.T(i18n.MediaPermissionDenied, permission.Action, permission.Err.Error()))

	case errors.As(err, &tooMany):
		key := i18n.UploaderTooManyImages
		if tooMany.Type == model.MediaVideo {
			key = i18n.UploaderTooManyVideos
		}

		return http.StatusBadRequest, failure(loc.T(i18n.UploaderTooManyTitle), loc.T(key, tooMany.Max))

	case errors.As(err, &wrongType):
		key := i18n.UploaderOnlyImages
		if wrongType.Type == model.MediaVideo {
			key = i18n.UploaderOnlyVideos
		}

		return http.StatusBadRequest, failure(loc.T(i18n.UploaderInvalidTypeTitle), loc.T(key))

	case errors.As(err, &tooLarge):
		return http.StatusBadRequest, failure(loc.T(i18n.UploaderTooLargeTitle),
			loc.T(i18n.UploaderTooLarge, humanize.IBytes(uint64(tooLarge.Limit))))

	case errors.Is(err, usecase.ErrUnsupportedType):
		return http.StatusBadRequest, dto.ErrorNotice(loc, loc.T(i18n.MediaOnlyImageVideo))
	case errors.Is(err, usecase.ErrFileTooLarge):
		return http.StatusBadRequest, dto.ErrorNotice(loc, loc.T(i18n.MediaSizeOver50MB))
	case errors.Is(err, usecase.ErrMissingName):
		return http.StatusBadRequest, dto.ErrorNotice(loc, loc.T(i18n.MediaMissingName))
	case errors.Is(err, usecase.ErrEmptyURL):
		return http.StatusBadRequest, failure(loc.T(i18n.UploaderEmptyURLTitle), loc.T(i18n.UploaderEnterValidURL))
	case errors.Is(err, usecase.ErrInvalidURL):
		return http.StatusBadRequest, failure(loc.T(i18n.UploaderInvalidURLTitle), loc.T(i18n.UploaderEnterValidURL))
	case errors.Is(err, usecase.ErrUploadFailed):
		return http.StatusBadGateway, dto.ErrorNotice(loc, loc.T(i18n.UploaderNothingUploaded))

	case errors.Is(err, usecase.ErrInvalidDates):
		return http.StatusBadRequest, dto.ErrorNotice(loc, loc.T(i18n.BookingInvalidDates))
	case errors.Is(err, usecase.ErrCheckinInPast):
		return http.StatusBadRequest, dto.ErrorNotice(loc, loc.T(i18n.BookingCheckinPast))
	case errors.Is(err, usecase.ErrCheckoutBeforeCheckin):
		return http.StatusBadRequest, dto.ErrorNotice(loc, loc.T(i18n.BookingCheckoutOrder))
	case errors.Is(err, usecase.ErrGuestCountOutOfBounds):
		return http.StatusBadRequest, dto.ErrorNotice(loc,
			loc.T(i18n.BookingGuests, usecase.MinGuests, usecase.MaxGuests))

	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, dto.ErrorNotice(loc, err.Error())
	case errors.Is(err, storage.ErrObjectExists):
		return http.StatusConflict, dto.ErrorNotice(loc, err.Error())
	}

	msg := err.Error()
	if msg == "" {
		msg = loc.T(i18n.MediaUnknownError)
	}

	return http.StatusInternalServerError, dto.ErrorNotice(loc, msg)
}

func failure(title, description string) dto.Notice {
	return dto.Notice{Title: title, Description: description, Variant: dto.VariantDestructive}
}

// fail writes the notice for err together with the X-Reason header.
func fail(c echo.Context, err error) error {
	status, notice := errorNotice(presentation.Localizer(c), err)
	c.Response().Header().Set(presentation.ReasonTag, err.Error())

	return c.JSON(status, notice)
}

// badRequest answers a malformed request before any usecase call.
func badRequest(c echo.Context, key i18n.Key, reason string) error {
	loc := presentation.Localizer(c)
	c.Response().Header().Set(presentation.ReasonTag, reason)

	return c.JSON(http.StatusBadRequest, dto.ErrorNotice(loc, loc.T(key)))
}

func ptr[T any](v T) *T {
	return &v
}
