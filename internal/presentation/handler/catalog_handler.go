package handler

import (
	"net/http"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	"hotelmedia/internal/application/usecase/abstraction"
	"hotelmedia/internal/domain/dto"
	"hotelmedia/internal/domain/model"
	"hotelmedia/internal/presentation"
	"hotelmedia/pkg/i18n"
)

type CatalogHandler struct {
	catalog abstraction.Catalog
}

func NewCatalogHandler(catalog abstraction.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) Rooms(c echo.Context) error {
	rooms, err := h.catalog.ListRooms(c.Request().Context())
	if err != nil {
		logger.Error("failed to list rooms", "err", err)

		loc := presentation.Localizer(c)
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.JSON(http.StatusInternalServerError, dto.RoomsResponse{
			Notice: ptr(dto.ErrorNotice(loc, loc.T(i18n.RoomsLoadFailed))),
			Rooms:  []model.Room{},
		})
	}

	if rooms == nil {
		rooms = []model.Room{}
	}

	return c.JSON(http.StatusOK, dto.RoomsResponse{Rooms: rooms})
}

func (h *CatalogHandler) Availability(c echo.Context) error {
	var req dto.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, i18n.BookingInvalidDates, "invalid availability body")
	}

	rooms, err := h.catalog.CheckAvailability(c.Request().Context(), req)
	if err != nil {
		return fail(c, err)
	}

	if rooms == nil {
		rooms = []model.Room{}
	}

	loc := presentation.Localizer(c)

	return c.JSON(http.StatusOK, dto.RoomsResponse{
		Notice: ptr(dto.SuccessNotice(loc.T(i18n.TitleSuccess), loc.T(i18n.BookingRecorded))),
		Rooms:  rooms,
	})
}
