package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hotelmedia/internal/application/usecase/abstraction"
	"hotelmedia/internal/presentation"
)

type NavHandler struct {
	navigator abstraction.Navigator
}

func NewNavHandler(navigator abstraction.Navigator) *NavHandler {
	return &NavHandler{navigator: navigator}
}

func (h *NavHandler) Nav(c echo.Context) error {
	return c.JSON(http.StatusOK, h.navigator.Nav(presentation.Localizer(c), c.QueryParam(presentation.ActiveParam)))
}

func (h *NavHandler) Panel(c echo.Context) error {
	return c.JSON(http.StatusOK, h.navigator.Panel(presentation.Localizer(c), c.Param(presentation.SectionParam)))
}
