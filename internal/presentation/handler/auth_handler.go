package handler

import (
	"net/http"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	"hotelmedia/internal/domain/dto"
	"hotelmedia/internal/domain/repository/session"
	"hotelmedia/internal/presentation"
	"hotelmedia/pkg/i18n"
)

type AuthHandler struct {
	revoker session.Revoker
}

func NewAuthHandler(revoker session.Revoker) *AuthHandler {
	return &AuthHandler{revoker: revoker}
}

// Logout revokes the presented credential until it would have expired anyway.
func (h *AuthHandler) Logout(c echo.Context) error {
	loc := presentation.Localizer(c)

	id, ok := presentation.CurrentIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, dto.ErrorNotice(loc, loc.T(i18n.AuthMissing)))
	}

	if err := h.revoker.Revoke(c.Request().Context(), id.TokenID, id.ExpiresAt); err != nil {
		logger.Error("couldn't revoke credential", "subject", id.Subject, "err", err)

		return fail(c, err)
	}

	logger.Info("administrator logged out", "subject", id.Subject, "method", id.Method)

	return c.JSON(http.StatusOK, dto.SuccessNotice(loc.T(i18n.TitleSuccess), loc.T(i18n.AuthLoggedOut)))
}

func (h *AuthHandler) Session(c echo.Context) error {
	id, ok := presentation.CurrentIdentity(c)
	if !ok {
		loc := presentation.Localizer(c)

		return c.JSON(http.StatusUnauthorized, dto.ErrorNotice(loc, loc.T(i18n.AuthMissing)))
	}

	return c.JSON(http.StatusOK, id)
}
