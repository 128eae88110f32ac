package middleware

import (
	"github.com/labstack/echo/v4"

	"hotelmedia/internal/presentation"
	"hotelmedia/pkg/i18n"
)

// Locale resolves the request language once, from ?lang= first and Accept-Language second.
func Locale(bundle *i18n.Bundle) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			loc := bundle.Localizer(
				ctx.QueryParam(presentation.LangParam),
				ctx.Request().Header.Get("Accept-Language"),
			)
			ctx.Set(presentation.KeyLocalizer, loc)
			ctx.Response().Header().Set("Content-Language", loc.Tag().String())

			return next(ctx)
		}
	}
}
