package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"hotelmedia/pkg/metrics"
)

func RequestMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			err := next(ctx)

			status := ctx.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			route := ctx.Path()
			if route == "" {
				route = "unmatched"
			}

			metrics.ObserveRequest(ctx.Request().Method, route, status)

			return err
		}
	}
}
