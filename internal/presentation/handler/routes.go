package handler

import (
	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Media      *MediaHandler
	Collection *CollectionHandler
	Nav        *NavHandler
	Catalog    *CatalogHandler
	Auth       *AuthHandler
}

// Register mounts the public catalog and the admin API. Every /admin route
// passes through adminAuth.
func Register(e *echo.Echo, h Handlers, adminAuth echo.MiddlewareFunc) {
	e.GET("/health", Health)

	e.GET("/rooms", h.Catalog.Rooms)
	e.POST("/bookings/availability", h.Catalog.Availability)

	admin := e.Group("/admin", adminAuth)

	admin.GET("/session", h.Auth.Session)
	admin.POST("/logout", h.Auth.Logout)

	admin.GET("/nav", h.Nav.Nav)
	admin.GET("/panels/:section", h.Nav.Panel)

	admin.GET("/media", h.Media.List)
	admin.POST("/media", h.Media.Upload)
	admin.DELETE("/media/:bucket/*", h.Media.Delete)
	admin.PATCH("/media/:bucket/*", h.Media.Rename)

	admin.GET("/collections/:kind/:id", h.Collection.Get)
	admin.POST("/collections/:kind/:id/:type/files", h.Collection.AddFiles)
	admin.POST("/collections/:kind/:id/:type/urls", h.Collection.AddURL)
	admin.DELETE("/collections/:kind/:id/:type", h.Collection.Delete)
}
