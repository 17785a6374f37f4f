package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/randomtoy/cardflip/internal/app"
)

// NewServer wires middleware and routes. When staticDir is set, the
// renderer's assets are served from it at /.
func NewServer(svc *app.DrawService, logger *slog.Logger, staticDir string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(LoggingMiddleware(logger))

	NewHandler(svc).Register(e)

	if staticDir != "" {
		e.Static("/", staticDir)
	}
	return e
}
