package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/nikita1503agarwal/umkm-attendance-api/config"
	"github.com/nikita1503agarwal/umkm-attendance-api/database"
	"github.com/nikita1503agarwal/umkm-attendance-api/handlers"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, store database.Store, cfg *config.Config) {
	att := handlers.NewAttendanceHandler(store)
	umkm := handlers.NewUmkmHandler(store)
	diag := handlers.NewDiagnosticsHandler(store, cfg)

	// ===== Service status =====
	e.GET("/", handlers.Root)
	e.GET("/health", handlers.Health)
	e.GET("/test", diag.Probe)

	// ===== Resources =====
	api := e.Group("/api")
	api.POST("/attendance", att.Mark)
	api.GET("/attendance", att.List)
	api.POST("/umkm", umkm.Register)
	api.GET("/umkm", umkm.List)
}
