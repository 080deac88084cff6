package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/nikita1503agarwal/umkm-attendance-api/config"
	"github.com/nikita1503agarwal/umkm-attendance-api/database"
	"github.com/nikita1503agarwal/umkm-attendance-api/handlers"
	"github.com/nikita1503agarwal/umkm-attendance-api/middlewares"
	"github.com/nikita1503agarwal/umkm-attendance-api/routes"
)

func main() {
	cfg := config.Load()

	// Storage is optional at boot: without it the API still serves the
	// status endpoints, and /test reports what is missing.
	var store database.Store
	if mongo, err := database.Connect(cfg); err != nil {
		log.Printf("storage disabled: %v", err)
	} else {
		store = mongo
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middlewares.CORS())

	routes.Register(e, store, cfg)

	addr := ":" + cfg.Port
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
