package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root answers GET / with a static liveness message.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "UMKM & Attendance API is running",
	})
}

// Health is a bare probe for load balancers and uptime checks.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
