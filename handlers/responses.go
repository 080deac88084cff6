package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// badRequest answers a failed validation with the detail message the
// client is expected to show.
func badRequest(c echo.Context, detail string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"detail": detail})
}

// HTTPErrorHandler renders every unhandled error as {"detail": ...} so
// clients see one error shape across the whole API.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := "Internal Server Error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			detail = msg
		} else {
			detail = http.StatusText(code)
		}
	}
	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		if err := c.NoContent(code); err != nil {
			c.Logger().Error(err)
		}
		return
	}
	if err := c.JSON(code, map[string]string{"detail": detail}); err != nil {
		c.Logger().Error(err)
	}
}
