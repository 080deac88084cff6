package handlers

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/nikita1503agarwal/umkm-attendance-api/config"
	"github.com/nikita1503agarwal/umkm-attendance-api/database"
)

type DiagnosticsHandler struct {
	store database.Store
	cfg   *config.Config
}

func NewDiagnosticsHandler(store database.Store, cfg *config.Config) *DiagnosticsHandler {
	return &DiagnosticsHandler{store: store, cfg: cfg}
}

type diagnosticsView struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Probe answers GET /test. It never fails the request; every storage
// problem is reported inside the body instead.
func (h *DiagnosticsHandler) Probe(c echo.Context) error {
	view := diagnosticsView{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      envIndicator("DATABASE_URL"),
		DatabaseName:     envIndicator("DATABASE_NAME"),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	st := h.check(c)
	switch st.State {
	case database.StateNotConfigured, database.StateNotConnected:
		view.Database = "⚠️  Available but not initialized"
	case database.StateDegraded:
		view.ConnectionStatus = "Connected"
		view.Database = "⚠️  Connected but Error: " + truncate(st.Err.Error(), 50)
	case database.StateHealthy:
		view.ConnectionStatus = "Connected"
		view.Database = "✅ Connected & Working"
		for i, name := range st.Collections {
			if i == 10 {
				break
			}
			view.Collections = append(view.Collections, name)
		}
	}
	return c.JSON(http.StatusOK, view)
}

func (h *DiagnosticsHandler) check(c echo.Context) database.Status {
	if h.store == nil {
		if h.cfg.DatabaseURL == "" || h.cfg.DatabaseName == "" {
			return database.Status{State: database.StateNotConfigured}
		}
		return database.Status{State: database.StateNotConnected}
	}
	return database.Check(c.Request().Context(), h.store)
}

// envIndicator reports whether a variable is set in the live process
// environment, independent of the loaded config.
func envIndicator(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
