package handlers

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/nikita1503agarwal/umkm-attendance-api/database"
	"github.com/nikita1503agarwal/umkm-attendance-api/models"
)

type AttendanceHandler struct {
	store database.Store
}

func NewAttendanceHandler(store database.Store) *AttendanceHandler {
	return &AttendanceHandler{store: store}
}

type attendanceView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
}

// POST /api/attendance
func (h *AttendanceHandler) Mark(c echo.Context) error {
	var p models.AttendanceIn
	if err := c.Bind(&p); err != nil {
		return badRequest(c, "Invalid request body")
	}
	rec, verr := p.Validate()
	if verr != nil {
		return badRequest(c, verr.Detail)
	}
	// Server clock is authoritative; any client-supplied timestamp is ignored.
	rec.Timestamp = models.NewTimestamp()

	if h.store == nil {
		return database.ErrUnavailable
	}
	id, err := h.store.Insert(c.Request().Context(), database.CollAttendance, rec)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, attendanceView{ID: id, Name: rec.Name, Timestamp: rec.Timestamp})
}

// GET /api/attendance
func (h *AttendanceHandler) List(c echo.Context) error {
	if h.store == nil {
		return database.ErrUnavailable
	}
	docs, err := h.store.Find(c.Request().Context(), database.CollAttendance, nil)
	if err != nil {
		return err
	}

	out := make([]attendanceView, 0, len(docs))
	for _, d := range docs {
		out = append(out, attendanceView{
			ID:        docID(d),
			Name:      docString(d, "name"),
			Timestamp: docTimestamp(d),
		})
	}
	// Newest first; records without a timestamp sink to the end.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return c.JSON(http.StatusOK, out)
}
