package handlers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nikita1503agarwal/umkm-attendance-api/database"
	"github.com/nikita1503agarwal/umkm-attendance-api/models"
)

type UmkmHandler struct {
	store database.Store
}

func NewUmkmHandler(store database.Store) *UmkmHandler {
	return &UmkmHandler{store: store}
}

type umkmView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Contact     string  `json:"contact"`
	Description string  `json:"description"`
	Social      *string `json:"social"`
}

// POST /api/umkm
func (h *UmkmHandler) Register(c echo.Context) error {
	var p models.UmkmIn
	if err := c.Bind(&p); err != nil {
		return badRequest(c, "Invalid request body")
	}
	rec, verr := p.Validate()
	if verr != nil {
		return badRequest(c, verr.Detail)
	}

	if h.store == nil {
		return database.ErrUnavailable
	}
	id, err := h.store.Insert(c.Request().Context(), database.CollUmkm, rec)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, umkmView{
		ID:          id,
		Name:        rec.Name,
		Contact:     rec.Contact,
		Description: rec.Description,
		Social:      rec.Social,
	})
}

// GET /api/umkm
func (h *UmkmHandler) List(c echo.Context) error {
	if h.store == nil {
		return database.ErrUnavailable
	}
	docs, err := h.store.Find(c.Request().Context(), database.CollUmkm, nil)
	if err != nil {
		return err
	}

	out := make([]umkmView, 0, len(docs))
	for _, d := range docs {
		out = append(out, umkmView{
			ID:          docID(d),
			Name:        docString(d, "name"),
			Contact:     docString(d, "contact"),
			Description: docString(d, "description"),
			Social:      docOptString(d, "social"),
		})
	}
	// Alphabetical by name, case-insensitive.
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return c.JSON(http.StatusOK, out)
}
