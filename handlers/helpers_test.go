package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nikita1503agarwal/umkm-attendance-api/models"
)

// newJSONContext builds an echo context around a recorded request, the way
// the handler methods see one in production.
func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestDocID(t *testing.T) {
	oid := primitive.NewObjectID()
	assert.Equal(t, oid.Hex(), docID(bson.M{"_id": oid}))
	assert.Equal(t, "custom-id", docID(bson.M{"_id": "custom-id"}))
	assert.Equal(t, "", docID(bson.M{}))
	assert.Equal(t, "42", docID(bson.M{"_id": int32(42)}))
}

func TestDocString(t *testing.T) {
	d := bson.M{"name": "Alice", "count": int32(3)}
	assert.Equal(t, "Alice", docString(d, "name"))
	assert.Equal(t, "", docString(d, "missing"))
	assert.Equal(t, "", docString(d, "count"))
}

func TestDocOptString(t *testing.T) {
	d := bson.M{"social": "@toko", "gone": nil}
	if assert.NotNil(t, docOptString(d, "social")) {
		assert.Equal(t, "@toko", *docOptString(d, "social"))
	}
	assert.Nil(t, docOptString(d, "gone"))
	assert.Nil(t, docOptString(d, "missing"))
}

func TestDocTimestamp(t *testing.T) {
	created := time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)

	t.Run("prefers the stored string", func(t *testing.T) {
		d := bson.M{
			"timestamp":  "2024-03-10T09:00:00.000000Z",
			"created_at": primitive.NewDateTimeFromTime(created),
		}
		assert.Equal(t, "2024-03-10T09:00:00.000000Z", docTimestamp(d))
	})

	t.Run("falls back to created_at", func(t *testing.T) {
		d := bson.M{"created_at": primitive.NewDateTimeFromTime(created)}
		assert.Equal(t, created.Format(models.TimestampLayout), docTimestamp(d))
	})

	t.Run("falls back to created_at as time.Time", func(t *testing.T) {
		d := bson.M{"created_at": created}
		assert.Equal(t, created.Format(models.TimestampLayout), docTimestamp(d))
	})

	t.Run("empty when nothing is stored", func(t *testing.T) {
		assert.Equal(t, "", docTimestamp(bson.M{"name": "Legacy"}))
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))
	assert.Equal(t, strings.Repeat("a", 50), truncate(strings.Repeat("a", 80), 50))
	assert.Equal(t, "éé", truncate("ééé", 2))
}
