package handlers

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nikita1503agarwal/umkm-attendance-api/models"
)

// docID renders a document's _id as a string, whatever the driver gave us.
func docID(d bson.M) string {
	switch id := d["_id"].(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", id)
	}
}

func docString(d bson.M, key string) string {
	s, _ := d[key].(string)
	return s
}

func docOptString(d bson.M, key string) *string {
	s, ok := d[key].(string)
	if !ok {
		return nil
	}
	return &s
}

// docTimestamp reads the timestamp field, falling back to a legacy
// created_at date when older documents predate the string field.
func docTimestamp(d bson.M) string {
	if s, ok := d["timestamp"].(string); ok && s != "" {
		return s
	}
	switch v := d["created_at"].(type) {
	case primitive.DateTime:
		return v.Time().UTC().Format(models.TimestampLayout)
	case time.Time:
		return v.UTC().Format(models.TimestampLayout)
	}
	return ""
}
