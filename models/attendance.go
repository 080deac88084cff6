package models

import (
	"strings"
	"time"
)

// TimestampLayout renders UTC instants with a fixed six-digit fraction so
// the stored strings sort lexicographically in chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// NewTimestamp returns the current UTC time in ISO-8601 form.
func NewTimestamp() string {
	return time.Now().UTC().Format(TimestampLayout)
}

// Attendance is a single check-in as persisted in the attendance collection.
type Attendance struct {
	Name      string `bson:"name" json:"name"`
	Timestamp string `bson:"timestamp" json:"timestamp"` // server-assigned, never client-supplied
}

// AttendanceIn is the create-attendance request payload.
type AttendanceIn struct {
	Name string `json:"name"`
}

// Validate trims the payload and returns the record to persist, or a
// ValidationError describing the rejected input. The timestamp is stamped
// by the caller at processing time.
func (p AttendanceIn) Validate() (Attendance, *ValidationError) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return Attendance{}, &ValidationError{Detail: "Name is required"}
	}
	return Attendance{Name: name}, nil
}
