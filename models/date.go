package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// DateLayout is the format dates are stored and returned in
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a value cannot be read as an ISO date
var ErrInvalidDate = errors.New("invalid date")

// accepted input layouts, only the calendar date is kept
var dateInputLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// Date is a calendar date without a time of day. The zero value means "no date".
type Date struct {
	t time.Time
}

// NewDate returns the date for the given year, month and day
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t as seen in t's own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today returns the current UTC date for the instant now
func Today(now time.Time) Date {
	return DateOf(now.UTC())
}

// ParseDate reads an ISO 8601 date or datetime and keeps the date portion
func ParseDate(s string) (Date, error) {
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// IsZero reports whether d holds no date
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Before reports whether d falls on an earlier day than o
func (d Date) Before(o Date) bool {
	return d.t.Before(o.t)
}

// After reports whether d falls on a later day than o
func (d Date) After(o Date) bool {
	return d.t.After(o.t)
}

// Equal reports whether d and o are the same day
func (d Date) Equal(o Date) bool {
	return d.t.Equal(o.t)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// MarshalJSON writes the date as "YYYY-MM-DD"
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts anything ParseDate does
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalBSONValue stores the date as a "YYYY-MM-DD" string
func (d Date) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.String())
}

// UnmarshalBSONValue reads a date stored either as a string or a BSON datetime
func (d *Date) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.String:
		s := raw.StringValue()
		if s == "" {
			*d = Date{}
			return nil
		}
		parsed, err := ParseDate(s)
		if err != nil {
			return err
		}
		*d = parsed
	case bsontype.DateTime:
		*d = DateOf(raw.Time().UTC())
	case bsontype.Null:
		*d = Date{}
	default:
		return fmt.Errorf("%w: cannot decode bson type %s", ErrInvalidDate, t)
	}
	return nil
}
