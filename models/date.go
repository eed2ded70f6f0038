// SPDX-License-Identifier: Apache-2.0

package models

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format for calendar dates exchanged with the
// downstream services (ISO-8601 date, no time component).
const dateLayout = "2006-01-02"

// ErrNotADate is returned by [DateToString] when the given value is not a
// calendar date. Callers can match it with [errors.Is].
var ErrNotADate = fmt.Errorf("value is not a date")

// Date is a civil calendar date without a time-of-day component.
//
// It wraps [time.Time] but marshals to and from JSON as a plain
// "YYYY-MM-DD" string, which is the only date representation the
// downstream services understand.
type Date struct {
	time.Time
}

// NewDate constructs a Date from a year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date in the local time zone,
// truncated to midnight.
func Today() Date {
	now := time.Now()
	return Date{time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())}
}

// After reports whether d falls on a strictly later calendar day than
// other. Only the year, month and day components are compared; the time
// zones the two dates were constructed in are irrelevant, so a date decoded
// from the wire (UTC) compares correctly against [Today] (local).
func (d Date) After(other Date) bool {
	dYear, dMonth, dDay := d.Date()
	oYear, oMonth, oDay := other.Date()

	if dYear != oYear {
		return dYear > oYear
	}
	if dMonth != oMonth {
		return dMonth > oMonth
	}
	return dDay > oDay
}

// String returns the ISO-8601 representation of the date.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON encodes the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON decodes a quoted "YYYY-MM-DD" string into the date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("error parsing date %q: %w", s, err)
	}

	d.Time = parsed
	return nil
}

// DateToString converts a date value to its ISO-8601 wire representation.
//
// Accepted inputs are [Date] and [time.Time]. Any other type is a
// programming defect on the caller's side and yields a wrapped
// [ErrNotADate] that names the actual Go type of the offending value.
func DateToString(v any) (string, error) {
	switch value := v.(type) {
	case Date:
		return value.Format(dateLayout), nil
	case time.Time:
		return value.Format(dateLayout), nil
	default:
		return "", fmt.Errorf("%w: type %T is not serializable", ErrNotADate, v)
	}
}
