// SPDX-License-Identifier: Apache-2.0

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_MarshalJSON(t *testing.T) {
	date := NewDate(2023, time.January, 1)

	data, err := json.Marshal(date)

	require.NoError(t, err)
	assert.Equal(t, `"2023-01-01"`, string(data))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var date Date

	err := json.Unmarshal([]byte(`"1990-12-31"`), &date)

	require.NoError(t, err)
	assert.Equal(t, NewDate(1990, time.December, 31), date)
}

func TestDate_UnmarshalJSON_InvalidFormat(t *testing.T) {
	var date Date

	err := json.Unmarshal([]byte(`"31/12/1990"`), &date)

	assert.Error(t, err)
}

func TestDate_After(t *testing.T) {
	earlier := NewDate(2023, time.January, 1)
	later := NewDate(2023, time.January, 2)

	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(later))
	assert.False(t, earlier.After(earlier))
}

// TestDate_After_IgnoresTimeZone pins the calendar-day comparison: the
// same calendar day is never "after" itself even when one side is pinned
// to UTC midnight (the wire decoding) and the other to a local midnight
// far east of UTC.
func TestDate_After_IgnoresTimeZone(t *testing.T) {
	eastZone := time.FixedZone("UTC+14", 14*60*60)
	sameDayEast := Date{time.Date(2024, time.June, 1, 0, 0, 0, 0, eastZone)}
	sameDayUTC := NewDate(2024, time.June, 1)

	assert.False(t, sameDayUTC.After(sameDayEast))
	assert.False(t, sameDayEast.After(sameDayUTC))

	assert.True(t, NewDate(2024, time.June, 2).After(sameDayEast))
	assert.False(t, NewDate(2024, time.May, 31).After(sameDayEast))
}

func TestDate_After_AcrossYearAndMonthBoundaries(t *testing.T) {
	assert.True(t, NewDate(2024, time.January, 1).After(NewDate(2023, time.December, 31)))
	assert.True(t, NewDate(2023, time.February, 1).After(NewDate(2023, time.January, 31)))
	assert.False(t, NewDate(2023, time.December, 31).After(NewDate(2024, time.January, 1)))
}

func TestDateToString(t *testing.T) {
	result, err := DateToString(NewDate(2023, time.January, 1))

	require.NoError(t, err)
	assert.Equal(t, "2023-01-01", result)
}

func TestDateToString_TimeValue(t *testing.T) {
	result, err := DateToString(time.Date(2024, time.June, 15, 13, 37, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", result)
}

func TestDateToString_NotADate(t *testing.T) {
	_, err := DateToString("not a date")

	require.ErrorIs(t, err, ErrNotADate)
	// the error names the actual type of the offending value
	assert.Contains(t, err.Error(), "string")
}

func TestDateToString_NotADate_Int(t *testing.T) {
	_, err := DateToString(42)

	require.ErrorIs(t, err, ErrNotADate)
	assert.Contains(t, err.Error(), "int")
}
