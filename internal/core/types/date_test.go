package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())

	_, err = ParseDate("29.02.2024")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDate_Within_InclusiveBoundaries(t *testing.T) {
	from := MustParseDate("2024-01-01")
	to := MustParseDate("2024-01-31")

	tests := []struct {
		date string
		want bool
	}{
		{"2023-12-31", false},
		{"2024-01-01", true}, // lower boundary
		{"2024-01-15", true},
		{"2024-01-31", true}, // upper boundary
		{"2024-02-01", false},
	}

	for _, tt := range tests {
		got := MustParseDate(tt.date).Within(from, to)
		assert.Equal(t, tt.want, got, "date %s", tt.date)
	}
}

func TestDate_SingleDayWindow(t *testing.T) {
	day := MustParseDate("2024-06-10")
	assert.True(t, day.Within(day, day))
}

func TestDate_JSON(t *testing.T) {
	d := MustParseDate("2024-03-05")

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-05"`), &parsed))
	assert.True(t, d.Equal(parsed))
}

func TestDate_JSON_Null(t *testing.T) {
	var d Date
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte("null"), &parsed))
	assert.True(t, parsed.IsZero())
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 7, 1, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, "2024-07-01", d.String())

	var fromStr Date
	require.NoError(t, fromStr.Scan("2024-07-02"))
	assert.Equal(t, "2024-07-02", fromStr.String())

	var fromNil Date
	require.NoError(t, fromNil.Scan(nil))
	assert.True(t, fromNil.IsZero())
}
