package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate_ISO(t *testing.T) {
	d, err := ParseFlexibleDate("2025-04-26")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.April, d.Month())
	assert.Equal(t, 26, d.Day())
}

func TestParseFlexibleDate_DayFirst(t *testing.T) {
	d, err := ParseFlexibleDate("26/04/2025")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.April, d.Month())
	assert.Equal(t, 26, d.Day())
}

func TestParseFlexibleDate_BothFormatsAgree(t *testing.T) {
	a, err := ParseFlexibleDate("26/04/2025")
	require.NoError(t, err)
	b, err := ParseFlexibleDate("2025-04-26")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestParseFlexibleDate_SwapsWhenMonthImpossible(t *testing.T) {
	// Month-first input is recognized because 26 cannot be a month.
	d, err := ParseFlexibleDate("04/26/2025")
	require.NoError(t, err)
	assert.Equal(t, time.April, d.Month())
	assert.Equal(t, 26, d.Day())
}

func TestParseFlexibleDate_AmbiguousDefaultsToDayFirst(t *testing.T) {
	d, err := ParseFlexibleDate("05/04/2025")
	require.NoError(t, err)
	assert.Equal(t, time.April, d.Month())
	assert.Equal(t, 5, d.Day())
}

func TestParseFlexibleDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "yesterday", "2025/04", "31/31/2025", "30/02/2025", "26-04-2025"} {
		_, err := ParseFlexibleDate(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseClockTime(t *testing.T) {
	got, err := ParseClockTime("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())

	got, err = ParseClockTime("18:00:45")
	require.NoError(t, err)
	assert.Equal(t, 18, got.Hour())
	assert.Equal(t, 45, got.Second())

	_, err = ParseClockTime("6 pm")
	assert.Error(t, err)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "jane lim", NormalizeName("  Jane Lim "))
	assert.Equal(t, NormalizeName("JANE LIM"), NormalizeName("jane lim"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "latitude", Message: "latitude must be between -90 and 90"},
	}
	assert.Contains(t, errs.Error(), "name: name is required")
	assert.Equal(t, "latitude must be between -90 and 90", errs.ToMap()["latitude"])
}
