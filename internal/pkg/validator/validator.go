package validator

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// NormalizeName trims and lower-cases a staff name for matching.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsValidLatitude reports whether a latitude is within valid degree range.
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsValidLongitude reports whether a longitude is within valid degree range.
func IsValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// ParseFlexibleDate parses a date in either "YYYY-MM-DD" or "DD/MM/YYYY"
// form. Slash dates default to day-first; when the first value cannot be
// a day or the second cannot be a month, the two are swapped, so
// "04/26/2025" still resolves to 26 April 2025.
func ParseFlexibleDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)

	if t, err := time.Parse("2006-01-02", dateStr); err == nil {
		return t, nil
	}

	parts := strings.Split(dateStr, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
	}

	first, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
	}
	second, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil || year < 1000 {
		return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
	}

	day, month := first, second
	if month > 12 && day <= 12 {
		day, month = month, day
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("date out of range: %q", dateStr)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("date out of range: %q", dateStr)
	}
	return t, nil
}

// ParseClockTime parses a wall-clock time in "HH:MM" or "HH:MM:SS" form.
func ParseClockTime(clockStr string) (time.Time, error) {
	clockStr = strings.TrimSpace(clockStr)
	if t, err := time.Parse("15:04:05", clockStr); err == nil {
		return t, nil
	}
	t, err := time.Parse("15:04", clockStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized clock time: %q", clockStr)
	}
	return t, nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
