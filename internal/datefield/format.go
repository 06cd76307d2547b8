package datefield

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidInput is returned for text that is not a DD.MM.YYYY calendar date.
	ErrInvalidInput = errors.New("invalid date")
	// ErrOutOfRange is returned when a date falls outside the field's range.
	ErrOutOfRange = errors.New("date out of range")
	// ErrInvalidRange is returned when min is after max.
	ErrInvalidRange = errors.New("invalid date range")
)

// Format renders d as DD.MM.YYYY with every field zero-padded.
func Format(d Date) string {
	return fmt.Sprintf("%02d.%02d.%04d", d.Day, int(d.Month), d.Year)
}

// Parse is the inverse of Format. Day and month may be given with one or
// two digits, the year must have exactly four. Dates that do not exist in
// the Gregorian calendar are rejected rather than rolled over.
func Parse(s string) (Date, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q is not DD.MM.YYYY", ErrInvalidInput, s)
	}

	day, err := parseDigits(parts[0], 1, 2)
	if err != nil {
		return Date{}, fmt.Errorf("%w: day %q", ErrInvalidInput, parts[0])
	}
	month, err := parseDigits(parts[1], 1, 2)
	if err != nil {
		return Date{}, fmt.Errorf("%w: month %q", ErrInvalidInput, parts[1])
	}
	year, err := parseDigits(parts[2], 4, 4)
	if err != nil {
		return Date{}, fmt.Errorf("%w: year %q", ErrInvalidInput, parts[2])
	}

	d := NewDate(year, time.Month(month), day)
	if !d.Valid() {
		return Date{}, fmt.Errorf("%w: %s does not exist", ErrInvalidInput, s)
	}
	return d, nil
}

// parseDigits accepts only ASCII digits, so signs and spaces that
// strconv.Atoi would tolerate are refused.
func parseDigits(s string, minLen, maxLen int) (int, error) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, fmt.Errorf("want %d-%d digits, got %d", minLen, maxLen, len(s))
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-digit %q", s[i])
		}
	}
	return strconv.Atoi(s)
}
