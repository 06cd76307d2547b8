package datefield

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		date     Date
		expected string
	}{
		{"picker selection", NewDate(2023, time.October, 31), "31.10.2023"},
		{"single digit day and month", NewDate(2025, time.March, 7), "07.03.2025"},
		{"christmas eve", NewDate(2024, time.December, 24), "24.12.2024"},
		{"leap day", NewDate(2024, time.February, 29), "29.02.2024"},
		{"small year is padded", NewDate(987, time.January, 1), "01.01.0987"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.date))
		})
	}
}

func TestFormat_FixedWidth(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

	d := NewDate(1950, time.January, 1)
	end := NewDate(2050, time.December, 31)
	for !d.After(end) {
		require.Regexp(t, pattern, Format(d), "date %s", d.ISO())
		d = d.AddDays(13)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	d := NewDate(1950, time.January, 1)
	end := NewDate(2050, time.December, 31)
	for !d.After(end) {
		parsed, err := Parse(Format(d))
		require.NoError(t, err, "date %s", d.ISO())
		require.Equal(t, d, parsed)
		d = d.AddDays(1)
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
	}{
		{"24.12.2024", NewDate(2024, time.December, 24)},
		{"01.01.2024", NewDate(2024, time.January, 1)},
		{"29.02.2024", NewDate(2024, time.February, 29)},
		{"1.2.2024", NewDate(2024, time.February, 1)},
		{"9.12.2024", NewDate(2024, time.December, 9)},
		{"31.12.9999", NewDate(9999, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"free text", "invalid-date"},
		{"empty", ""},
		{"iso order", "2024-12-24"},
		{"two tokens", "24.12"},
		{"four tokens", "24.12.2024.1"},
		{"trailing dot", "24.12.2024."},
		{"two digit year", "24.12.24"},
		{"five digit year", "24.12.20245"},
		{"three digit day", "024.12.2024"},
		{"empty day", ".12.2024"},
		{"letters", "aa.bb.cccc"},
		{"signed day", "+1.12.2024"},
		{"space padded", " 1.12.2024"},
		{"day zero", "00.12.2024"},
		{"month zero", "10.00.2024"},
		{"month thirteen", "10.13.2024"},
		{"february overflow", "31.02.2024"},
		{"non leap february", "29.02.2023"},
		{"thirty day month", "31.04.2024"},
		{"century non leap", "29.02.1900"},
		{"slashes", "24/12/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestParse_LeapCentury(t *testing.T) {
	d, err := Parse("29.02.2000")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2000, time.February, 29), d)
}
