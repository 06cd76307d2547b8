package datefield

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(year int, month time.Month, day int) *Date {
	d := NewDate(year, month, day)
	return &d
}

func TestNewRange(t *testing.T) {
	r, err := NewRange(datePtr(2023, time.January, 1), datePtr(2023, time.December, 31))
	require.NoError(t, err)
	assert.True(t, r.IsSet())

	_, err = NewRange(datePtr(2024, time.January, 1), datePtr(2023, time.December, 31))
	assert.ErrorIs(t, err, ErrInvalidRange)

	r, err = NewRange(datePtr(2024, time.May, 1), datePtr(2024, time.May, 1))
	require.NoError(t, err, "single-day range is valid")
	assert.True(t, r.Contains(NewDate(2024, time.May, 1)))

	r, err = NewRange(nil, nil)
	require.NoError(t, err)
	assert.False(t, r.IsSet())
}

func TestRange_Contains(t *testing.T) {
	r := Range{Min: datePtr(2023, time.January, 1), Max: datePtr(2023, time.December, 31)}

	assert.True(t, r.Contains(NewDate(2023, time.January, 1)), "min is inclusive")
	assert.True(t, r.Contains(NewDate(2023, time.December, 31)), "max is inclusive")
	assert.True(t, r.Contains(NewDate(2023, time.June, 15)))
	assert.False(t, r.Contains(NewDate(2022, time.December, 31)))
	assert.False(t, r.Contains(NewDate(2024, time.January, 1)))

	open := Range{Max: datePtr(2023, time.December, 31)}
	assert.True(t, open.Contains(NewDate(1, time.January, 1)))
	assert.False(t, open.Contains(NewDate(2024, time.January, 1)))
}

func TestRange_Clamp(t *testing.T) {
	r := Range{Min: datePtr(2023, time.January, 1), Max: datePtr(2023, time.December, 31)}

	assert.Equal(t, NewDate(2023, time.January, 1), r.Clamp(NewDate(2020, time.May, 5)))
	assert.Equal(t, NewDate(2023, time.December, 31), r.Clamp(NewDate(2030, time.May, 5)))
	assert.Equal(t, NewDate(2023, time.May, 5), r.Clamp(NewDate(2023, time.May, 5)))
	assert.Equal(t, NewDate(2030, time.May, 5), Range{}.Clamp(NewDate(2030, time.May, 5)))
}

func TestRange_String(t *testing.T) {
	r := Range{Min: datePtr(2023, time.January, 1), Max: datePtr(2023, time.December, 31)}
	assert.Equal(t, "01.01.2023 – 31.12.2023", r.String())
	assert.Equal(t, "… – 31.12.2023", Range{Max: r.Max}.String())
}

func TestValidate(t *testing.T) {
	r := Range{Min: datePtr(2023, time.January, 1), Max: datePtr(2023, time.December, 31)}

	d, err := Validate("24.12.2023", r)
	require.NoError(t, err)
	assert.Equal(t, NewDate(2023, time.December, 24), d)

	_, err = Validate("01.01.2024", r)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Validate("31.02.2023", r)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
