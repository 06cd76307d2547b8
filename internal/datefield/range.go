package datefield

import "fmt"

// Range is an optional inclusive date interval. A nil bound is open.
type Range struct {
	Min *Date
	Max *Date
}

// NewRange validates that min is not after max.
func NewRange(minDate, maxDate *Date) (Range, error) {
	if minDate != nil && maxDate != nil && minDate.After(*maxDate) {
		return Range{}, fmt.Errorf("%w: min %s is after max %s", ErrInvalidRange, minDate.ISO(), maxDate.ISO())
	}
	return Range{Min: minDate, Max: maxDate}, nil
}

// IsSet reports whether at least one bound is present.
func (r Range) IsSet() bool {
	return r.Min != nil || r.Max != nil
}

// Contains reports whether d lies within the bounds, inclusive.
func (r Range) Contains(d Date) bool {
	if r.Min != nil && d.Before(*r.Min) {
		return false
	}
	if r.Max != nil && d.After(*r.Max) {
		return false
	}
	return true
}

// Clamp moves d onto the nearest bound when it lies outside the range.
func (r Range) Clamp(d Date) Date {
	if r.Min != nil && d.Before(*r.Min) {
		return *r.Min
	}
	if r.Max != nil && d.After(*r.Max) {
		return *r.Max
	}
	return d
}

func (r Range) String() string {
	lo, hi := "…", "…"
	if r.Min != nil {
		lo = Format(*r.Min)
	}
	if r.Max != nil {
		hi = Format(*r.Max)
	}
	return lo + " – " + hi
}

// Validate parses raw and checks it against r. The error wraps
// ErrInvalidInput or ErrOutOfRange.
func Validate(raw string, r Range) (Date, error) {
	d, err := Parse(raw)
	if err != nil {
		return Date{}, err
	}
	if !r.Contains(d) {
		return Date{}, fmt.Errorf("%w: %s not in %s", ErrOutOfRange, Format(d), r)
	}
	return d, nil
}
