package datefield

import (
	"fmt"
	"log/slog"

	"github.com/MikeBiancalana/datefield/internal/logger"
)

// State is the externally visible state of a Field. A rejected commit
// collapses to StateEmpty, so there is no separate rejected state.
type State int

const (
	StateEmpty State = iota
	StateValid
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateValid:
		return "valid"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// TextSurface is the text input the field writes its display text into.
type TextSurface interface {
	SetValue(string)
	Value() string
}

// PickerSurface is the pop-up calendar the field mediates.
type PickerSurface interface {
	SetRange(Range)
	SetDate(Date)
	Open()
	Close()
	IsOpen() bool
}

// Field keeps a date value and its DD.MM.YYYY display text in sync.
// It is not safe for concurrent use; callers drive it from a single
// event loop.
type Field struct {
	text   TextSurface
	picker PickerSurface
	log    *slog.Logger
	today  func() Date

	bounds   Range
	value    *Date
	dateText string
}

// Option configures a Field at construction time.
type Option func(*fieldOptions)

type fieldOptions struct {
	min, max *Date
	initial  *Date
	log      *slog.Logger
	today    func() Date
}

// WithMin sets the inclusive lower bound.
func WithMin(d Date) Option {
	return func(o *fieldOptions) { o.min = &d }
}

// WithMax sets the inclusive upper bound.
func WithMax(d Date) Option {
	return func(o *fieldOptions) { o.max = &d }
}

// WithRange copies both bounds from r.
func WithRange(r Range) Option {
	return func(o *fieldOptions) {
		o.min, o.max = r.Min, r.Max
	}
}

// WithInitial starts the field in the valid state.
func WithInitial(d Date) Option {
	return func(o *fieldOptions) { o.initial = &d }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *fieldOptions) { o.log = l }
}

// WithClock overrides how the field learns today's date, which seeds the
// picker while the field is empty.
func WithClock(today func() Date) Option {
	return func(o *fieldOptions) { o.today = today }
}

// New creates a field bound to the given surfaces. Either surface may be
// nil when the embedder has no such widget.
func New(text TextSurface, picker PickerSurface, opts ...Option) (*Field, error) {
	o := fieldOptions{today: Today}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.GetLogger()
	}

	bounds, err := NewRange(o.min, o.max)
	if err != nil {
		return nil, err
	}

	if text == nil {
		text = &nopText{}
	}
	if picker == nil {
		picker = &nopPicker{}
	}

	f := &Field{
		text:   text,
		picker: picker,
		log:    o.log.With("component", "datefield"),
		today:  o.today,
		bounds: bounds,
	}
	f.picker.SetRange(bounds)

	if o.initial != nil {
		if !o.initial.Valid() {
			return nil, fmt.Errorf("%w: initial %+v", ErrInvalidInput, *o.initial)
		}
		if !bounds.Contains(*o.initial) {
			return nil, fmt.Errorf("%w: initial %s not in %s", ErrOutOfRange, Format(*o.initial), bounds)
		}
		f.setValid(*o.initial)
	} else {
		f.setEmpty()
	}

	return f, nil
}

// Value returns the current date and whether one is set.
func (f *Field) Value() (Date, bool) {
	if f.value == nil {
		return Date{}, false
	}
	return *f.value, true
}

// Text returns the display text as of the last synchronisation.
func (f *Field) Text() string {
	return f.dateText
}

func (f *Field) State() State {
	if f.value == nil {
		return StateEmpty
	}
	return StateValid
}

func (f *Field) Range() Range {
	return f.bounds
}

func (f *Field) PickerOpen() bool {
	return f.picker.IsOpen()
}

// SelectFromPicker applies a date chosen in the calendar and closes it.
// A date outside the range resets the field to empty, like a typed one.
func (f *Field) SelectFromPicker(d Date) {
	defer f.picker.Close()
	if !d.Valid() || !f.bounds.Contains(d) {
		f.log.Debug("rejecting picker selection", "date", d.ISO(), "range", f.bounds.String())
		f.setEmpty()
		return
	}
	f.setValid(d)
}

// CommitTypedText reconciles raw, the text as typed, into the value.
// Empty, malformed and out-of-range input all leave the field empty.
func (f *Field) CommitTypedText(raw string) {
	if raw == "" {
		f.setEmpty()
		return
	}

	d, err := Validate(raw, f.bounds)
	if err != nil {
		f.log.Debug("rejecting typed date", "input", raw, "error", err)
		f.setEmpty()
		return
	}

	f.setValid(d)
}

// Commit reads the text surface and commits it. Embedders call this when
// the input loses focus.
func (f *Field) Commit() {
	f.CommitTypedText(f.text.Value())
}

// Clear resets the field to empty.
func (f *Field) Clear() {
	f.setEmpty()
}

// SetValue assigns the value from outside, following the same rules as a
// typed commit. A nil date clears the field.
func (f *Field) SetValue(d *Date) {
	if d == nil {
		f.setEmpty()
		return
	}
	if !d.Valid() || !f.bounds.Contains(*d) {
		f.log.Debug("rejecting assigned date", "date", d.ISO(), "range", f.bounds.String())
		f.setEmpty()
		return
	}
	f.setValid(*d)
}

// OpenPicker opens the calendar positioned on the current value, or on
// today moved into range when the field is empty.
func (f *Field) OpenPicker() {
	cursor := f.bounds.Clamp(f.today())
	if f.value != nil {
		cursor = *f.value
	}
	f.picker.SetDate(cursor)
	f.picker.Open()
}

func (f *Field) ClosePicker() {
	f.picker.Close()
}

func (f *Field) TogglePicker() {
	if f.picker.IsOpen() {
		f.ClosePicker()
		return
	}
	f.OpenPicker()
}

func (f *Field) setValid(d Date) {
	f.value = &d
	f.sync()
}

func (f *Field) setEmpty() {
	f.value = nil
	f.sync()
}

// sync derives the display text from the value and pushes it to the
// text surface. Every state change ends here.
func (f *Field) sync() {
	if f.value == nil {
		f.dateText = ""
	} else {
		f.dateText = Format(*f.value)
	}
	f.text.SetValue(f.dateText)
}

type nopText struct{ v string }

func (t *nopText) SetValue(s string) { t.v = s }
func (t *nopText) Value() string     { return t.v }

type nopPicker struct{ open bool }

func (p *nopPicker) SetRange(Range) {}
func (p *nopPicker) SetDate(Date)   {}
func (p *nopPicker) Open()          { p.open = true }
func (p *nopPicker) Close()         { p.open = false }
func (p *nopPicker) IsOpen() bool   { return p.open }
