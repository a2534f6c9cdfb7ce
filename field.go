package numeric

import (
	"log"
)

// Display is the element that shows the formatted value.
type Display interface {
	SetText(string)
	SetClass(class string, on bool)
	Show()
	Hide()
}

// Input is the plain-text element holding the edit-mode value.
type Input interface {
	Value() string
	SetValue(string)
	Focused() bool
	Focus()
	Colors() (color, background string)
	SetColors(color, background string)
}

// Transparent is the color used to hide the input text while the display is shown.
const Transparent = "transparent"

// State of a field.
type State int

const (
	Viewing State = iota
	Editing
)

func (s State) String() string {
	if s == Editing {
		return "editing"
	}
	return "viewing"
}

// FieldOption configures a field.
type FieldOption func(*Field)

// WithRounding rounds the value to the nearest multiple of r whenever it changes while editing.
func WithRounding(r Rounding) FieldOption {
	return func(f *Field) {
		f.rounding = r
	}
}

// WithDefault sets the value shown by Seed when the model value is absent.
func WithDefault(v any) FieldOption {
	return func(f *Field) {
		f.def = v
	}
}

// Field is the interaction state machine of one numeric input and its display. Its handlers are called by the
// UI event loop of the field and must not be called concurrently.
type Field struct {
	descriptor Descriptor
	display    Display
	input      Input
	rounding   Rounding
	def        any

	color, background string
	state             State
}

// NewField binds a descriptor to the elements of one field. The display is expected to be seeded already or
// through Seed; the input text is made transparent so that only the display is legible.
func NewField(d Descriptor, display Display, input Input, opts ...FieldOption) *Field {
	f := &Field{
		descriptor: d,
		display:    display,
		input:      input,
		state:      Viewing,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.color, f.background = input.Colors()
	input.SetColors(Transparent, Transparent)
	return f
}

func (f *Field) Descriptor() Descriptor {
	return f.descriptor
}

func (f *Field) State() State {
	return f.state
}

// Seed sets the input value and the display text from the model value v. A nil value or nil pointer shows the
// default value, if any.
func (f *Field) Seed(v any) error {
	if isNil(v) {
		v = f.def
	}
	raw, err := f.descriptor.SeedRaw(v)
	if err != nil {
		return err
	}
	f.input.SetValue(raw)
	f.display.SetText(f.descriptor.Format(raw))
	f.display.SetClass("negative", f.descriptor.IsNegative(raw))
	return nil
}

// MouseDown handles a click on the display. It focuses the input, whose focus event switches to editing.
func (f *Field) MouseDown() {
	if !f.input.Focused() {
		f.input.Focus()
	}
}

// Focus handles the input gaining focus: the display is hidden and the input colors are restored.
func (f *Field) Focus() {
	f.display.Hide()
	f.input.SetColors(f.color, f.background)
	f.state = Editing
}

// KeyPress returns false if the character must be suppressed.
func (f *Field) KeyPress(r rune) bool {
	return f.descriptor.KeystrokeAllowed(r)
}

// Change handles a committed value change of the input by applying the rounding unit, if any.
func (f *Field) Change() {
	if f.rounding.IsZero() {
		return
	}
	rounded, err := f.descriptor.ApplyRounding(f.input.Value(), f.rounding)
	if err != nil {
		log.Printf("INFO: numeric: rounding skipped: %v\n", err)
		return
	}
	f.input.SetValue(rounded)
}

// Blur handles the input losing focus: the display text is formatted from the input value and shown again.
func (f *Field) Blur() {
	value := f.input.Value()
	f.display.SetText(f.descriptor.Format(value))
	f.display.SetClass("negative", f.descriptor.IsNegative(value))
	f.input.SetColors(Transparent, Transparent)
	f.display.Show()
	f.state = Viewing
}

// FormattedValue returns the display string of raw.
func (f *Field) FormattedValue(raw string) string {
	return f.descriptor.Format(raw)
}

// IsNumberNegative returns true if raw holds the negative sign.
func (f *Field) IsNumberNegative(raw string) bool {
	return f.descriptor.IsNegative(raw)
}
