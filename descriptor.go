package numeric

import (
	"fmt"
	"strings"
)

// Placeholder is the token in a pattern template that is replaced by the formatted number.
const Placeholder = 'n'

// Descriptor holds the locale-derived formatting rules of one numeric field. It is immutable once created.
type Descriptor struct {
	kind            Kind
	precision       int
	decimalSep      rune
	groupSep        rune
	groupSizes      []int
	negativeSign    rune
	positivePattern string
	negativePattern string
}

// NewDescriptor validates the fields and returns a descriptor. A groupSizes of [0] disables grouping,
// a trailing 0 stops grouping after the preceding sizes have been applied.
func NewDescriptor(kind Kind, precision int, decimalSep, groupSep rune, groupSizes []int, negativeSign rune, positivePattern, negativePattern string) (Descriptor, error) {
	d := Descriptor{
		kind:            kind,
		precision:       precision,
		decimalSep:      decimalSep,
		groupSep:        groupSep,
		groupSizes:      append([]int(nil), groupSizes...),
		negativeSign:    negativeSign,
		positivePattern: positivePattern,
		negativePattern: negativePattern,
	}
	if err := d.validate(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

// MustDescriptor is like NewDescriptor but panics on error.
func MustDescriptor(kind Kind, precision int, decimalSep, groupSep rune, groupSizes []int, negativeSign rune, positivePattern, negativePattern string) Descriptor {
	d, err := NewDescriptor(kind, precision, decimalSep, groupSep, groupSizes, negativeSign, positivePattern, negativePattern)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Descriptor) validate() error {
	if !d.kind.valid() {
		return fmt.Errorf("%w: unknown kind %v", ErrInvalidDescriptor, d.kind)
	} else if d.precision < 0 || maxPrecision < d.precision {
		return fmt.Errorf("%w: precision %d out of range", ErrInvalidDescriptor, d.precision)
	} else if len(d.groupSizes) == 0 {
		return fmt.Errorf("%w: no group sizes", ErrInvalidDescriptor)
	}
	for i, size := range d.groupSizes {
		if size < 0 || size == 0 && i != len(d.groupSizes)-1 {
			return fmt.Errorf("%w: group sizes %v", ErrInvalidDescriptor, d.groupSizes)
		}
	}
	if isDigit(d.decimalSep) || d.decimalSep == 0 {
		return fmt.Errorf("%w: decimal separator %q", ErrInvalidDescriptor, d.decimalSep)
	} else if isDigit(d.negativeSign) || d.negativeSign == 0 || d.negativeSign == d.decimalSep {
		return fmt.Errorf("%w: negative sign %q", ErrInvalidDescriptor, d.negativeSign)
	} else if d.grouping() && (isDigit(d.groupSep) || d.groupSep == 0 || d.groupSep == d.decimalSep) {
		return fmt.Errorf("%w: group separator %q", ErrInvalidDescriptor, d.groupSep)
	}
	if err := validatePattern(d.positivePattern); err != nil {
		return err
	}
	return validatePattern(d.negativePattern)
}

func validatePattern(pattern string) error {
	if strings.Count(pattern, string(Placeholder)) != 1 {
		return fmt.Errorf("%w: %q must contain exactly one %q", ErrInvalidPattern, pattern, Placeholder)
	}
	for _, r := range pattern {
		if isDigit(r) {
			return fmt.Errorf("%w: %q contains a digit", ErrInvalidPattern, pattern)
		}
	}
	return nil
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func (d Descriptor) Kind() Kind {
	return d.kind
}

func (d Descriptor) Precision() int {
	return d.precision
}

func (d Descriptor) DecimalSeparator() rune {
	return d.decimalSep
}

func (d Descriptor) GroupSeparator() rune {
	return d.groupSep
}

// GroupSizes returns a copy of the group size sequence.
func (d Descriptor) GroupSizes() []int {
	return append([]int(nil), d.groupSizes...)
}

func (d Descriptor) NegativeSign() rune {
	return d.negativeSign
}

func (d Descriptor) PositivePattern() string {
	return d.positivePattern
}

func (d Descriptor) NegativePattern() string {
	return d.negativePattern
}

// grouping is false when the first group size is zero.
func (d Descriptor) grouping() bool {
	return 0 < len(d.groupSizes) && d.groupSizes[0] != 0
}

// DisplayClasses returns the CSS classes of the display element.
func (d Descriptor) DisplayClasses(negative bool) []string {
	classes := []string{"numeric-text", d.kind.String()}
	if negative {
		classes = append(classes, "negative")
	}
	return classes
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%v{precision=%d decimal=%q group=%q sizes=%v negative=%q %q %q}", d.kind, d.precision, d.decimalSep, d.groupSep, d.groupSizes, d.negativeSign, d.positivePattern, d.negativePattern)
}
