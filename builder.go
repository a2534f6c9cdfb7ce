package numeric

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var formatRegexp = regexp.MustCompile(`(?i)\{\d:([CNP])(\d{0,2})\}`)

// DefaultFormat returns the format string used when no explicit display format is configured.
// Integer values are displayed without decimals.
func DefaultFormat(kind Kind, t reflect.Type) string {
	if t != nil && isInteger(t) {
		return "{0:" + string(kind.letter()) + "0}"
	}
	return "{0:" + string(kind.letter()) + "}"
}

// FormatPrecision extracts the precision of a format string such as {0:C2} when its specifier matches kind.
func FormatPrecision(kind Kind, format string) (int, bool) {
	for _, m := range formatRegexp.FindAllStringSubmatch(format, -1) {
		if !strings.EqualFold(m[1], string(kind.letter())) || m[2] == "" {
			continue
		}
		prec, err := strconv.Atoi(m[2])
		if err != nil || maxPrecision < prec {
			return 0, false
		}
		return prec, true
	}
	return 0, false
}

// BuildDescriptor returns the descriptor of a field of kind holding values of type t, using the locale's rules.
// An explicit format string such as {0:C0} overrides the locale's precision. It fails with ErrInvalidFormat
// for non-numeric types.
func BuildDescriptor(kind Kind, t reflect.Type, rules LocaleNumberRules, format string) (Descriptor, error) {
	if !IsNumeric(t) {
		return Descriptor{}, fmt.Errorf("%w: type %v", ErrInvalidFormat, t)
	} else if !kind.valid() {
		return Descriptor{}, fmt.Errorf("%w: %v", ErrInvalidFormat, kind)
	}
	if format == "" {
		format = DefaultFormat(kind, t)
	}

	kr := rules.Kind(kind)
	precision := kr.DecimalDigits
	if prec, ok := FormatPrecision(kind, format); ok {
		precision = prec
	}

	groupSizes := kr.GroupSizes
	if len(groupSizes) == 0 {
		groupSizes = []int{0}
	}
	positive, negative := rules.Patterns(kind)
	return NewDescriptor(kind, precision, kr.DecimalSeparator, kr.GroupSeparator, groupSizes, rules.NegativeSign, positive, negative)
}

// DescriptorFor is like BuildDescriptor but takes the type from a model value.
func DescriptorFor(kind Kind, v any, rules LocaleNumberRules, format string) (Descriptor, error) {
	return BuildDescriptor(kind, reflect.TypeOf(v), rules, format)
}
