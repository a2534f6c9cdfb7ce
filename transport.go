package numeric

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	parseStrconv "github.com/tdewolff/parse/v2/strconv"
)

// Attribute keys of the descriptor as attached to the container element. The spelling of the separator keys
// is kept for compatibility with existing client scripts.
const (
	AttrPrecision        = "data-precision"
	AttrDecimalSeparator = "data-decimalSeperator"
	AttrNegativeSign     = "data-negativeSign"
	AttrGroupSeparator   = "data-groupSeperator"
	AttrGroupSizes       = "data-groupSizes"
	AttrPositivePattern  = "data-positivePattern"
	AttrNegativePattern  = "data-negativePattern"
)

// EncodeRune encodes a character as its code point in upper-case hexadecimal.
func EncodeRune(r rune) string {
	return strings.ToUpper(strconv.FormatInt(int64(r), 16))
}

// DecodeRune decodes a hexadecimal code point.
func DecodeRune(s string) (rune, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if s == "" {
		return 0, fmt.Errorf("%w: empty code point", ErrInvalidAttribute)
	}
	u, err := strconv.ParseUint(s, 16, 32)
	if err != nil || !utf8.ValidRune(rune(u)) {
		return 0, fmt.Errorf("%w: code point %q", ErrInvalidAttribute, s)
	}
	return rune(u), nil
}

// Attributes returns the descriptor as string attributes. The group separator and sizes are left out when
// grouping is disabled.
func (d Descriptor) Attributes() map[string]string {
	attrs := map[string]string{
		AttrPrecision:        strconv.Itoa(d.precision),
		AttrDecimalSeparator: EncodeRune(d.decimalSep),
		AttrNegativeSign:     EncodeRune(d.negativeSign),
		AttrPositivePattern:  d.positivePattern,
		AttrNegativePattern:  d.negativePattern,
	}
	if d.grouping() {
		sizes := make([]string, len(d.groupSizes))
		for i, size := range d.groupSizes {
			sizes[i] = strconv.Itoa(size)
		}
		attrs[AttrGroupSeparator] = EncodeRune(d.groupSep)
		attrs[AttrGroupSizes] = strings.Join(sizes, ",")
	}
	return attrs
}

// DefaultDescriptor returns the descriptor a client assumes when the container carries no attributes.
func DefaultDescriptor(kind Kind) Descriptor {
	positive, negative := "n", "-n"
	switch kind {
	case Currency:
		positive, negative = "$n", "($n)"
	case Percent:
		positive, negative = "n %", "-n %"
	}
	return MustDescriptor(kind, 2, '.', ',', []int{3}, '-', positive, negative)
}

// DecodeAttributes rebuilds a descriptor from container attributes. Keys are matched case-insensitively and
// with or without the "data-" prefix. The kind is taken from the CSS classes of the display element, and
// absent attributes keep the values of DefaultDescriptor. When the precision is given but the group sizes
// are not, the descriptor was emitted without grouping and grouping is disabled.
func DecodeAttributes(attrs map[string]string, classes ...string) (Descriptor, error) {
	norm := make(map[string]string, len(attrs))
	for k, v := range attrs {
		k = strings.ToLower(k)
		k = strings.TrimPrefix(k, "data-")
		norm[k] = v
	}
	get := func(key string) (string, bool) {
		v, ok := norm[strings.ToLower(strings.TrimPrefix(key, "data-"))]
		return v, ok
	}

	d := DefaultDescriptor(KindFromClasses(classes...))
	if v, ok := get(AttrPrecision); ok {
		b := []byte(strings.TrimSpace(v))
		prec, n := parseStrconv.ParseUint(b)
		if n == 0 || n != len(b) || maxPrecision < prec {
			return Descriptor{}, fmt.Errorf("%w: %s %q", ErrInvalidAttribute, AttrPrecision, v)
		}
		d.precision = int(prec)
	}

	var err error
	if v, ok := get(AttrDecimalSeparator); ok {
		if d.decimalSep, err = DecodeRune(v); err != nil {
			return Descriptor{}, fmt.Errorf("%s: %w", AttrDecimalSeparator, err)
		}
	}
	if v, ok := get(AttrNegativeSign); ok {
		if d.negativeSign, err = DecodeRune(v); err != nil {
			return Descriptor{}, fmt.Errorf("%s: %w", AttrNegativeSign, err)
		}
	}
	if v, ok := get(AttrGroupSeparator); ok {
		if d.groupSep, err = DecodeRune(v); err != nil {
			return Descriptor{}, fmt.Errorf("%s: %w", AttrGroupSeparator, err)
		}
	}
	if v, ok := get(AttrGroupSizes); ok {
		if d.groupSizes, err = decodeGroupSizes(v); err != nil {
			return Descriptor{}, err
		}
	} else if _, ok := get(AttrPrecision); ok {
		d.groupSizes = []int{0}
	}
	if v, ok := get(AttrPositivePattern); ok {
		d.positivePattern = v
	}
	if v, ok := get(AttrNegativePattern); ok {
		d.negativePattern = v
	}

	if err := d.validate(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

func decodeGroupSizes(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	sizes := make([]int, 0, len(fields))
	for _, field := range fields {
		b := []byte(strings.TrimSpace(field))
		size, n := parseStrconv.ParseUint(b)
		if n == 0 || n != len(b) || 1<<16 < size {
			return nil, fmt.Errorf("%w: %s %q", ErrInvalidAttribute, AttrGroupSizes, s)
		}
		sizes = append(sizes, int(size))
	}
	return sizes, nil
}
