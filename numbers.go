package numeric

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// KeystrokeAllowed returns true for ASCII digits, the decimal separator and the negative sign.
// It does not check the position or count of separators and signs, Format deals with those.
func (d Descriptor) KeystrokeAllowed(r rune) bool {
	return isDigit(r) || r == d.decimalSep || r == d.negativeSign
}

// IsNegative returns true if the negative sign occurs anywhere in s.
func (d Descriptor) IsNegative(s string) bool {
	return s != "" && strings.ContainsRune(s, d.negativeSign)
}

// Format renders a raw edit-mode string (digits, decimal separator and negative sign) into its display form.
// Input is not validated: every negative sign is removed, the first decimal separator splits the integer and
// fraction parts and anything after a second separator is dropped. Other characters are passed through as is.
func (d Descriptor) Format(raw string) string {
	if raw == "" {
		return ""
	}
	return string(d.AppendFormat(nil, raw))
}

// AppendFormat appends the display form of raw to b.
func (d Descriptor) AppendFormat(b []byte, raw string) []byte {
	if raw == "" {
		return b
	}

	negative := d.IsNegative(raw)
	if negative {
		raw = strings.ReplaceAll(raw, string(d.negativeSign), "")
	}

	integer, fraction := d.split(raw)
	if d.kind == Percent {
		integer, fraction = scalePercent(integer, fraction)
	}
	integer, fraction = roundFraction(integer, fraction, d.precision)

	pattern := d.positivePattern
	if negative {
		pattern = d.negativePattern
	}
	idx := strings.IndexRune(pattern, Placeholder)
	if idx == -1 {
		// patterns are validated on construction
		idx = len(pattern)
	}

	b = append(b, pattern[:idx]...)
	b = d.appendGroups(b, integer)
	if 0 < d.precision {
		b = utf8.AppendRune(b, d.decimalSep)
		b = append(b, fraction...)
	}
	if idx < len(pattern) {
		b = append(b, pattern[idx+utf8.RuneLen(Placeholder):]...)
	}
	return b
}

// split returns the text before the first decimal separator and the text between it and the next one.
func (d Descriptor) split(s string) (string, string) {
	sep := string(d.decimalSep)
	idx := strings.Index(s, sep)
	if idx == -1 {
		return s, ""
	}
	integer, fraction := s[:idx], s[idx+len(sep):]
	if idx = strings.Index(fraction, sep); idx != -1 {
		fraction = fraction[:idx]
	}
	return integer, fraction
}

// scalePercent multiplies by 100 by moving the decimal point two places to the right.
func scalePercent(integer, fraction string) (string, string) {
	if len(fraction) < 2 {
		integer += fraction + "00"[len(fraction):]
		fraction = ""
	} else {
		integer += fraction[:2]
		fraction = fraction[2:]
	}
	return strings.TrimLeft(integer, "0"), strings.TrimRight(fraction, "0")
}

// roundFraction rounds half-up to prec fractional digits, carrying into the integer part when needed,
// or pads the fraction with zeros when it is too short.
func roundFraction(integer, fraction string, prec int) (string, string) {
	if len(fraction) <= prec {
		return integer, fraction + strings.Repeat("0", prec-len(fraction))
	}

	roundUp := '5' <= fraction[prec] && fraction[prec] <= '9'
	digits := []byte(fraction[:prec])
	if roundUp {
		var carry bool
		if digits, carry = increment(digits); carry {
			integerDigits, carry := increment([]byte(integer))
			if carry {
				integerDigits = append([]byte{'1'}, integerDigits...)
			}
			integer = string(integerDigits)
		}
	}
	return integer, string(digits)
}

// increment adds one to the decimal digits in b, it returns true if the carry went past the first digit.
// A non-digit stops the carry.
func increment(b []byte) ([]byte, bool) {
	for i := len(b) - 1; 0 <= i; i-- {
		if b[i] == '9' {
			b[i] = '0'
		} else if '0' <= b[i] && b[i] < '9' {
			b[i]++
			return b, false
		} else {
			return b, false
		}
	}
	return b, true
}

// appendGroups appends the integer part with group separators inserted from the right. The last group size
// repeats until the digits run out, unless it is zero in which case grouping stops.
func (d Descriptor) appendGroups(b []byte, integer string) []byte {
	if integer == "" {
		return append(b, '0')
	}

	digits := []rune(integer)
	var cuts []int
	if d.grouping() {
		i := 0
		pos := len(digits) - d.groupSizes[0]
		for 0 < pos {
			cuts = append(cuts, pos)
			if i < len(d.groupSizes)-1 {
				i++
			}
			size := d.groupSizes[i]
			if size == 0 {
				break
			}
			pos -= size
		}
	}

	j := len(cuts) - 1
	for i, r := range digits {
		if 0 <= j && i == cuts[j] {
			b = utf8.AppendRune(b, d.groupSep)
			j--
		}
		b = utf8.AppendRune(b, r)
	}
	return b
}

// NumberFormatter formats a raw edit-mode string using a descriptor when printed by the fmt package.
type NumberFormatter struct {
	Raw        string
	Descriptor Descriptor
}

func (f NumberFormatter) Format(state fmt.State, verb rune) {
	b := f.Descriptor.AppendFormat(nil, f.Raw)
	if width, ok := state.Width(); ok {
		if pad := width - utf8.RuneCount(b); 0 < pad {
			spaces := []byte(strings.Repeat(" ", pad))
			if state.Flag('-') {
				b = append(b, spaces...)
			} else {
				b = append(spaces, b...)
			}
		}
	}
	state.Write(b)
}
