package numeric

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

var (
	number   = MustDescriptor(Number, 2, '.', ',', []int{3}, '-', "n", "-n")
	usd      = MustDescriptor(Currency, 2, '.', ',', []int{3}, '-', "$n", "($n)")
	percent  = MustDescriptor(Percent, 0, '.', ',', []int{3}, '-', "n %", "-n %")
	euro     = MustDescriptor(Currency, 2, ',', '.', []int{3}, '-', "n €", "-n €")
	indian   = MustDescriptor(Number, 2, '.', ',', []int{3, 2}, '-', "n", "-n")
	stopping = MustDescriptor(Number, 0, '.', ',', []int{3, 0}, '-', "n", "-n")
	flat     = MustDescriptor(Number, 2, '.', ',', []int{0}, '-', "n", "-n")
	swedish  = MustDescriptor(Number, 2, ',', '\u00a0', []int{3}, '\u2212', "n", "\u2212n")
)

func withPrecision(d Descriptor, prec int) Descriptor {
	d.precision = prec
	return d
}

func TestFormat(t *testing.T) {
	tests := []struct {
		d   Descriptor
		raw string
		s   string
	}{
		{number, "", ""},
		{number, "0", "0.00"},
		{number, "1234.5", "1,234.50"},
		{number, "1234567.891", "1,234,567.89"},
		{number, "123", "123.00"},
		{number, ".5", "0.50"},
		{number, "5.", "5.00"},
		{number, "-12", "-12.00"},
		{number, "1.567", "1.57"},
		{number, "1.564", "1.56"},
		{number, "1.4", "1.40"},
		{number, "1.045", "1.05"},
		{number, "1.996", "2.00"},
		{number, "999.995", "1,000.00"},
		{number, "007", "007.00"},
		{withPrecision(number, 0), "1.5", "2"},
		{withPrecision(number, 0), "1.49", "1"},
		{withPrecision(number, 3), "1.5", "1.500"},
		{usd, "-1234.5", "($1,234.50)"},
		{usd, "1234.5", "$1,234.50"},
		{usd, "-", "($0.00)"},
		{euro, "-1234,5", "-1.234,50 €"},
		{euro, "1234,567", "1.234,57 €"},
		{indian, "12345678", "1,23,45,678.00"},
		{indian, "1234", "1,234.00"},
		{stopping, "1234567", "1234,567"},
		{stopping, "123", "123"},
		{flat, "1234567", "1234567.00"},
		{swedish, "\u22121234,5", "\u22121\u00a0234,50"},

		{percent, "0.5", "50 %"},
		{percent, "-0.5", "-50 %"},
		{percent, "12", "1,200 %"},
		{percent, "0.005", "1 %"},
		{withPrecision(percent, 1), "0.125", "12.5 %"},
		{withPrecision(percent, 2), "-0.0125", "-1.25 %"},
		{withPrecision(percent, 2), ".5", "50.00 %"},

		// the keystroke filter lets these through
		{number, "1.2.3", "1.20"},
		{number, "--5", "-5.00"},
		{number, "5-", "-5.00"},
		{number, "1a2", "1a2.00"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			test.T(t, tt.d.Format(tt.raw), tt.s)
		})
	}
}

func TestFormatDeterministic(t *testing.T) {
	for _, raw := range []string{"1234.5", "-0.001", "99.999", "1.2.3"} {
		test.T(t, usd.Format(raw), usd.Format(raw), raw)
	}
}

func TestFormatSign(t *testing.T) {
	for _, raw := range []string{"0", "-0", "12", "-12", "1234.5", "-1234.5", "-.5", "1-"} {
		t.Run(raw, func(t *testing.T) {
			test.T(t, number.IsNegative(number.Format(raw)), number.IsNegative(raw))
			test.T(t, euro.IsNegative(euro.Format(raw)), euro.IsNegative(raw))
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	descriptors := []Descriptor{number, usd, euro, indian, stopping, flat, swedish, withPrecision(number, 0), withPrecision(usd, 3)}
	inputs := []string{"0", "7", "0.5", "12.5", "1234.5678", "999.995", "-1234.5", "-0.004", "123456789.1", "-99.4449"}
	for _, d := range descriptors {
		toLocal := strings.NewReplacer(".", string(d.decimalSep), "-", string(d.negativeSign))
		for _, input := range inputs {
			raw := toLocal.Replace(input)
			t.Run(d.String()+" "+raw, func(t *testing.T) {
				pattern := d.positivePattern
				if d.IsNegative(raw) {
					pattern = d.negativePattern
				}
				idx := strings.IndexRune(pattern, Placeholder)
				prefix, suffix := pattern[:idx], pattern[idx+1:]

				s := d.Format(raw)
				test.That(t, strings.HasPrefix(s, prefix) && strings.HasSuffix(s, suffix), "must be wrapped in", pattern)
				s = strings.TrimSuffix(strings.TrimPrefix(s, prefix), suffix)
				s = strings.ReplaceAll(s, string(d.groupSep), "")

				rounded, err := d.ApplyRounding(raw, Rounding{1, d.precision})
				test.Error(t, err)
				test.T(t, s, strings.TrimPrefix(rounded, string(d.negativeSign)))
			})
		}
	}
}

func TestIsNegative(t *testing.T) {
	tests := []struct {
		d        Descriptor
		s        string
		negative bool
	}{
		{number, "", false},
		{number, "12", false},
		{number, "-12", true},
		{number, "12-", true},
		{number, "\u221212", false},
		{swedish, "\u221212", true},
		{swedish, "-12", false},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			test.T(t, tt.d.IsNegative(tt.s), tt.negative)
		})
	}
}

func TestKeystrokeAllowed(t *testing.T) {
	tests := []struct {
		d       Descriptor
		r       rune
		allowed bool
	}{
		{number, '0', true},
		{number, '9', true},
		{number, '.', true},
		{number, '-', true},
		{number, ',', false},
		{number, 'a', false},
		{number, ' ', false},
		{number, '+', false},
		{number, '٣', false}, // arabic-indic digit
		{euro, ',', true},
		{euro, '.', false},
		{swedish, '\u2212', true},
		{swedish, '-', false},
	}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			test.T(t, tt.d.KeystrokeAllowed(tt.r), tt.allowed)
		})
	}
}

func TestNumberFormatter(t *testing.T) {
	test.T(t, fmt.Sprintf("%v", NumberFormatter{"1234.5", number}), "1,234.50")
	test.T(t, fmt.Sprintf("%10v|", NumberFormatter{"1234.5", number}), "  1,234.50|")
	test.T(t, fmt.Sprintf("%-10v|", NumberFormatter{"1234.5", number}), "1,234.50  |")
	test.T(t, fmt.Sprintf("%v", NumberFormatter{"-1234.5", usd}), "($1,234.50)")
}

func TestAppendFormat(t *testing.T) {
	b := []byte("total: ")
	b = usd.AppendFormat(b, "12.5")
	test.T(t, string(b), "total: $12.50")
	test.T(t, string(usd.AppendFormat(nil, "")), "")
}
