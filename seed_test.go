package numeric

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestSeedRaw(t *testing.T) {
	f := -0.25
	var nilFloat *float64
	tests := []struct {
		d   Descriptor
		v   any
		raw string
	}{
		{number, 1234.5, "1234.5"},
		{number, -1234.5, "-1234.5"},
		{number, float32(0.5), "0.5"},
		{number, 42, "42"},
		{number, int8(-3), "-3"},
		{number, uint64(18446744073709551615), "18446744073709551615"},
		{number, &f, "-0.25"},
		{number, nilFloat, ""},
		{number, nil, ""},
		{euro, -1234.5, "-1234,5"},
		{swedish, -1234.5, "−1234,5"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			raw, err := tt.d.SeedRaw(tt.v)
			test.Error(t, err)
			test.T(t, raw, tt.raw)
		})
	}
}

func TestSeedRawInvalid(t *testing.T) {
	for _, v := range []any{"12", true, math.NaN(), math.Inf(1)} {
		_, err := number.SeedRaw(v)
		test.That(t, errors.Is(err, ErrInvalidFormat), "must fail for", v)
	}
}

func TestSeed(t *testing.T) {
	tests := []struct {
		d Descriptor
		v any
		s string
	}{
		{usd, -1234.5, "($1,234.50)"},
		{usd, 0, "$0.00"},
		{percent, 0.5, "50 %"},
		{euro, 1234567.891, "1.234.567,89 €"},
		{indian, int64(12345678), "1,23,45,678.00"},
		{number, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			s, err := tt.d.Seed(tt.v)
			test.Error(t, err)
			test.T(t, s, tt.s)

			// the display must agree with what the client renders from the input value
			raw, _ := tt.d.SeedRaw(tt.v)
			test.T(t, s, tt.d.Format(raw))
		})
	}
}

func TestSeedOr(t *testing.T) {
	var nilFloat *float64
	amount := 12.5
	tests := []struct {
		v   any
		def any
		s   string
	}{
		{nil, 0, "$0.00"},
		{nilFloat, -5, "($5.00)"},
		{&amount, 0, "$12.50"},
		{amount, 99, "$12.50"},
		{nil, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			s, err := usd.SeedOr(tt.v, tt.def)
			test.Error(t, err)
			test.T(t, s, tt.s)
		})
	}

	_, err := usd.SeedOr(nil, "zero")
	test.That(t, errors.Is(err, ErrInvalidFormat), "default must be numeric")
}

func TestCanonical(t *testing.T) {
	test.T(t, euro.Canonical("-1234,5"), "-1234.5")
	test.T(t, swedish.Canonical("−1234,5"), "-1234.5")
	test.T(t, number.Canonical("-1.5"), "-1.5")
}
