package main

import (
	"bytes"
	"testing"

	"github.com/tdewolff/test"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		locale   string
		kind     string
		format   string
		rounding string
		raw      bool
		attrs    bool
		args     []string
		out      string
	}{
		{"number", "en-US", "number", "", "", false, false, []string{"1234.5", "-7"}, "1,234.50\n-7.00\n"},
		{"format", "en-US", "n", "{0:N0}", "", false, false, []string{"1234.5"}, "1,235\n"},
		{"round", "en-US", "currency", "", "0.25", false, false, []string{"1.3"}, "$1.25\n"},
		{"raw", "de", "c", "", "", true, false, []string{"-1234,5"}, "-1.234,50 €\n"},
		{"attrs", "en_US", "number", "", "", false, true, nil, `data-decimalSeperator="2E"
data-groupSeperator="2C"
data-groupSizes="3"
data-negativePattern="-n"
data-negativeSign="2D"
data-positivePattern="n"
data-precision="2"
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := run(&buf, tt.locale, tt.kind, tt.format, "", tt.rounding, tt.raw, tt.attrs, tt.args)
			test.Error(t, err)
			test.T(t, buf.String(), tt.out)
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		rounding string
		args     []string
	}{
		{"kind", "weight", "", nil},
		{"rounding", "number", "x", nil},
		{"value", "number", "", []string{"12a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := run(&buf, "en", tt.kind, "", "", tt.rounding, false, false, tt.args)
			test.That(t, err != nil, "must fail")
		})
	}
}
