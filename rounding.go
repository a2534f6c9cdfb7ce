package numeric

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2/strconv"
)

// maxPrecision is the largest number of fractional digits that fits the fixed-point arithmetic.
const maxPrecision = 18

var int64Scales = [...]int64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000, // 1e6
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000, // 1e12
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000, // 1e18
}

// ParseRounding parses a rounding unit such as "0.25" or "5". Both '.' and ',' are accepted as decimal separator.
func ParseRounding(s string) (Rounding, error) {
	b := []byte(strings.TrimSpace(s))
	decSym := '.'
	if strings.ContainsRune(s, ',') {
		decSym = ','
	}
	unit, dec, n := strconv.ParseNumber(b, 0, decSym)
	if n == 0 || n != len(b) {
		return Rounding{}, fmt.Errorf("invalid rounding unit: %v", s)
	} else if unit <= 0 {
		return Rounding{}, fmt.Errorf("invalid rounding unit: %v must be positive", s)
	}
	return Rounding{unit, dec}, nil
}

// Rounding is a unit to round to, such as 0.25. The zero value performs no rounding.
type Rounding struct {
	unit int64
	dec  int
}

func (r Rounding) IsZero() bool {
	return r.unit == 0
}

func (r Rounding) String() string {
	if r.unit == 0 {
		return ""
	}
	return string(strconv.AppendNumber(nil, r.unit, r.dec, 0, 0, '.'))
}

// ApplyRounding rounds a raw edit-mode string to the nearest multiple of the rounding unit and renders it with
// the descriptor's precision, decimal separator and negative sign. Halves round away from zero.
// The raw string is returned unchanged for a zero rounding unit.
func (d Descriptor) ApplyRounding(raw string, r Rounding) (string, error) {
	if r.IsZero() {
		return raw, nil
	}

	s := strings.TrimSpace(raw)
	negative := d.IsNegative(s)
	if negative {
		s = strings.ReplaceAll(s, string(d.negativeSign), "")
	}
	if s == "" {
		return raw, nil
	}

	b := []byte(s)
	num, dec, n := strconv.ParseNumber(b, 0, d.decimalSep)
	if n != len(b) {
		return raw, fmt.Errorf("invalid number: %v", raw)
	}

	// bring both to a common scale
	unit := r.unit
	scale := dec
	if scale < r.dec {
		scale = r.dec
	}
	var err error
	if num, err = rescale(num, dec, scale); err != nil {
		return raw, err
	} else if unit, err = rescale(unit, r.dec, scale); err != nil {
		return raw, err
	}

	q := num / unit
	if rem := num % unit; unit-rem <= rem {
		q++
	}
	if q != 0 && math.MaxInt64/q < unit {
		return raw, fmt.Errorf("overflow: %v", raw)
	}
	num = q * unit

	// round to the display precision
	if d.precision < scale {
		div := int64Scales[scale-d.precision]
		q, rem := num/div, num%div
		if div-rem <= rem {
			q++
		}
		num = q
	} else if num, err = rescale(num, scale, d.precision); err != nil {
		return raw, err
	}

	var out []byte
	if negative && num != 0 {
		out = utf8.AppendRune(out, d.negativeSign)
	}
	out = strconv.AppendNumber(out, num, d.precision, 0, 0, d.decimalSep)
	return string(out), nil
}

// rescale converts num with dec decimals to scale decimals, where dec <= scale.
func rescale(num int64, dec, scale int) (int64, error) {
	if dec == scale {
		return num, nil
	} else if len(int64Scales) <= scale-dec {
		return 0, fmt.Errorf("overflow: too many decimals")
	}
	mul := int64Scales[scale-dec]
	if math.MaxInt64/mul < num {
		return 0, fmt.Errorf("overflow")
	}
	return num * mul, nil
}
