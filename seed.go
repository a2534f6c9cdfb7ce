package numeric

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// SeedRaw returns the edit-mode string of a model value using the descriptor's decimal separator and
// negative sign. Nil values and nil pointers give an empty string.
func (d Descriptor) SeedRaw(v any) (string, error) {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return "", nil
		}
		val = val.Elem()
	}
	if !val.IsValid() {
		return "", nil
	}

	var s string
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		s = strconv.FormatInt(val.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		s = strconv.FormatUint(val.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		f := val.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: %v", ErrInvalidFormat, f)
		}
		s = strconv.FormatFloat(f, 'f', -1, val.Type().Bits())
	default:
		return "", fmt.Errorf("%w: type %T", ErrInvalidFormat, v)
	}

	b := make([]byte, 0, len(s)+4)
	for _, c := range []byte(s) {
		switch c {
		case '-':
			b = utf8.AppendRune(b, d.negativeSign)
		case '.':
			b = utf8.AppendRune(b, d.decimalSep)
		default:
			b = append(b, c)
		}
	}
	return string(b), nil
}

// Seed returns the display string of a model value, matching what Format gives for the value's edit-mode string.
func (d Descriptor) Seed(v any) (string, error) {
	raw, err := d.SeedRaw(v)
	if err != nil {
		return "", err
	}
	return d.Format(raw), nil
}

// SeedOr returns the display string of v, or of def when v is nil or a nil pointer.
func (d Descriptor) SeedOr(v, def any) (string, error) {
	if isNil(v) {
		v = def
	}
	return d.Seed(v)
}

func isNil(v any) bool {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return true
		}
		val = val.Elem()
	}
	return !val.IsValid()
}

// Canonical converts an edit-mode string to one using '.' and '-', for example to parse it with strconv.
func (d Descriptor) Canonical(raw string) string {
	return strings.NewReplacer(string(d.decimalSep), ".", string(d.negativeSign), "-").Replace(raw)
}
