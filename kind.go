package numeric

import (
	"reflect"
	"strconv"
	"strings"
)

// Kind selects the source of the default patterns and precision.
type Kind int

const (
	Number Kind = iota
	Currency
	Percent
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Currency:
		return "currency"
	case Percent:
		return "percent"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) valid() bool {
	return k == Number || k == Currency || k == Percent
}

// letter is the specifier used in format strings such as {0:C2}.
func (k Kind) letter() byte {
	switch k {
	case Currency:
		return 'C'
	case Percent:
		return 'P'
	}
	return 'N'
}

// KindFromClasses infers the kind from the CSS classes of a display element.
func KindFromClasses(classes ...string) Kind {
	for _, class := range classes {
		for _, c := range strings.Fields(class) {
			switch c {
			case "currency":
				return Currency
			case "percent":
				return Percent
			}
		}
	}
	return Number
}

// IsNumeric returns true for integer and floating point types, and pointers to them.
func IsNumeric(t reflect.Type) bool {
	if t == nil {
		return false
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isInteger(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
