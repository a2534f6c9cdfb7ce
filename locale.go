package numeric

import (
	"fmt"
	"reflect"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var defaultRuleSet = NewRuleSet()

// Languager is implemented by the fmt.State of a message.Printer.
type Languager interface {
	Language() language.Tag
}

// Printer binds a locale to descriptor building and formatting.
type Printer struct {
	*message.Printer

	LanguageTag language.Tag
	Rules       *RuleSet
}

// NewPrinter returns a printer for tag. Nil rules use the built-in rule set.
func NewPrinter(t language.Tag, rules *RuleSet) *Printer {
	if rules == nil {
		rules = defaultRuleSet
	}
	return &Printer{
		Printer: message.NewPrinter(t),

		LanguageTag: t,
		Rules:       rules,
	}
}

// Descriptor returns the descriptor of a field of kind holding values like v.
func (p *Printer) Descriptor(kind Kind, v any, format string) (Descriptor, error) {
	rules, err := p.Rules.Rules(p.LanguageTag)
	if err != nil {
		return Descriptor{}, err
	}
	return DescriptorFor(kind, v, rules, format)
}

// Format returns the display string of v.
func (p *Printer) Format(kind Kind, v any, format string) (string, error) {
	d, err := p.Descriptor(kind, v, format)
	if err != nil {
		return "", err
	}
	return d.Seed(v)
}

// T formats numeric values as numbers. A Kind following the value selects currency or percent, a string
// following it is used as format string. Anything else is printed as is.
func (p *Printer) T(a ...any) string {
	if len(a) == 0 {
		return ""
	} else if s, ok := a[0].(string); ok {
		return p.Sprintf(s, a[1:]...)
	} else if !IsNumeric(reflect.TypeOf(a[0])) || 3 < len(a) {
		return p.Sprint(a...)
	}

	f := ValueFormatter{Value: a[0], Rules: p.Rules}
	for _, arg := range a[1:] {
		switch v := arg.(type) {
		case Kind:
			f.Kind = v
		case string:
			f.Layout = v
		default:
			return p.Sprint(a...)
		}
	}
	return p.Sprintf("%v", f)
}

// ValueFormatter formats a model value using the locale of the printer it is printed with.
type ValueFormatter struct {
	Value  any
	Kind   Kind
	Layout string // format string such as {0:C2}, may be empty
	Rules  *RuleSet
}

func (f ValueFormatter) Format(state fmt.State, verb rune) {
	tag := language.Und
	if languager, ok := state.(Languager); ok {
		tag = languager.Language()
	}
	rs := f.Rules
	if rs == nil {
		rs = defaultRuleSet
	}

	rules, err := rs.Rules(tag)
	if err != nil {
		fmt.Fprintf(state, "%%!%c(%v)", verb, err)
		return
	}
	d, err := DescriptorFor(f.Kind, f.Value, rules, f.Layout)
	if err != nil {
		fmt.Fprintf(state, "%%!%c(%v)", verb, err)
		return
	}
	raw, err := d.SeedRaw(f.Value)
	if err != nil {
		fmt.Fprintf(state, "%%!%c(%v)", verb, err)
		return
	}
	state.Write(d.AppendFormat(nil, raw))
}
