package numeric

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// KindRules are the formatting rules of a locale for one kind.
type KindRules struct {
	DecimalDigits    int
	DecimalSeparator rune
	GroupSeparator   rune
	GroupSizes       []int
	PositivePattern  int // unused for numbers, they are always "n"
	NegativePattern  int
}

// LocaleNumberRules are the number formatting rules of a locale.
type LocaleNumberRules struct {
	NegativeSign   rune
	CurrencySymbol string
	PercentSymbol  string

	Number   KindRules
	Currency KindRules
	Percent  KindRules
}

// Kind returns the rules of kind.
func (rules LocaleNumberRules) Kind(kind Kind) KindRules {
	switch kind {
	case Currency:
		return rules.Currency
	case Percent:
		return rules.Percent
	}
	return rules.Number
}

func (rules LocaleNumberRules) clone() LocaleNumberRules {
	rules.Number.GroupSizes = append([]int(nil), rules.Number.GroupSizes...)
	rules.Currency.GroupSizes = append([]int(nil), rules.Currency.GroupSizes...)
	rules.Percent.GroupSizes = append([]int(nil), rules.Percent.GroupSizes...)
	return rules
}

// RuleSet maps locale names to rules. Lookups fall back to parent locales and finally to root.
type RuleSet struct {
	rules map[string]LocaleNumberRules
}

// NewRuleSet returns a rule set holding the built-in locales.
func NewRuleSet() *RuleSet {
	rs := &RuleSet{rules: make(map[string]LocaleNumberRules, len(builtinRules))}
	for name, rules := range builtinRules {
		rs.rules[name] = rules.clone()
	}
	return rs
}

// ToLocaleName returns the name under which rules for tag are stored.
func ToLocaleName(tag language.Tag) string {
	if tag == language.Und || tag.IsRoot() {
		return "root"
	}
	return tag.String()
}

// Set stores rules for tag, replacing any existing entry.
func (rs *RuleSet) Set(tag language.Tag, rules LocaleNumberRules) {
	if rs.rules == nil {
		rs.rules = map[string]LocaleNumberRules{}
	}
	rs.rules[ToLocaleName(tag)] = rules.clone()
}

// Locales returns the names of all locales in the set.
func (rs *RuleSet) Locales() []string {
	names := make([]string, 0, len(rs.rules))
	for name := range rs.rules {
		names = append(names, name)
	}
	return names
}

func (rs *RuleSet) lookup(tag language.Tag) (LocaleNumberRules, bool) {
	loc := ToLocaleName(tag)
	d, ok := rs.rules[loc]
	for !ok && loc != "root" {
		tag = tag.Parent()
		loc = ToLocaleName(tag)
		d, ok = rs.rules[loc]
	}
	return d, ok
}

// Rules returns the rules for tag. A missing currency symbol is derived from the default currency of the
// tag's region.
func (rs *RuleSet) Rules(tag language.Tag) (LocaleNumberRules, error) {
	rules, ok := rs.lookup(tag)
	if !ok {
		return LocaleNumberRules{}, fmt.Errorf("%w: %v", ErrUnknownLocale, tag)
	}
	rules = rules.clone()
	if rules.CurrencySymbol == "" {
		rules.CurrencySymbol = CurrencySymbol(tag)
	}
	if rules.PercentSymbol == "" {
		rules.PercentSymbol = "%"
	}
	return rules, nil
}

// CurrencySymbol returns the symbol of the default currency of the tag's region,
// or the generic currency sign for the root locale and when the region is unknown.
func CurrencySymbol(tag language.Tag) string {
	if tag == language.Und || tag.IsRoot() {
		return "¤"
	}
	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		return "¤"
	}
	iso := unit.String()
	if symbol, ok := currencySymbols[iso]; ok {
		return symbol
	}
	return iso
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
	"CHF": "CHF",
	"SEK": "kr",
	"MXN": "$",
	"CAD": "$",
	"AUD": "$",
	"BRL": "R$",
	"CNY": "¥",
	"KRW": "₩",
	"PLN": "zł",
}

func groups(sizes ...int) []int {
	return sizes
}

func sameKindRules(dec, group rune, sizes []int) (KindRules, KindRules, KindRules) {
	r := KindRules{DecimalDigits: 2, DecimalSeparator: dec, GroupSeparator: group, GroupSizes: sizes}
	return r, r, r
}

var builtinRules = map[string]LocaleNumberRules{}

func init() {
	add := func(name string, negativeSign rune, currencySymbol string, dec, group rune, sizes []int, numNeg, curPos, curNeg, pctPos, pctNeg int) {
		number, cur, pct := sameKindRules(dec, group, sizes)
		number.NegativePattern = numNeg
		cur.PositivePattern, cur.NegativePattern = curPos, curNeg
		pct.PositivePattern, pct.NegativePattern = pctPos, pctNeg
		builtinRules[name] = LocaleNumberRules{
			NegativeSign:   negativeSign,
			CurrencySymbol: currencySymbol,
			PercentSymbol:  "%",
			Number:         number,
			Currency:       cur,
			Percent:        pct,
		}
	}

	// invariant
	add("root", '-', "", '.', ',', groups(3), 1, 0, 0, 0, 0)
	add("en", '-', "", '.', ',', groups(3), 1, 0, 0, 1, 1)
	add("en-GB", '-', "£", '.', ',', groups(3), 1, 0, 1, 1, 1)
	add("en-IN", '-', "₹", '.', ',', groups(3, 2), 1, 2, 12, 1, 1)
	add("de", '-', "", ',', '.', groups(3), 1, 3, 8, 0, 0)
	add("de-CH", '-', "CHF", '.', '\u2019', groups(3), 1, 2, 12, 1, 1)
	add("fr", '-', "", ',', '\u202f', groups(3), 1, 3, 8, 0, 0)
	add("nl", '-', "", ',', '.', groups(3), 1, 2, 12, 1, 1)
	add("es", '-', "", ',', '.', groups(3), 1, 3, 8, 0, 0)
	add("ja", '-', "¥", '.', ',', groups(3), 1, 0, 1, 1, 1)
	add("sv", '\u2212', "kr", ',', '\u00a0', groups(3), 1, 3, 8, 0, 0)

	ja := builtinRules["ja"]
	ja.Currency.DecimalDigits = 0
	builtinRules["ja"] = ja
}

// ParseLocale parses a BCP 47 locale name, accepting underscores as separators.
func ParseLocale(s string) (language.Tag, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "-")
	if s == "" || s == "root" {
		return language.Und, nil
	}
	return language.Parse(s)
}
