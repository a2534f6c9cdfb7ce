package numeric

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

type yamlKindRules struct {
	DecimalDigits    *int    `yaml:"decimalDigits"`
	DecimalSeparator *string `yaml:"decimalSeparator"`
	GroupSeparator   *string `yaml:"groupSeparator"`
	GroupSizes       []int   `yaml:"groupSizes"`
	PositivePattern  *int    `yaml:"positivePattern"`
	NegativePattern  *int    `yaml:"negativePattern"`
}

type yamlLocaleRules struct {
	NegativeSign   *string        `yaml:"negativeSign"`
	CurrencySymbol *string        `yaml:"currencySymbol"`
	PercentSymbol  *string        `yaml:"percentSymbol"`
	Number         *yamlKindRules `yaml:"number"`
	Currency       *yamlKindRules `yaml:"currency"`
	Percent        *yamlKindRules `yaml:"percent"`
}

// LoadRulesFile returns the built-in rules extended by the locales in a YAML file.
func LoadRulesFile(path string) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	defer f.Close()

	rs := NewRuleSet()
	if err := rs.Load(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

// Load reads locales from a YAML document mapping locale names to rules. Fields that are left out are
// inherited from the closest locale already in the set, so that a file can override just a separator.
func (rs *RuleSet) Load(r io.Reader) error {
	var raw map[string]yamlLocaleRules
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty rules yaml")
		}
		return fmt.Errorf("yaml parse error: %w", err)
	}

	// parents before children so that children inherit from entries of the same file
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sortByDepth(names)

	for _, name := range names {
		tag, err := ParseLocale(name)
		if err != nil {
			return fmt.Errorf("locale %q: %w", name, err)
		}

		base, ok := rs.lookup(tag)
		if !ok {
			base = builtinRules["root"]
		}
		if _, exists := rs.rules[ToLocaleName(tag)]; exists {
			log.Printf("INFO: numeric: rules for %v overridden\n", tag)
		} else {
			// the currency follows the region, not the parent locale
			base.CurrencySymbol = ""
		}

		rules, err := raw[name].apply(base.clone())
		if err != nil {
			return fmt.Errorf("locale %q: %w", name, err)
		}
		rs.Set(tag, rules)
	}
	return nil
}

func (y yamlLocaleRules) apply(rules LocaleNumberRules) (LocaleNumberRules, error) {
	var err error
	if y.NegativeSign != nil {
		if rules.NegativeSign, err = singleRune("negativeSign", *y.NegativeSign); err != nil {
			return rules, err
		}
	}
	if y.CurrencySymbol != nil {
		rules.CurrencySymbol = *y.CurrencySymbol
	}
	if y.PercentSymbol != nil {
		rules.PercentSymbol = *y.PercentSymbol
	}
	if rules.Number, err = y.Number.apply(rules.Number); err != nil {
		return rules, fmt.Errorf("number: %w", err)
	} else if rules.Currency, err = y.Currency.apply(rules.Currency); err != nil {
		return rules, fmt.Errorf("currency: %w", err)
	} else if rules.Percent, err = y.Percent.apply(rules.Percent); err != nil {
		return rules, fmt.Errorf("percent: %w", err)
	}
	return rules, nil
}

func (y *yamlKindRules) apply(rules KindRules) (KindRules, error) {
	if y == nil {
		return rules, nil
	}

	var err error
	if y.DecimalDigits != nil {
		if *y.DecimalDigits < 0 || maxPrecision < *y.DecimalDigits {
			return rules, fmt.Errorf("decimalDigits %d out of range", *y.DecimalDigits)
		}
		rules.DecimalDigits = *y.DecimalDigits
	}
	if y.DecimalSeparator != nil {
		if rules.DecimalSeparator, err = singleRune("decimalSeparator", *y.DecimalSeparator); err != nil {
			return rules, err
		}
	}
	if y.GroupSeparator != nil {
		if rules.GroupSeparator, err = singleRune("groupSeparator", *y.GroupSeparator); err != nil {
			return rules, err
		}
	}
	if y.GroupSizes != nil {
		rules.GroupSizes = append([]int(nil), y.GroupSizes...)
	}
	if y.PositivePattern != nil {
		rules.PositivePattern = *y.PositivePattern
	}
	if y.NegativePattern != nil {
		rules.NegativePattern = *y.NegativePattern
	}
	return rules, nil
}

func singleRune(field, s string) (rune, error) {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || n != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("%s must be a single character: %q", field, s)
	}
	return r, nil
}

// sortByDepth orders locale names so that shorter (parent) names come first.
func sortByDepth(names []string) {
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) < len(names[j])
		}
		return names[i] < names[j]
	})
}
