package numeric

import (
	"log"
	"strings"
)

// Layout patterns indexed the way locale data enumerates them. In the templates '$' stands for the currency
// symbol, '%' for the percent symbol and '-' for the negative sign.
var (
	numberNegativePatterns = []string{
		"(n)", // 0
		"-n",  // 1
		"- n", // 2
		"n-",  // 3
		"n -", // 4
	}

	currencyPositivePatterns = []string{
		"$n",  // 0
		"n$",  // 1
		"$ n", // 2
		"n $", // 3
	}

	currencyNegativePatterns = []string{
		"($n)",  // 0
		"-$n",   // 1
		"$-n",   // 2
		"$n-",   // 3
		"(n$)",  // 4
		"-n$",   // 5
		"n-$",   // 6
		"n$-",   // 7
		"-n $",  // 8
		"-$ n",  // 9
		"n $-",  // 10
		"$ n-",  // 11
		"$ -n",  // 12
		"n- $",  // 13
		"($ n)", // 14
		"(n $)", // 15
		"$- n",  // 16
	}

	percentPositivePatterns = []string{
		"n %", // 0
		"n%",  // 1
		"%n",  // 2
		"% n", // 3
	}

	percentNegativePatterns = []string{
		"-n %", // 0
		"-n%",  // 1
		"-%n",  // 2
		"%-n",  // 3
		"%n-",  // 4
		"n-%",  // 5
		"n%-",  // 6
		"-% n", // 7
		"n %-", // 8
		"% n-", // 9
		"% -n", // 10
		"n- %", // 11
	}
)

// layout returns the template at index i, falling back to index def for unsupported indices.
func layout(name string, templates []string, i, def int) string {
	if i < 0 || len(templates) <= i {
		log.Printf("INFO: numeric: unsupported %s pattern %d, using %d\n", name, i, def)
		i = def
	}
	return templates[i]
}

// expandPattern replaces the placeholders of a layout template by the symbol and negative sign.
func expandPattern(template, symbol string, negativeSign rune) string {
	return strings.NewReplacer(
		"$", symbol,
		"%", symbol,
		"-", string(negativeSign),
	).Replace(template)
}

// Patterns returns the positive and negative templates of kind for the given rules.
func (rules LocaleNumberRules) Patterns(kind Kind) (string, string) {
	switch kind {
	case Currency:
		pos := layout("currency positive", currencyPositivePatterns, rules.Currency.PositivePattern, 0)
		neg := layout("currency negative", currencyNegativePatterns, rules.Currency.NegativePattern, 0)
		return expandPattern(pos, rules.CurrencySymbol, rules.NegativeSign), expandPattern(neg, rules.CurrencySymbol, rules.NegativeSign)
	case Percent:
		pos := layout("percent positive", percentPositivePatterns, rules.Percent.PositivePattern, 0)
		neg := layout("percent negative", percentNegativePatterns, rules.Percent.NegativePattern, 0)
		return expandPattern(pos, rules.PercentSymbol, rules.NegativeSign), expandPattern(neg, rules.PercentSymbol, rules.NegativeSign)
	}
	neg := layout("number negative", numberNegativePatterns, rules.Number.NegativePattern, 1)
	return "n", expandPattern(neg, "", rules.NegativeSign)
}
