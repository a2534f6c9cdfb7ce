package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/tdewolff/numeric"
	"github.com/tdewolff/parse/v2/strconv"
)

func main() {
	var localeName, kindName, format, rulesPath, rounding string
	var raw, attrs bool
	flag.StringVar(&localeName, "locale", "root", "locale name, such as en-US or de")
	flag.StringVar(&kindName, "kind", "number", "number, currency or percent")
	flag.StringVar(&format, "format", "", "explicit format string such as {0:C0}")
	flag.StringVar(&rulesPath, "rules", "", "YAML file with additional locale rules")
	flag.StringVar(&rounding, "round", "", "round edit-mode values to a multiple of this unit, such as 0.25")
	flag.BoolVar(&raw, "raw", false, "arguments are edit-mode strings in the locale's notation")
	flag.BoolVar(&attrs, "attrs", false, "print the descriptor attributes")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: numfmt [flags] value...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(os.Stdout, localeName, kindName, format, rulesPath, rounding, raw, attrs, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, localeName, kindName, format, rulesPath, rounding string, raw, attrs bool, args []string) error {
	kind, err := parseKind(kindName)
	if err != nil {
		return err
	}
	tag, err := numeric.ParseLocale(localeName)
	if err != nil {
		return err
	}

	rs := numeric.NewRuleSet()
	if rulesPath != "" {
		if rs, err = numeric.LoadRulesFile(rulesPath); err != nil {
			return err
		}
	}
	var unit numeric.Rounding
	if rounding != "" {
		if unit, err = numeric.ParseRounding(rounding); err != nil {
			return err
		}
	}

	p := numeric.NewPrinter(tag, rs)
	d, err := p.Descriptor(kind, float64(0), format)
	if err != nil {
		return err
	}
	if attrs {
		m := d.Attributes()
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%s=%q\n", k, m[k])
		}
	}

	for _, arg := range args {
		s := arg
		if !raw {
			b := []byte(arg)
			f, n := strconv.ParseFloat(b)
			if n == 0 || n != len(b) {
				return fmt.Errorf("invalid number: %v", arg)
			}
			if s, err = d.SeedRaw(f); err != nil {
				return err
			}
		}
		if s, err = d.ApplyRounding(s, unit); err != nil {
			return err
		}
		fmt.Fprintln(w, d.Format(s))
	}
	return nil
}

func parseKind(s string) (numeric.Kind, error) {
	switch strings.ToLower(s) {
	case "number", "n":
		return numeric.Number, nil
	case "currency", "c":
		return numeric.Currency, nil
	case "percent", "p":
		return numeric.Percent, nil
	}
	return 0, fmt.Errorf("unknown kind: %v", s)
}
