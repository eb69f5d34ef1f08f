package extract

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"skill-tracking-assistant/internal/model"
)

// Rule is one extraction rule record. Rules are data, not code: the pattern
// must contain exactly one capture group for the numeric literal, and the
// captured amount is multiplied by Scale and reported in Unit.
type Rule struct {
	Name    string  `json:"name" mapstructure:"name"`
	Pattern string  `json:"pattern" mapstructure:"pattern"`
	Unit    string  `json:"unit" mapstructure:"unit"`
	Scale   float64 `json:"scale" mapstructure:"scale"`
}

type compiledRule struct {
	name  string
	re    *regexp.Regexp
	unit  string
	scale float64
}

// Extractor parses a numeric quantity and normalized unit out of free text.
// Rules are tried in order; the first whose pattern matches wins.
// Extraction is pure: no state, no side effects.
type Extractor struct {
	rules []compiledRule
}

// New compiles the given ordered rule list into an Extractor.
func New(rules []Rule) (*Extractor, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		re, err := regexp.Compile("(?i)" + r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("extract: rule %q: invalid pattern: %w", r.Name, err)
		}
		scale := r.Scale
		if scale == 0 {
			scale = 1
		}
		compiled = append(compiled, compiledRule{name: r.Name, re: re, unit: r.Unit, scale: scale})
	}
	return &Extractor{rules: compiled}, nil
}

// NewDefault builds an Extractor from the built-in rule table.
func NewDefault() *Extractor {
	e, err := New(DefaultRules())
	if err != nil {
		// The default table is static; a compile failure is a programming error.
		panic(err)
	}
	return e
}

// Extract parses text into an amount and unit. If no rule matches it returns
// {1, count}. Converted amounts are rounded to the nearest integer.
func (e *Extractor) Extract(text string) model.ExtractedValue {
	trimmed := strings.TrimSpace(text)

	for _, rule := range e.rules {
		m := rule.re.FindStringSubmatch(trimmed)
		if len(m) < 2 {
			continue
		}
		amount, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return model.ExtractedValue{
			Amount: math.Round(amount * rule.scale),
			Unit:   rule.unit,
		}
	}

	return model.ExtractedValue{Amount: 1, Unit: "count"}
}
