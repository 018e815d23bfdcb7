// Package guardrail implements rule-based safety checks on pipeline input
// and generated output. The rule vocabulary (keywords, patterns, limits,
// tolerances) ships embedded and can be overridden from a YAML file.
package guardrail

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

// Limits are the hard length ceilings for input and output text.
type Limits struct {
	MaxAddress     int `yaml:"max_address"`
	MaxNotes       int `yaml:"max_notes"`
	MaxTitle       int `yaml:"max_title"`
	MaxDescription int `yaml:"max_description"`
	MaxPriceBlock  int `yaml:"max_price_block"`
}

// Tolerances are the allowed relative deviations between the asking price
// and the price stated in the generated price block.
type Tolerances struct {
	Sale float64 `yaml:"sale"`
	Rent float64 `yaml:"rent"`
}

// Rules is the raw rule vocabulary as loaded from YAML.
type Rules struct {
	PropertyKeywords      []string   `yaml:"property_keywords"`
	LocationTerms         []string   `yaml:"location_terms"`
	InappropriateKeywords []string   `yaml:"inappropriate_keywords"`
	InjectionPatterns     []string   `yaml:"injection_patterns"`
	PriceInTextPatterns   []string   `yaml:"price_in_text_patterns"`
	Limits                Limits     `yaml:"limits"`
	PriceTolerance        Tolerances `yaml:"price_tolerance"`
}

// LoadRules reads a rule vocabulary from path, or the embedded defaults
// when path is empty.
func LoadRules(path string) (*Rules, error) {
	data := defaultRules
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read guardrail rules: %w", err)
		}
	}
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse guardrail rules: %w", err)
	}
	if len(r.InjectionPatterns) == 0 || len(r.InappropriateKeywords) == 0 {
		return nil, fmt.Errorf("guardrail rules incomplete")
	}
	return &r, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compile guardrail pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}
