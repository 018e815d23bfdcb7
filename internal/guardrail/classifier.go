package guardrail

import (
	"regexp"
	"strings"
)

// Classifier decides whether text belongs to the property domain and
// whether it contains inappropriate content. The default implementation is
// keyword-based; an ML-backed one can be swapped in without touching the
// check logic.
type Classifier interface {
	PropertyRelated(text string) bool
	Inappropriate(text string) []string
}

// KeywordClassifier classifies text by scanning the rule vocabulary.
type KeywordClassifier struct {
	propertyKeywords []string
	locationTerms    []string
	inappropriate    []inappropriateRule
}

type inappropriateRule struct {
	keyword string
	re      *regexp.Regexp
}

var _ Classifier = (*KeywordClassifier)(nil)

// NewKeywordClassifier builds a classifier over the given rules.
// Inappropriate keywords match on word boundaries so that e.g. "charming"
// does not trip the "harm" rule.
func NewKeywordClassifier(rules *Rules) *KeywordClassifier {
	inappropriate := make([]inappropriateRule, 0, len(rules.InappropriateKeywords))
	for _, kw := range rules.InappropriateKeywords {
		inappropriate = append(inappropriate, inappropriateRule{
			keyword: kw,
			re:      regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`),
		})
	}
	return &KeywordClassifier{
		propertyKeywords: rules.PropertyKeywords,
		locationTerms:    rules.LocationTerms,
		inappropriate:    inappropriate,
	}
}

var wordSplit = regexp.MustCompile(`\s+`)

// PropertyRelated reports whether the text plausibly describes a property.
// A keyword hit wins outright. Failing that, text that reads like an
// address (commas, or a location term plus at least two words) passes too,
// since bare street addresses rarely contain domain keywords.
func (c *KeywordClassifier) PropertyRelated(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range c.propertyKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return c.addressLike(lower)
}

func (c *KeywordClassifier) addressLike(lower string) bool {
	words := wordSplit.Split(strings.TrimSpace(lower), -1)
	if len(words) < 2 {
		return false
	}
	if strings.Contains(lower, ",") {
		return true
	}
	for _, term := range c.locationTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// Inappropriate returns the inappropriate keywords present in the text.
func (c *KeywordClassifier) Inappropriate(text string) []string {
	var found []string
	for _, rule := range c.inappropriate {
		if rule.re.MatchString(text) {
			found = append(found, rule.keyword)
		}
	}
	return found
}
