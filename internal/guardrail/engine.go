package guardrail

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"listmate/internal/model"
	"listmate/internal/region"
)

// Engine runs the input and output guardrail checks. It is safe for
// concurrent use once constructed.
type Engine struct {
	rules       *Rules
	classifier  Classifier
	injection   []*regexp.Regexp
	priceInText []*regexp.Regexp
	regions     *region.Table
}

// New builds an engine from the rules at rulesPath (embedded defaults when
// empty) with the default keyword classifier.
func New(rulesPath string, regions *region.Table) (*Engine, error) {
	rules, err := LoadRules(rulesPath)
	if err != nil {
		return nil, err
	}
	injection, err := compilePatterns(rules.InjectionPatterns)
	if err != nil {
		return nil, err
	}
	priceInText, err := compilePatterns(rules.PriceInTextPatterns)
	if err != nil {
		return nil, err
	}
	return &Engine{
		rules:       rules,
		classifier:  NewKeywordClassifier(rules),
		injection:   injection,
		priceInText: priceInText,
		regions:     regions,
	}, nil
}

// WithClassifier swaps the topic/content classifier. Used to plug in a
// non-keyword implementation.
func (e *Engine) WithClassifier(c Classifier) *Engine {
	e.classifier = c
	return e
}

// CheckInput validates user input against the rule vocabulary. It returns
// every violation found, not just the first. The topic check only runs when
// the required fields are present; without them, any topic verdict would be
// meaningless noise on top of the validation errors.
func (e *Engine) CheckInput(rec *model.Record) []string {
	var errs []string

	if len(rec.Address) > e.rules.Limits.MaxAddress {
		errs = append(errs, fmt.Sprintf("address exceeds maximum length of %d characters", e.rules.Limits.MaxAddress))
	}
	if len(rec.Notes) > e.rules.Limits.MaxNotes {
		errs = append(errs, fmt.Sprintf("notes exceed maximum length of %d characters", e.rules.Limits.MaxNotes))
	}

	if e.matchesInjection(rec.Address) {
		errs = append(errs, "potential injection pattern detected in address")
	}
	if rec.Notes != "" && e.matchesInjection(rec.Notes) {
		errs = append(errs, "potential injection pattern detected in notes")
	}

	combined := rec.Address + " " + rec.Notes
	for _, kw := range e.classifier.Inappropriate(combined) {
		errs = append(errs, "inappropriate content detected in input: "+kw)
	}

	if rec.Address != "" && rec.Price > 0 && rec.ListingType.Valid() {
		if !e.classifier.PropertyRelated(combined) {
			errs = append(errs, "input does not appear to be related to a property listing")
		}
	}

	return errs
}

// CheckOutput validates generated content. A structural failure returns
// immediately; the remaining checks assume all three sections exist.
func (e *Engine) CheckOutput(parsed *model.ParsedListing, rec *model.Record) []string {
	var errs []string

	if parsed == nil {
		return []string{"generated output is missing"}
	}
	if strings.TrimSpace(parsed.Title) == "" {
		errs = append(errs, "generated output is missing a title")
	}
	if strings.TrimSpace(parsed.Description) == "" {
		errs = append(errs, "generated output is missing a description")
	}
	if strings.TrimSpace(parsed.PriceBlock) == "" {
		errs = append(errs, "generated output is missing a price block")
	}
	if len(errs) > 0 {
		return errs
	}

	if len(parsed.Title) > e.rules.Limits.MaxTitle {
		errs = append(errs, fmt.Sprintf("title exceeds maximum length of %d characters", e.rules.Limits.MaxTitle))
	}
	if len(parsed.Description) > e.rules.Limits.MaxDescription {
		errs = append(errs, fmt.Sprintf("description exceeds maximum length of %d characters", e.rules.Limits.MaxDescription))
	}
	if len(parsed.PriceBlock) > e.rules.Limits.MaxPriceBlock {
		errs = append(errs, fmt.Sprintf("price block exceeds maximum length of %d characters", e.rules.Limits.MaxPriceBlock))
	}

	sections := []struct {
		name string
		text string
	}{
		{"title", parsed.Title},
		{"description", parsed.Description},
		{"price block", parsed.PriceBlock},
	}
	for _, s := range sections {
		for _, kw := range e.classifier.Inappropriate(s.text) {
			errs = append(errs, "inappropriate content detected in "+s.name+": "+kw)
		}
		if e.matchesInjection(s.text) {
			errs = append(errs, "potential injection pattern detected in "+s.name)
		}
	}

	if !e.classifier.PropertyRelated(parsed.Title + " " + parsed.Description) {
		errs = append(errs, "generated content does not appear to describe a property")
	}

	regionCfg := e.regions.Get(rec.Region)

	if e.mentionsPrice(parsed.Description) {
		errs = append(errs, "description must not mention the price; pricing belongs in the price block")
	}

	if err := e.checkPriceCompliance(parsed.PriceBlock, rec, regionCfg); err != "" {
		errs = append(errs, err)
	}

	return errs
}

func (e *Engine) matchesInjection(text string) bool {
	for _, re := range e.injection {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// mentionsPrice flags currency amounts in any known symbol, not just the
// record's own region. A dollar figure in a UK listing is still a price.
func (e *Engine) mentionsPrice(text string) bool {
	if anyCurrencyAmount.MatchString(text) {
		return true
	}
	for _, re := range e.priceInText {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// checkPriceCompliance extracts the amount stated in the price block and
// compares it to the asking price. Sale listings allow 10% deviation, rent
// 20%, configurable via the rule vocabulary.
func (e *Engine) checkPriceCompliance(priceBlock string, rec *model.Record, regionCfg region.Config) string {
	stated, ok := extractAmount(priceBlock, regionCfg.Symbol)
	if !ok {
		return "price block does not contain a recognizable price"
	}
	if rec.Price <= 0 {
		return ""
	}

	tolerance := e.rules.PriceTolerance.Sale
	if rec.ListingType == model.ListingTypeRent {
		tolerance = e.rules.PriceTolerance.Rent
	}
	deviation := math.Abs(stated-rec.Price) / rec.Price
	if deviation > tolerance {
		return fmt.Sprintf("price in price block (%s%.2f) deviates more than %.0f%% from the asking price (%s%.2f)",
			regionCfg.Symbol, stated, tolerance*100, regionCfg.Symbol, rec.Price)
	}
	return ""
}

var (
	symbolPriceMu    sync.Mutex
	symbolPriceCache = map[string]*regexp.Regexp{}

	anyCurrencyAmount = regexp.MustCompile(`[$£€]\s?[\d,]+(?:\.\d{1,2})?`)
	bareAmount        = regexp.MustCompile(`\d[\d,]*(?:\.\d{1,2})?`)
)

func symbolPrice(symbol string) *regexp.Regexp {
	symbolPriceMu.Lock()
	defer symbolPriceMu.Unlock()
	if re, ok := symbolPriceCache[symbol]; ok {
		return re
	}
	re := regexp.MustCompile(regexp.QuoteMeta(symbol) + `\s?[\d,]+(?:\.\d{1,2})?`)
	symbolPriceCache[symbol] = re
	return re
}

// extractAmount pulls the first stated amount out of text. Symbol-prefixed
// amounts take precedence; a bare number like "350,000 USD" is accepted as
// a fallback. Returns false when no amount is present.
func extractAmount(text, symbol string) (float64, bool) {
	match := symbolPrice(symbol).FindString(text)
	if match != "" {
		match = strings.TrimPrefix(match, symbol)
	} else {
		match = bareAmount.FindString(text)
	}
	if match == "" {
		return 0, false
	}
	digits := strings.ReplaceAll(strings.TrimSpace(match), ",", "")
	value, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
