// Package format assembles the final user-facing listing from parsed model
// output: price mentions scrubbed from narrative text, whitespace and
// punctuation tidied, sections joined in a fixed layout.
package format

import (
	"regexp"
	"strings"
	"sync"

	"listmate/internal/model"
	"listmate/internal/region"
)

// Disclaimer is appended to every formatted listing.
const Disclaimer = "Information is provided in good faith and should be independently verified."

var (
	doubleSpace      = regexp.MustCompile(`[^\S\n]{2,}`)
	spaceBeforePunct = regexp.MustCompile(`\s+([,.;:!?])`)
	repeatedCommas   = regexp.MustCompile(`,\s*,+`)
	repeatedPeriods  = regexp.MustCompile(`\.\s*\.+`)
	danglingComma    = regexp.MustCompile(`,\s*([.!?])`)
	currencyWords    = regexp.MustCompile(`(?i)\b\d[\d,]*(?:\.\d{1,2})?\s*(?:dollars|pounds|euros|usd|cad|gbp|aud|eur)\b`)
	anySymbolPrice   = regexp.MustCompile(`[$£€]\s?[\d,]+(?:\.\d{1,2})?(?i:\s*(?:per|/)\s*(?:month|mo|week|wk|year|yr))?`)
)

var (
	scrubMu    sync.Mutex
	scrubCache = map[string][]*regexp.Regexp{}
)

// scrubPatterns builds the symbol-specific price patterns once per
// currency symbol. Contextual phrases go first so "priced at $X" is
// removed whole instead of leaving "priced at" behind.
func scrubPatterns(symbol string) []*regexp.Regexp {
	scrubMu.Lock()
	defer scrubMu.Unlock()
	if patterns, ok := scrubCache[symbol]; ok {
		return patterns
	}
	sym := regexp.QuoteMeta(symbol)
	amount := sym + `\s?[\d,]+(?:\.\d{1,2})?`
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:priced at|asking price of|asking|listed at|offered at|for just|for only|at just|now)\s*` + amount),
	}
	scrubCache[symbol] = patterns
	return patterns
}

// ScrubPrice removes price mentions from narrative text. The price block
// is the only place prices belong. Amounts in any currency symbol are
// scrubbed, not just the region's own.
func ScrubPrice(text, symbol string) string {
	for _, re := range scrubPatterns(symbol) {
		text = re.ReplaceAllString(text, "")
	}
	text = anySymbolPrice.ReplaceAllString(text, "")
	text = currencyWords.ReplaceAllString(text, "")
	return text
}

// CleanText tidies whitespace and punctuation damage left behind by
// scrubbing.
func CleanText(text string) string {
	text = doubleSpace.ReplaceAllString(text, " ")
	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	text = repeatedCommas.ReplaceAllString(text, ",")
	text = repeatedPeriods.ReplaceAllString(text, ".")
	text = danglingComma.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}

// Apply writes the formatted sections onto the record from its parsed
// output. The caller guarantees rec.Parsed is present and has passed the
// output checks.
func Apply(rec *model.Record, regionCfg region.Config) {
	rec.Title = CleanText(ScrubPrice(rec.Parsed.Title, regionCfg.Symbol))
	rec.Description = CleanText(ScrubPrice(rec.Parsed.Description, regionCfg.Symbol))
	rec.PriceBlock = CleanText(rec.Parsed.PriceBlock)

	sections := []string{rec.Title, rec.Description, rec.PriceBlock, Disclaimer}
	rec.FormattedListing = strings.Join(sections, "\n\n")
}
