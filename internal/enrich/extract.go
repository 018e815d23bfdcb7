package enrich

import (
	"regexp"
	"strings"

	"listmate/internal/model"
)

const (
	maxPerCategory = 3
	maxLandmarks   = 5
)

// Postal code shapes differ per region, so extraction is keyed by region
// code. Unknown regions use the US pattern.
var postalPatterns = map[string]*regexp.Regexp{
	"US": regexp.MustCompile(`\b(\d{5})(?:-\d{4})?\b`),
	"CA": regexp.MustCompile(`\b([A-Za-z]\d[A-Za-z])\s?(\d[A-Za-z]\d)\b`),
	"UK": regexp.MustCompile(`(?i)\b([A-Z]{1,2}\d[A-Z\d]?)\s?(\d[A-Z]{2})\b`),
	"AU": regexp.MustCompile(`\b(\d{4})\b`),
}

// extractPostalCode pulls a postal code out of text. The last match wins:
// in "123 Main St, Springfield, IL 62704" the street number must not
// shadow the ZIP.
func extractPostalCode(text, regionCode string) string {
	re, ok := postalPatterns[regionCode]
	if !ok {
		re = postalPatterns["US"]
	}
	matches := re.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return ""
	}
	last := matches[len(matches)-1]
	switch regionCode {
	case "CA", "UK":
		return strings.ToUpper(last[1] + " " + last[2])
	default:
		return last[1]
	}
}

var neighborhoodPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:located in|situated in|heart of|neighborhood of|neighbourhood of|area of)\s+([A-Z][a-zA-Z ]+?)(?:,|\.|;|\n|$)`),
	regexp.MustCompile(`in the\s+([A-Z][a-zA-Z ]+?)\s+(?:neighborhood|neighbourhood|district|area)`),
}

// Capitalized sentence starters that the neighborhood patterns tend to
// capture by accident.
var invalidNeighborhoodWords = map[string]bool{
	"the": true, "a": true, "an": true, "this": true, "that": true,
	"it": true, "its": true, "there": true, "addition": true, "fact": true,
}

// extractNeighborhood finds a neighborhood name in search result text.
// Returns "" when nothing credible matches.
func extractNeighborhood(text string) string {
	for _, re := range neighborhoodPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			candidate := strings.TrimSpace(m[1])
			if validNeighborhood(candidate) {
				return candidate
			}
		}
	}
	return ""
}

func validNeighborhood(candidate string) bool {
	if len(candidate) < 3 || len(candidate) > 40 {
		return false
	}
	words := strings.Fields(candidate)
	if len(words) == 0 || len(words) > 4 {
		return false
	}
	return !invalidNeighborhoodWords[strings.ToLower(words[0])]
}

var amenityPatterns = map[string][]*regexp.Regexp{
	model.AmenitySchools: {
		regexp.MustCompile(`([A-Z][\w'.&-]*(?: [A-Z][\w'.&-]*)* (?:Elementary|Middle|High|Primary|Grammar) School)`),
		regexp.MustCompile(`([A-Z][\w'.&-]*(?: [A-Z][\w'.&-]*)* (?:School|Academy|College|University))`),
	},
	model.AmenityTransportation: {
		regexp.MustCompile(`([A-Z][\w'.&-]*(?: [A-Z][\w'.&-]*)* (?:Station|Terminal|Transit Center))`),
		regexp.MustCompile(`((?:Line|Route) [A-Z0-9]+)`),
	},
	model.AmenityParks: {
		regexp.MustCompile(`([A-Z][\w'.&-]*(?: [A-Z][\w'.&-]*)* (?:Park|Playground|Gardens|Trail|Reserve))`),
	},
	model.AmenityShopping: {
		regexp.MustCompile(`([A-Z][\w'.&-]*(?: [A-Z][\w'.&-]*)* (?:Mall|Market|Plaza|Shopping Center|Shopping Centre|Supermarket))`),
	},
}

var landmarkPattern = regexp.MustCompile(`([A-Z][\w'.&-]*(?: [A-Z][\w'.&-]*)* (?:Park|Museum|Plaza|Square|Tower|Bridge|Monument|Stadium|Gallery|Cathedral|Library))`)

// Generic leading words that produce junk matches like "The School" or
// "Best University".
var filterWords = map[string]bool{
	"the": true, "a": true, "an": true, "this": true, "that": true,
	"these": true, "those": true, "many": true, "several": true,
	"some": true, "all": true, "best": true, "top": true, "local": true,
	"near": true, "nearby": true, "other": true, "great": true, "good": true,
}

// extractAmenities finds named amenities of one category, deduplicated in
// first-seen order, capped at three.
func extractAmenities(text, category string) []string {
	patterns, ok := amenityPatterns[category]
	if !ok {
		return []string{}
	}
	return collect(text, patterns, maxPerCategory)
}

// extractLandmarks finds named landmarks, capped at five.
func extractLandmarks(text string) []string {
	return collect(text, []*regexp.Regexp{landmarkPattern}, maxLandmarks)
}

// collect always returns a non-nil slice so empty categories serialize as
// lists rather than null.
func collect(text string, patterns []*regexp.Regexp, limit int) []string {
	found := []string{}
	seen := map[string]bool{}
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			name := strings.TrimSpace(m[1])
			if !validName(name) {
				continue
			}
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}
			seen[key] = true
			found = append(found, name)
			if len(found) >= limit {
				return found
			}
		}
	}
	return found
}

func validName(name string) bool {
	if len(name) < 4 || len(name) > 60 {
		return false
	}
	words := strings.Fields(name)
	if len(words) < 2 {
		return false
	}
	return !filterWords[strings.ToLower(words[0])]
}
