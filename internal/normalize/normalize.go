// Package normalize cleans up free-text input so downstream prompts and
// extraction see consistent spacing and punctuation. Every function is
// idempotent: applying it twice yields the same result as applying it once.
package normalize

import (
	"regexp"
	"strings"
)

var (
	lineBreaks      = regexp.MustCompile(`[\r\n]+`)
	multiSpace      = regexp.MustCompile(`\s+`)
	commaSpacing    = regexp.MustCompile(`\s*,\s*`)
	periodSpacing   = regexp.MustCompile(`\s*\.\s*`)
	slashSpacing    = regexp.MustCompile(`\s*/\s*`)
	splitThousands  = regexp.MustCompile(`(\d+),\s+(\d+)`)
	splitDecimals   = regexp.MustCompile(`(\d+)\.\s+(\d+)`)
	trailingPeriods = regexp.MustCompile(`\.+$`)
)

// Whitespace collapses line breaks and runs of whitespace into single
// spaces and trims the ends.
func Whitespace(s string) string {
	s = lineBreaks.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Address normalizes an address: collapsed whitespace, exactly one space
// after each comma and period, none before, and thousands separators
// rejoined when a stray space crept in ("350, 000" becomes "350,000").
func Address(s string) string {
	s = Whitespace(s)
	s = periodSpacing.ReplaceAllString(s, ". ")
	s = commaSpacing.ReplaceAllString(s, ", ")
	s = splitThousands.ReplaceAllString(s, "$1,$2")
	s = splitDecimals.ReplaceAllString(s, "$1.$2")
	s = strings.TrimSpace(s)
	s = trailingPeriods.ReplaceAllString(s, "")
	return s
}

// Notes normalizes free-form notes: collapsed whitespace and tightened
// slashes so "3 / 4" reads "3/4".
func Notes(s string) string {
	s = Whitespace(s)
	s = slashSpacing.ReplaceAllString(s, "/")
	return s
}
