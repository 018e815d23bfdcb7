// Package jsonx decodes JSON out of model replies, which arrive as pure
// JSON on a good day and as JSON buried in markdown fences, prose, or
// sloppy quoting on a bad one.
package jsonx

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Parse decodes the first JSON value found in input into target. Strategies
// are tried in order of likelihood: direct decode, markdown code fences,
// balanced-brace extraction from surrounding prose, then a cleanup pass
// that repairs trailing commas, unquoted keys, and single quotes.
func Parse(input string, target interface{}) error {
	if input == "" {
		return fmt.Errorf("empty input")
	}

	if err := json.Unmarshal([]byte(input), target); err == nil {
		return nil
	}

	if extracted := fromMarkdown(input); extracted != "" {
		if err := json.Unmarshal([]byte(extracted), target); err == nil {
			return nil
		}
	}

	if extracted := fromText(input); extracted != "" {
		if err := json.Unmarshal([]byte(extracted), target); err == nil {
			return nil
		}
		if cleaned := cleanup(extracted); cleaned != "" {
			if err := json.Unmarshal([]byte(cleaned), target); err == nil {
				return nil
			}
		}
	}

	if cleaned := cleanup(input); cleaned != "" {
		if err := json.Unmarshal([]byte(cleaned), target); err == nil {
			return nil
		}
	}

	return fmt.Errorf("no parseable JSON in model output: %s", truncate(input, 100))
}

var (
	fencedJSON = regexp.MustCompile("(?s)```json\\s*(.+?)\\s*```")
	fencedAny  = regexp.MustCompile("(?s)```\\s*(.+?)\\s*```")
)

// fromMarkdown pulls the contents of a ```json fence, or any fence whose
// body starts like a JSON value.
func fromMarkdown(input string) string {
	if matches := fencedJSON.FindStringSubmatch(input); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	if matches := fencedAny.FindStringSubmatch(input); len(matches) > 1 {
		content := strings.TrimSpace(matches[1])
		if strings.HasPrefix(content, "{") || strings.HasPrefix(content, "[") {
			return content
		}
	}
	return ""
}

// fromText finds a JSON object or array embedded in prose.
func fromText(input string) string {
	if start := strings.Index(input, "{"); start >= 0 {
		if extracted := balanced(input[start:], '{', '}'); extracted != "" {
			return extracted
		}
	}
	if start := strings.Index(input, "["); start >= 0 {
		if extracted := balanced(input[start:], '[', ']'); extracted != "" {
			return extracted
		}
	}
	return ""
}

// balanced returns the prefix of input spanning one balanced open/close
// pair, skipping brackets inside string literals.
func balanced(input string, open, close rune) string {
	depth := 0
	inString := false
	escape := false
	start := 0

	for i, ch := range input {
		if escape {
			escape = false
			continue
		}
		if ch == '\\' {
			escape = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if ch == open {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == close {
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
		}
	}
	return ""
}

var (
	trailingCommas = regexp.MustCompile(`,\s*([}\]])`)
	unquotedKeys   = regexp.MustCompile(`([{,]\s*)(\w+)(\s*:)`)
	controlChars   = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]`)
)

// cleanup repairs the malformations models produce most often.
func cleanup(input string) string {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "\ufeff")
	s = trailingCommas.ReplaceAllString(s, "$1")
	s = unquotedKeys.ReplaceAllString(s, `$1"$2"$3`)
	s = fixSingleQuotes(s)
	s = controlChars.ReplaceAllString(s, "")
	return s
}

// fixSingleQuotes converts single quotes used as string delimiters to
// double quotes, leaving apostrophes inside double-quoted strings alone.
func fixSingleQuotes(input string) string {
	var result strings.Builder
	inDoubleQuote := false
	escape := false

	for i, ch := range input {
		if escape {
			result.WriteRune(ch)
			escape = false
			continue
		}
		if ch == '\\' {
			result.WriteRune(ch)
			escape = true
			continue
		}
		if ch == '"' {
			inDoubleQuote = !inDoubleQuote
			result.WriteRune(ch)
			continue
		}
		if ch == '\'' && !inDoubleQuote {
			prev := rune(0)
			if i > 0 {
				prev = rune(input[i-1])
			}
			if i == 0 || prev == ':' || prev == ',' || prev == '[' || prev == '{' || prev == ' ' {
				result.WriteRune('"')
				continue
			}
			next := rune(0)
			if i+1 < len(input) {
				next = rune(input[i+1])
			}
			if next == ':' || next == ',' || next == ']' || next == '}' || i == len(input)-1 {
				result.WriteRune('"')
				continue
			}
		}
		result.WriteRune(ch)
	}
	return result.String()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
