// Package parse converts display-formatted cell text into numeric and
// temporal values. Every parser is total: malformed input resolves to a
// neutral default instead of an error.
package parse

import (
	"strconv"
	"strings"
	"time"
)

// Currency parses a display-formatted money string such as "$1,234.56" or
// "-$40". Unparsable input yields 0.
func Currency(text string) float64 {
	cleaned := stripCurrency(text)
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// AccountingCurrency parses money like Currency but additionally treats
// parenthesized values, e.g. "(123.45)", as negative. The two behaviors are
// kept separate on purpose: the trade-framed and day-framed pipelines do not
// share the parenthesis convention.
func AccountingCurrency(text string) float64 {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")") {
		return -Currency(trimmed[1 : len(trimmed)-1])
	}
	return Currency(trimmed)
}

// Percent parses a percentage string such as "65.4%". Unparsable input
// yields 0.
func Percent(text string) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(text, "%", ""))
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// dateLayouts covers the display formats the journal table is known to use.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Mon, Jan 2, 2006",
	"2 Jan 2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Date parses a display date string. The second return value reports whether
// any known layout matched; callers treat a failed parse as "no date" rather
// than an error.
func Date(text string) (time.Time, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func stripCurrency(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch r {
		case '$', ',', ' ', '\t', '\n', '\r':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
