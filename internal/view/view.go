// Package view picks the record subset that feeds the aggregator. A
// Selection is an immutable value: transitions return a new Selection and
// every transition implies a full recompute downstream.
package view

import "tradelens/internal/journal"

// Mode is the active slicing of the journal.
type Mode string

const (
	ModeAll   Mode = "all"
	ModeAsset Mode = "asset"
	ModeDay   Mode = "day"
)

// Selection holds the view mode and the selected bucket key, if any.
type Selection struct {
	Mode   Mode
	Symbol string
	Day    string
}

// WithMode transitions to a mode. Switching to asset auto-selects the first
// symbol (lexicographic) when none is chosen; switching to day auto-selects
// a default weekday; switching to all clears both keys.
func (s Selection) WithMode(records []journal.TradeRecord, mode Mode) Selection {
	next := s
	next.Mode = mode
	switch mode {
	case ModeAsset:
		if next.Symbol == "" {
			if symbols := journal.Symbols(records); len(symbols) > 0 {
				next.Symbol = symbols[0]
			}
		}
	case ModeDay:
		if next.Day == "" {
			next.Day = defaultDay(records)
		}
	default:
		next.Symbol = ""
		next.Day = ""
	}
	return next
}

// WithSymbol selects a symbol bucket in asset mode.
func (s Selection) WithSymbol(symbol string) Selection {
	next := s
	next.Mode = ModeAsset
	next.Symbol = symbol
	return next
}

// WithDay selects a weekday bucket in day mode.
func (s Selection) WithDay(day string) Selection {
	next := s
	next.Mode = ModeDay
	next.Day = day
	return next
}

// Apply returns the record subset the selection points at. Unknown keys
// resolve to an empty subset, which aggregates to the zero summary.
func (s Selection) Apply(records []journal.TradeRecord) []journal.TradeRecord {
	switch s.Mode {
	case ModeAsset:
		return journal.GroupBySymbol(records)[s.Symbol]
	case ModeDay:
		return journal.GroupByWeekday(records)[s.Day]
	default:
		return records
	}
}

// defaultDay is the first weekday (Sunday first) with at least one record,
// falling back to Monday when no record has a parseable date.
func defaultDay(records []journal.TradeRecord) string {
	buckets := journal.GroupByWeekday(records)
	for _, label := range journal.WeekdayLabels {
		if len(buckets[label]) > 0 {
			return label
		}
	}
	return "Mon"
}
