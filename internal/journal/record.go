// Package journal holds the canonical trade record model: normalization of
// raw table rows into records and grouping of records into buckets.
package journal

import (
	"math"
	"strings"
	"time"

	"tradelens/internal/parse"
)

// Column labels as they appear in the source table header.
const (
	ColDate       = "Date"
	ColSymbol     = "Symbol"
	ColNetPnL     = "Net PnL"
	ColWinPct     = "Win %"
	ColAvgWin     = "Avg Win"
	ColAvgLoss    = "Avg Loss"
	ColCommission = "Commission"
	ColPnLHigh    = "PnL High"
	ColPnLLow     = "PnL Low"

	// ColSymbolBadge carries the badge rendering of the symbol when the row
	// has one. It is preferred over the plain Symbol column.
	ColSymbolBadge = "Symbol Badge"
)

// Row is one raw table row: cell text keyed by column label.
type Row map[string]string

// Variant selects the aggregation framing of the pipeline.
type Variant string

const (
	// VariantTrade is the per-trade framing: win rate and profit factor are
	// counted over individual trades, with no commission concept.
	VariantTrade Variant = "TRADE"
	// VariantDay is the per-day framing: win rate is counted over distinct
	// trading days and profit factor over commission-adjusted gross P&L.
	VariantDay Variant = "DAY"
)

// TradeRecord is the canonical, immutable form of one journal row.
type TradeRecord struct {
	Date       time.Time // zero when the display date did not parse
	HasDate    bool
	DateLabel  string
	Symbol     string
	NetPnL     float64
	Commission float64 // day variant only, never negative
	WinPct     float64 // trade variant only
	PnLHigh    float64
	HasPnLHigh bool
	PnLLow     float64
	HasPnLLow  bool
}

// GrossPnL is net P&L with commission added back.
func (r TradeRecord) GrossPnL() float64 {
	return r.NetPnL + r.Commission
}

// DayOfWeek returns the weekday index (Sunday=0) of the record's date. The
// second return value is false when the date did not parse.
func (r TradeRecord) DayOfWeek() (int, bool) {
	if !r.HasDate {
		return 0, false
	}
	return int(r.Date.Weekday()), true
}

// DayName returns the three-letter weekday label, or "" without a date.
func (r TradeRecord) DayName() string {
	idx, ok := r.DayOfWeek()
	if !ok {
		return ""
	}
	return WeekdayLabels[idx]
}

// NormalizeRow maps one raw row into a TradeRecord. The second return value
// is false when the row must be dropped: a record is never kept without both
// a symbol and a date label.
func NormalizeRow(row Row, variant Variant) (TradeRecord, bool) {
	dateLabel := strings.TrimSpace(row[ColDate])
	symbol := strings.TrimSpace(row[ColSymbolBadge])
	if symbol == "" {
		symbol = strings.TrimSpace(row[ColSymbol])
	}
	if symbol == "" || dateLabel == "" {
		return TradeRecord{}, false
	}

	money := parse.Currency
	if variant == VariantDay {
		money = parse.AccountingCurrency
	}

	rec := TradeRecord{
		DateLabel: dateLabel,
		Symbol:    symbol,
		NetPnL:    money(row[ColNetPnL]),
	}
	rec.Date, rec.HasDate = parse.Date(dateLabel)

	switch variant {
	case VariantDay:
		rec.Commission = math.Abs(money(row[ColCommission]))
		if text := strings.TrimSpace(row[ColPnLHigh]); text != "" {
			rec.PnLHigh = money(text)
			rec.HasPnLHigh = true
		}
		if text := strings.TrimSpace(row[ColPnLLow]); text != "" {
			rec.PnLLow = money(text)
			rec.HasPnLLow = true
		}
	default:
		rec.WinPct = parse.Percent(row[ColWinPct])
	}

	return rec, true
}

// NormalizeRows maps raw rows to records, dropping unusable rows and keeping
// source order.
func NormalizeRows(rows []Row, variant Variant) []TradeRecord {
	records := make([]TradeRecord, 0, len(rows))
	for _, row := range rows {
		if rec, ok := NormalizeRow(row, variant); ok {
			records = append(records, rec)
		}
	}
	return records
}
