// Package export writes per-bucket summary breakdowns to CSV, one file per
// run day.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"tradelens/internal/journal"
	"tradelens/internal/stats"
)

type tradeRow struct {
	Bucket        string  `csv:"bucket"`
	TotalTrades   int     `csv:"total_trades"`
	WinningTrades int     `csv:"winning_trades"`
	LosingTrades  int     `csv:"losing_trades"`
	WinRatePct    float64 `csv:"win_rate_pct"`
	NetPnL        float64 `csv:"net_pnl"`
	GrossProfit   float64 `csv:"gross_profit"`
	GrossLoss     float64 `csv:"gross_loss"`
	ProfitFactor  float64 `csv:"profit_factor"`
	Expectancy    float64 `csv:"expectancy"`
}

type dayRow struct {
	Bucket          string  `csv:"bucket"`
	ProfitableDays  int     `csv:"profitable_days"`
	LosingDays      int     `csv:"losing_days"`
	DayWinRatePct   float64 `csv:"day_win_rate_pct"`
	NetPnL          float64 `csv:"net_pnl"`
	GrossPnL        float64 `csv:"gross_pnl"`
	TotalCommission float64 `csv:"total_commission"`
	ProfitFactor    float64 `csv:"profit_factor"`
}

// WriteBreakdown writes one CSV per grouping (symbol and weekday) for the
// given variant and returns the written paths.
func WriteBreakdown(dir string, records []journal.TradeRecord, variant journal.Variant) ([]string, error) {
	symbolPath, err := writeGrouping(dir, "symbols", symbolBuckets(records), variant)
	if err != nil {
		return nil, err
	}
	weekdayPath, err := writeGrouping(dir, "weekdays", weekdayBuckets(records), variant)
	if err != nil {
		return nil, err
	}
	return []string{symbolPath, weekdayPath}, nil
}

type bucket struct {
	key     string
	records []journal.TradeRecord
}

func symbolBuckets(records []journal.TradeRecord) []bucket {
	grouped := journal.GroupBySymbol(records)
	var buckets []bucket
	for _, sym := range journal.Symbols(records) {
		buckets = append(buckets, bucket{key: sym, records: grouped[sym]})
	}
	return buckets
}

func weekdayBuckets(records []journal.TradeRecord) []bucket {
	grouped := journal.GroupByWeekday(records)
	var buckets []bucket
	for _, label := range journal.WeekdayLabels {
		buckets = append(buckets, bucket{key: label, records: grouped[label]})
	}
	return buckets
}

func writeGrouping(dir, name string, buckets []bucket, variant journal.Variant) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.csv", time.Now().Format("2006-01-02"), name))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if variant == journal.VariantDay {
		rows := make([]dayRow, 0, len(buckets))
		for _, b := range buckets {
			s := stats.ComputeDay(b.records)
			rows = append(rows, dayRow{
				Bucket:          b.key,
				ProfitableDays:  s.ProfitableDays,
				LosingDays:      s.LosingDays,
				DayWinRatePct:   s.DayWinRatePct,
				NetPnL:          s.NetPnL,
				GrossPnL:        s.GrossPnL,
				TotalCommission: s.TotalCommission,
				ProfitFactor:    s.ProfitFactor,
			})
		}
		if err := gocsv.MarshalFile(&rows, f); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
		return path, nil
	}

	rows := make([]tradeRow, 0, len(buckets))
	for _, b := range buckets {
		s := stats.ComputeTrade(b.records)
		rows = append(rows, tradeRow{
			Bucket:        b.key,
			TotalTrades:   s.TotalTrades,
			WinningTrades: s.WinningTrades,
			LosingTrades:  s.LosingTrades,
			WinRatePct:    s.WinRate,
			NetPnL:        s.NetPnL,
			GrossProfit:   s.GrossProfit,
			GrossLoss:     s.GrossLoss,
			ProfitFactor:  s.ProfitFactor,
			Expectancy:    s.Expectancy,
		})
	}
	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
