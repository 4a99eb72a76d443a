package journal

import "sort"

// WeekdayLabels are the seven weekday bucket keys, Sunday first to match
// time.Weekday indexing.
var WeekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// GroupBySymbol partitions records into per-symbol buckets in a single pass.
// Each bucket keeps the encounter order of its records.
func GroupBySymbol(records []TradeRecord) map[string][]TradeRecord {
	buckets := make(map[string][]TradeRecord)
	for _, rec := range records {
		buckets[rec.Symbol] = append(buckets[rec.Symbol], rec)
	}
	return buckets
}

// Symbols returns the distinct symbols of a record set, sorted
// lexicographically for selector enumeration.
func Symbols(records []TradeRecord) []string {
	seen := make(map[string]struct{})
	symbols := make([]string, 0)
	for _, rec := range records {
		if _, ok := seen[rec.Symbol]; ok {
			continue
		}
		seen[rec.Symbol] = struct{}{}
		symbols = append(symbols, rec.Symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// GroupByWeekday partitions records into the seven weekday buckets. Every
// label is present in the result even when its bucket is empty. Records
// without a parseable date land in no bucket.
func GroupByWeekday(records []TradeRecord) map[string][]TradeRecord {
	buckets := make(map[string][]TradeRecord, len(WeekdayLabels))
	for _, label := range WeekdayLabels {
		buckets[label] = []TradeRecord{}
	}
	for _, rec := range records {
		name := rec.DayName()
		if name == "" {
			continue
		}
		buckets[name] = append(buckets[name], rec)
	}
	return buckets
}
