package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelens/internal/journal"
)

func rec(dateLabel, symbol string) journal.TradeRecord {
	r, ok := journal.NormalizeRow(journal.Row{
		journal.ColDate:   dateLabel,
		journal.ColSymbol: symbol,
	}, journal.VariantTrade)
	if !ok {
		panic("bad test record")
	}
	return r
}

func testRecords() []journal.TradeRecord {
	return []journal.TradeRecord{
		rec("2024-01-02", "BBB"), // Tue
		rec("2024-01-03", "AAA"), // Wed
		rec("2024-01-03", "BBB"), // Wed
	}
}

func TestWithModeAssetAutoSelectsFirstSymbol(t *testing.T) {
	s := Selection{}.WithMode(testRecords(), ModeAsset)
	assert.Equal(t, ModeAsset, s.Mode)
	assert.Equal(t, "AAA", s.Symbol)
}

func TestWithModeAssetKeepsExistingSymbol(t *testing.T) {
	s := Selection{Symbol: "BBB"}.WithMode(testRecords(), ModeAsset)
	assert.Equal(t, "BBB", s.Symbol)
}

func TestWithModeDayAutoSelectsFirstPopulatedWeekday(t *testing.T) {
	s := Selection{}.WithMode(testRecords(), ModeDay)
	assert.Equal(t, ModeDay, s.Mode)
	assert.Equal(t, "Tue", s.Day)
}

func TestWithModeDayDefaultsToMondayWithoutDates(t *testing.T) {
	records := []journal.TradeRecord{rec("no real date", "AAA")}
	s := Selection{}.WithMode(records, ModeDay)
	assert.Equal(t, "Mon", s.Day)
}

func TestWithModeAllClearsKeys(t *testing.T) {
	s := Selection{Mode: ModeAsset, Symbol: "AAA", Day: "Tue"}.WithMode(testRecords(), ModeAll)
	assert.Equal(t, ModeAll, s.Mode)
	assert.Empty(t, s.Symbol)
	assert.Empty(t, s.Day)
}

func TestApplySubsets(t *testing.T) {
	records := testRecords()

	all := Selection{Mode: ModeAll}.Apply(records)
	assert.Len(t, all, 3)

	asset := Selection{Mode: ModeAsset, Symbol: "BBB"}.Apply(records)
	require.Len(t, asset, 2)
	for _, r := range asset {
		assert.Equal(t, "BBB", r.Symbol)
	}

	day := Selection{Mode: ModeDay, Day: "Wed"}.Apply(records)
	assert.Len(t, day, 2)

	unknown := Selection{Mode: ModeAsset, Symbol: "ZZZ"}.Apply(records)
	assert.Empty(t, unknown)
}

func TestSelectionIsImmutable(t *testing.T) {
	base := Selection{Mode: ModeAll}
	_ = base.WithSymbol("AAA")
	_ = base.WithDay("Tue")
	assert.Equal(t, Selection{Mode: ModeAll}, base)
}
