package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelens/internal/journal"
)

func tradeRec(dateLabel, symbol string, net float64) journal.TradeRecord {
	r, ok := journal.NormalizeRow(journal.Row{
		journal.ColDate:   dateLabel,
		journal.ColSymbol: symbol,
	}, journal.VariantTrade)
	if !ok {
		panic("bad test record")
	}
	r.NetPnL = net
	return r
}

func TestComputeTradeEmptyInput(t *testing.T) {
	assert.Equal(t, TradeSummary{}, ComputeTrade(nil))
	assert.Equal(t, TradeSummary{}, ComputeTrade([]journal.TradeRecord{}))
}

func TestComputeTradeScenario(t *testing.T) {
	records := []journal.TradeRecord{
		tradeRec("2024-01-02", "AAA", 100),
		tradeRec("2024-01-03", "AAA", -40),
		tradeRec("2024-01-03", "BBB", -10),
	}

	s := ComputeTrade(records)

	assert.Equal(t, 3, s.TotalTrades)
	assert.Equal(t, 1, s.WinningTrades)
	assert.Equal(t, 2, s.LosingTrades)
	assert.Equal(t, 50.0, s.NetPnL)
	assert.Equal(t, 100.0, s.GrossProfit)
	assert.Equal(t, 50.0, s.GrossLoss)
	assert.Equal(t, 2.0, s.ProfitFactor)
	assert.InDelta(t, 33.3, s.WinRate, 0.05)
	assert.Equal(t, 100.0, s.AvgWin)
	assert.Equal(t, 25.0, s.AvgLoss)
	assert.Equal(t, 100.0, s.LargestWin)
	assert.Equal(t, -40.0, s.LargestLoss)

	// Expectancy = (1/3)*100 - (2/3)*25
	assert.InDelta(t, 16.667, s.Expectancy, 0.001)
}

func TestComputeTradeZeroNetIsNeither(t *testing.T) {
	records := []journal.TradeRecord{
		tradeRec("2024-01-02", "AAA", 0),
		tradeRec("2024-01-03", "AAA", 10),
	}

	s := ComputeTrade(records)

	assert.Equal(t, 2, s.TotalTrades)
	assert.Equal(t, 1, s.WinningTrades)
	assert.Equal(t, 0, s.LosingTrades)
	assert.LessOrEqual(t, s.WinningTrades+s.LosingTrades, s.TotalTrades)
}

func TestComputeTradeProfitFactorSentinel(t *testing.T) {
	onlyWins := ComputeTrade([]journal.TradeRecord{tradeRec("2024-01-02", "AAA", 5)})
	assert.Equal(t, 999.0, onlyWins.ProfitFactor)

	onlyFlat := ComputeTrade([]journal.TradeRecord{tradeRec("2024-01-02", "AAA", 0)})
	assert.Equal(t, 0.0, onlyFlat.ProfitFactor)
}

func TestComputeTradeNetPnLExactSum(t *testing.T) {
	records := []journal.TradeRecord{
		tradeRec("2024-01-02", "AAA", 0.1),
		tradeRec("2024-01-02", "AAA", 0.2),
		tradeRec("2024-01-02", "AAA", -0.05),
	}

	want := 0.0
	for _, r := range records {
		want += r.NetPnL
	}
	assert.Equal(t, want, ComputeTrade(records).NetPnL)
}

func TestComputeTradeIdempotent(t *testing.T) {
	records := []journal.TradeRecord{
		tradeRec("2024-01-02", "AAA", 100),
		tradeRec("2024-01-03", "BBB", -40),
	}

	first := ComputeTrade(records)
	second := ComputeTrade(records)
	require.Equal(t, first, second)
}

func TestComputeTradeAvgWinPct(t *testing.T) {
	a := tradeRec("2024-01-02", "AAA", 10)
	a.WinPct = 60
	b := tradeRec("2024-01-03", "AAA", -5)
	b.WinPct = 40

	s := ComputeTrade([]journal.TradeRecord{a, b})
	assert.Equal(t, 50.0, s.AvgWinPct)
}
