package stats

import "tradelens/internal/journal"

// TradeSummary is the per-trade framing of a record set. Win rate and profit
// factor are counted over individual trades; net P&L is terminal (no
// commission concept in this framing).
type TradeSummary struct {
	TotalTrades   int
	WinningTrades int
	LosingTrades  int
	WinRate       float64 // percent
	GrossProfit   float64
	GrossLoss     float64 // positive magnitude
	ProfitFactor  float64
	NetPnL        float64
	Expectancy    float64
	AvgWin        float64
	AvgLoss       float64 // positive magnitude
	LargestWin    float64
	LargestLoss   float64 // most negative net P&L, 0 when no losers
	AvgWinPct     float64
}

// ComputeTrade reduces records into a TradeSummary. Records with exactly
// zero net P&L count as neither winners nor losers.
func ComputeTrade(records []journal.TradeRecord) TradeSummary {
	s := TradeSummary{TotalTrades: len(records)}
	if len(records) == 0 {
		return s
	}

	var wins, losses, winPcts []float64
	for _, rec := range records {
		s.NetPnL += rec.NetPnL
		winPcts = append(winPcts, rec.WinPct)

		switch {
		case rec.NetPnL > 0:
			s.WinningTrades++
			s.GrossProfit += rec.NetPnL
			wins = append(wins, rec.NetPnL)
			if rec.NetPnL > s.LargestWin {
				s.LargestWin = rec.NetPnL
			}
		case rec.NetPnL < 0:
			s.LosingTrades++
			s.GrossLoss += -rec.NetPnL
			losses = append(losses, -rec.NetPnL)
			if rec.NetPnL < s.LargestLoss {
				s.LargestLoss = rec.NetPnL
			}
		}
	}

	s.WinRate = float64(s.WinningTrades) / float64(s.TotalTrades) * 100
	s.ProfitFactor = profitFactor(s.GrossProfit, s.GrossLoss)
	s.AvgWin = mean(wins)
	s.AvgLoss = mean(losses)
	s.AvgWinPct = mean(winPcts)
	s.Expectancy = expectancy(s.WinRate, s.AvgWin, s.AvgLoss)

	return s
}
