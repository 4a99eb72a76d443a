package stats

import "tradelens/internal/journal"

// DaySummary is the per-day framing of a record set. Win rate is counted
// over distinct trading days; profit factor is computed on gross P&L (net
// plus commission added back), using the sign of each record's gross figure
// independent of its net sign.
type DaySummary struct {
	ProfitableDays   int
	LosingDays       int
	DayWinRatePct    float64
	GrossPnL         float64
	TotalCommission  float64
	ProfitFactor     float64
	NetPnL           float64
	Expectancy       float64
	WorstDayNet      float64
	WorstIntradayLow float64
}

// ComputeDay reduces records into a DaySummary. Days are keyed by the
// record's date label; a day netting exactly zero counts as neither
// profitable nor losing.
func ComputeDay(records []journal.TradeRecord) DaySummary {
	s := DaySummary{}
	if len(records) == 0 {
		return s
	}

	var grossProfit, grossLoss float64
	dayNet := make(map[string]float64)
	var (
		worstLow float64
		haveLow  bool
	)
	for _, rec := range records {
		s.NetPnL += rec.NetPnL
		s.TotalCommission += rec.Commission

		gross := rec.GrossPnL()
		s.GrossPnL += gross
		if gross > 0 {
			grossProfit += gross
		} else if gross < 0 {
			grossLoss += -gross
		}

		dayNet[rec.DateLabel] += rec.NetPnL

		if rec.HasPnLLow && (!haveLow || rec.PnLLow < worstLow) {
			worstLow = rec.PnLLow
			haveLow = true
		}
	}

	var wins, losses []float64
	first := true
	for _, net := range dayNet {
		if first || net < s.WorstDayNet {
			s.WorstDayNet = net
			first = false
		}
		if net > 0 {
			s.ProfitableDays++
			wins = append(wins, net)
		} else if net < 0 {
			s.LosingDays++
			losses = append(losses, -net)
		}
	}

	s.DayWinRatePct = float64(s.ProfitableDays) / float64(len(dayNet)) * 100
	s.ProfitFactor = profitFactor(grossProfit, grossLoss)
	s.Expectancy = expectancy(s.DayWinRatePct, mean(wins), mean(losses))

	if haveLow {
		s.WorstIntradayLow = worstLow
	} else {
		s.WorstIntradayLow = s.WorstDayNet
	}

	return s
}
