// Package stats reduces canonical trade records into summary figures. Two
// framings exist and stay distinct: per-trade (TradeSummary) and per-day
// (DaySummary). Both reductions are pure, single-pass, and return the zero
// summary for empty input.
package stats

import mstats "github.com/montanaflynn/stats"

// profitFactorCap is the display sentinel used instead of +Inf when there
// are gains but zero losses.
const profitFactorCap = 999

// profitFactor is the ratio of total gains to total losses, with loss passed
// as a positive magnitude. Zero losses yield the cap when any profit exists,
// otherwise 0.
func profitFactor(profit, loss float64) float64 {
	if loss == 0 {
		if profit > 0 {
			return profitFactorCap
		}
		return 0
	}
	return profit / loss
}

// mean is stats.Mean with the empty-input error degraded to 0.
func mean(values []float64) float64 {
	m, err := mstats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

// expectancy is the probability-weighted expected P&L given a win rate in
// percent and average win/loss magnitudes (loss positive).
func expectancy(winRatePct, avgWin, avgLoss float64) float64 {
	p := winRatePct / 100
	return p*avgWin - (1-p)*avgLoss
}
