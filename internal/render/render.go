// Package render formats summaries for display. The numeric contracts here
// are part of the output boundary: sign-aware money with two decimals and
// thousands separators, percentages with one decimal, ratios with two.
package render

import (
	"fmt"
	"strings"

	"tradelens/internal/stats"
)

// Money formats a signed amount, e.g. "$1,234.56" and "-$1,234.56".
func Money(v float64) string {
	formatted := "$" + group(fmt.Sprintf("%.2f", abs(v)))
	if v < 0 {
		return "-" + formatted
	}
	return formatted
}

// Percent formats a percentage with one decimal place, e.g. "33.3%".
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Ratio formats a ratio with two decimal places, e.g. "2.00".
func Ratio(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// group inserts thousands separators into the integer part of a formatted
// non-negative number.
func group(s string) string {
	intPart, frac, _ := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		if frac == "" {
			return intPart
		}
		return intPart + "." + frac
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// NoData is the panel shown when the filtered record set is empty.
func NoData(title string) string {
	var sb strings.Builder
	sb.WriteString("== " + title + " ==\n")
	sb.WriteString("No trade data yet.\n")
	return sb.String()
}

// TradePanel renders the per-trade framing as a text stats grid.
func TradePanel(title string, s stats.TradeSummary) string {
	if s.TotalTrades == 0 {
		return NoData(title)
	}

	var sb strings.Builder
	sb.WriteString("== " + title + " ==\n")
	writeLine(&sb, "Total Trades", fmt.Sprintf("%d", s.TotalTrades))
	writeLine(&sb, "Winners / Losers", fmt.Sprintf("%d / %d", s.WinningTrades, s.LosingTrades))
	writeLine(&sb, "Win Rate", Percent(s.WinRate))
	writeLine(&sb, "Net PnL", Money(s.NetPnL))
	writeLine(&sb, "Gross Profit", Money(s.GrossProfit))
	writeLine(&sb, "Gross Loss", Money(s.GrossLoss))
	writeLine(&sb, "Profit Factor", Ratio(s.ProfitFactor))
	writeLine(&sb, "Expectancy", Money(s.Expectancy))
	writeLine(&sb, "Avg Win / Loss", Money(s.AvgWin)+" / "+Money(s.AvgLoss))
	writeLine(&sb, "Largest Win", Money(s.LargestWin))
	writeLine(&sb, "Largest Loss", Money(s.LargestLoss))
	writeLine(&sb, "Avg Win %", Percent(s.AvgWinPct))
	return sb.String()
}

// DayPanel renders the per-day framing as a text stats grid.
func DayPanel(title string, s stats.DaySummary) string {
	if s.ProfitableDays == 0 && s.LosingDays == 0 && s.NetPnL == 0 && s.GrossPnL == 0 {
		return NoData(title)
	}

	var sb strings.Builder
	sb.WriteString("== " + title + " ==\n")
	writeLine(&sb, "Profitable Days", fmt.Sprintf("%d", s.ProfitableDays))
	writeLine(&sb, "Losing Days", fmt.Sprintf("%d", s.LosingDays))
	writeLine(&sb, "Day Win Rate", Percent(s.DayWinRatePct))
	writeLine(&sb, "Net PnL", Money(s.NetPnL))
	writeLine(&sb, "Gross PnL", Money(s.GrossPnL))
	writeLine(&sb, "Total Commission", Money(s.TotalCommission))
	writeLine(&sb, "Profit Factor", Ratio(s.ProfitFactor))
	writeLine(&sb, "Expectancy", Money(s.Expectancy))
	writeLine(&sb, "Worst Day Net", Money(s.WorstDayNet))
	writeLine(&sb, "Worst Intraday Low", Money(s.WorstIntradayLow))
	return sb.String()
}

func writeLine(sb *strings.Builder, label, value string) {
	fmt.Fprintf(sb, "%-20s %s\n", label, value)
}
