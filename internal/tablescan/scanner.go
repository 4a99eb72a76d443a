// Package tablescan locates the trade-history table inside an HTML page and
// extracts its rows as labeled cell text.
package tablescan

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tradelens/internal/journal"
)

// ErrTableNotFound reports that no table in the document carries the journal
// header columns. The watch loop retries on this error until the page has
// rendered the table.
var ErrTableNotFound = errors.New("trade table not found")

// Selectors configures where the scanner looks inside the page.
type Selectors struct {
	Table  string // candidate tables, e.g. "table"
	Header string // header cells within a table, e.g. "thead th"
	Row    string // data rows within a table, e.g. "tbody tr"
	Cell   string // cells within a row, e.g. "td"
	Badge  string // optional symbol badge within a cell
}

// DefaultSelectors matches a plain semantic HTML table.
func DefaultSelectors() Selectors {
	return Selectors{
		Table:  "table",
		Header: "thead th",
		Row:    "tbody tr",
		Cell:   "td",
		Badge:  ".symbol-badge",
	}
}

// ScanHTML parses an HTML document from r and extracts the journal rows.
func ScanHTML(r io.Reader, sel Selectors) ([]journal.Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return Scan(doc, sel)
}

// Scan finds the first table whose header carries the Date, Symbol and Net
// PnL columns and returns its rows in document order.
func Scan(doc *goquery.Document, sel Selectors) ([]journal.Row, error) {
	var rows []journal.Row
	found := false

	doc.Find(sel.Table).EachWithBreak(func(_ int, table *goquery.Selection) bool {
		headers := headerLabels(table, sel)
		if !isJournalTable(headers) {
			return true
		}
		found = true
		rows = extractRows(table, headers, sel)
		return false
	})

	if !found {
		return nil, ErrTableNotFound
	}
	return rows, nil
}

func headerLabels(table *goquery.Selection, sel Selectors) []string {
	var labels []string
	table.Find(sel.Header).Each(func(_ int, cell *goquery.Selection) {
		labels = append(labels, strings.TrimSpace(cell.Text()))
	})
	return labels
}

// isJournalTable checks for the columns every journal variant shares.
func isJournalTable(headers []string) bool {
	has := func(want string) bool {
		for _, h := range headers {
			if strings.EqualFold(h, want) {
				return true
			}
		}
		return false
	}
	return has(journal.ColDate) && has(journal.ColSymbol) && has(journal.ColNetPnL)
}

// knownColumns maps display header text onto canonical row keys so that
// header casing on the page does not leak into lookups downstream.
var knownColumns = []string{
	journal.ColDate, journal.ColSymbol, journal.ColNetPnL, journal.ColWinPct,
	journal.ColAvgWin, journal.ColAvgLoss, journal.ColCommission,
	journal.ColPnLHigh, journal.ColPnLLow,
}

func canonicalLabel(header string) string {
	for _, col := range knownColumns {
		if strings.EqualFold(header, col) {
			return col
		}
	}
	return header
}

func extractRows(table *goquery.Selection, headers []string, sel Selectors) []journal.Row {
	var rows []journal.Row
	table.Find(sel.Row).Each(func(_ int, tr *goquery.Selection) {
		row := journal.Row{}
		tr.Find(sel.Cell).Each(func(i int, cell *goquery.Selection) {
			if i >= len(headers) {
				return
			}
			label := canonicalLabel(headers[i])
			if sel.Badge != "" {
				if badge := strings.TrimSpace(cell.Find(sel.Badge).Text()); badge != "" && strings.EqualFold(label, journal.ColSymbol) {
					row[journal.ColSymbolBadge] = badge
				}
			}
			row[label] = strings.TrimSpace(cell.Text())
		})
		if len(row) > 0 {
			rows = append(rows, row)
		}
	})
	return rows
}
