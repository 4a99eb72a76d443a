package watch

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/gocolly/colly/v2"

	"tradelens/internal/journal"
	"tradelens/internal/tablescan"
)

// Source supplies one fresh batch of raw journal rows per call.
type Source interface {
	Fetch(ctx context.Context) ([]journal.Row, error)
}

// URLSource fetches the journal page over HTTP and scans it for the trade
// table.
type URLSource struct {
	url       string
	selectors tablescan.Selectors
	timeout   time.Duration
}

func NewURLSource(pageURL string, selectors tablescan.Selectors, timeout time.Duration) *URLSource {
	return &URLSource{url: pageURL, selectors: selectors, timeout: timeout}
}

func (s *URLSource) Fetch(ctx context.Context) ([]journal.Row, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(getDomain(s.url)),
		colly.MaxDepth(1),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(s.timeout)

	// Set user agent to avoid being blocked
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	})

	var (
		rows    []journal.Row
		scanErr error
	)
	c.OnResponse(func(r *colly.Response) {
		rows, scanErr = tablescan.ScanHTML(bytes.NewReader(r.Body), s.selectors)
	})

	if err := c.Visit(s.url); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", s.url, err)
	}
	c.Wait()

	if scanErr != nil {
		return nil, scanErr
	}
	return rows, nil
}

// FileSource scans a saved HTML export from disk, useful for offline runs
// and tests.
type FileSource struct {
	path      string
	selectors tablescan.Selectors
}

func NewFileSource(path string, selectors tablescan.Selectors) *FileSource {
	return &FileSource{path: path, selectors: selectors}
}

func (s *FileSource) Fetch(ctx context.Context) ([]journal.Row, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()
	return tablescan.ScanHTML(f, s.selectors)
}

// getDomain extracts domain from URL
func getDomain(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
