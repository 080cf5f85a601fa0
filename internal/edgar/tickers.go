package edgar

import (
	"context"
	"sort"
	"strconv"
	"strings"
)

// Company is one entry from the SEC ticker directory.
type Company struct {
	CIK    int    `json:"cik"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

// PaddedCIK returns the company's CIK zero-padded for API calls.
func (c Company) PaddedCIK() string {
	return PaddedCIK(c.CIK)
}

// CompanyTickers downloads the full ticker-to-CIK directory. The feed
// is a JSON object keyed by stringified index ("0", "1", ...); entries
// come back in that index order.
func (c *Client) CompanyTickers(ctx context.Context) ([]Company, error) {
	var raw map[string]struct {
		CIK    int    `json:"cik_str"`
		Ticker string `json:"ticker"`
		Title  string `json:"title"`
	}
	if err := c.getJSON(ctx, c.tickersURL, &raw); err != nil {
		return nil, err
	}

	type indexed struct {
		idx int
		co  Company
	}
	entries := make([]indexed, 0, len(raw))
	for key, e := range raw {
		idx, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		entries = append(entries, indexed{idx: idx, co: Company{CIK: e.CIK, Ticker: e.Ticker, Title: e.Title}})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].idx < entries[j].idx })

	companies := make([]Company, len(entries))
	for i, e := range entries {
		companies[i] = e.co
	}
	return companies, nil
}

// SearchCompanies returns directory entries whose ticker matches query
// exactly or whose title contains it, case-insensitively. Ticker
// matches sort first.
func (c *Client) SearchCompanies(ctx context.Context, query string) ([]Company, error) {
	companies, err := c.CompanyTickers(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return companies, nil
	}

	var tickerHits, titleHits []Company
	for _, co := range companies {
		switch {
		case strings.ToLower(co.Ticker) == q:
			tickerHits = append(tickerHits, co)
		case strings.Contains(strings.ToLower(co.Title), q):
			titleHits = append(titleHits, co)
		}
	}
	return append(tickerHits, titleHits...), nil
}

// LookupCIK resolves a ticker symbol to its zero-padded CIK.
func (c *Client) LookupCIK(ctx context.Context, ticker string) (string, error) {
	companies, err := c.CompanyTickers(ctx)
	if err != nil {
		return "", err
	}
	t := strings.ToUpper(strings.TrimSpace(ticker))
	for _, co := range companies {
		if co.Ticker == t {
			return co.PaddedCIK(), nil
		}
	}
	return "", &NotFoundError{Ticker: ticker}
}

// NotFoundError reports a ticker absent from the SEC directory.
type NotFoundError struct {
	Ticker string
}

func (e *NotFoundError) Error() string {
	return "ticker " + e.Ticker + " not found in SEC directory"
}
