// Package edgar queries the SEC EDGAR system for company identifiers
// and filing metadata. The SEC requires a descriptive User-Agent on
// every request and rate-limits anonymous traffic, so all calls go
// through one Client carrying that header.
package edgar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
)

const (
	defaultTickersURL     = "https://www.sec.gov/files/company_tickers.json"
	defaultSubmissionsURL = "https://data.sec.gov/submissions"
	defaultArchivesURL    = "https://www.sec.gov/Archives/edgar/data"

	requestAttempts = 3
	requestDelay    = time.Second
)

// Client is an SEC EDGAR API client.
type Client struct {
	httpClient *http.Client
	userAgent  string

	// Endpoint bases, overridable in tests.
	tickersURL     string
	submissionsURL string
	archivesURL    string
}

// NewClient returns a Client identifying itself with userAgent, which
// the SEC expects to name the requester and a contact address.
func NewClient(userAgent string) *Client {
	return &Client{
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		userAgent:      userAgent,
		tickersURL:     defaultTickersURL,
		submissionsURL: defaultSubmissionsURL,
		archivesURL:    defaultArchivesURL,
	}
}

// PaddedCIK zero-pads a CIK to the 10 digits the submissions API wants.
func PaddedCIK(cik int) string {
	return fmt.Sprintf("%010d", cik)
}

// get fetches url with the required headers, retrying transient
// failures, and returns the response body.
func (c *Client) get(ctx context.Context, url, accept string) ([]byte, error) {
	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return err
			}
			req.Header.Set("User-Agent", c.userAgent)
			if accept != "" {
				req.Header.Set("Accept", accept)
			}

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("unexpected status %d", resp.StatusCode)
			}

			body, err = io.ReadAll(resp.Body)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(requestAttempts),
		retry.Delay(requestDelay),
	)
	if err != nil {
		return nil, fmt.Errorf("edgar request %s failed: %w", url, err)
	}
	return body, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	body, err := c.get(ctx, url, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse edgar response from %s: %w", url, err)
	}
	return nil
}
