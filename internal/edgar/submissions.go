package edgar

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Submissions is the company filing history from the submissions API.
type Submissions struct {
	CIK        string   `json:"cik"`
	Name       string   `json:"name"`
	EntityType string   `json:"entityType"`
	SIC        string   `json:"sic"`
	SICDesc    string   `json:"sicDescription"`
	Tickers    []string `json:"tickers"`
	Exchanges  []string `json:"exchanges"`
	Filings    struct {
		Recent recentFilings `json:"recent"`
	} `json:"filings"`
}

// recentFilings mirrors the API's parallel-array layout. Index i across
// every slice describes one filing.
type recentFilings struct {
	AccessionNumber []string `json:"accessionNumber"`
	FilingDate      []string `json:"filingDate"`
	ReportDate      []string `json:"reportDate"`
	Form            []string `json:"form"`
	PrimaryDocument []string `json:"primaryDocument"`
	PrimaryDocDesc  []string `json:"primaryDocDescription"`
	Size            []int    `json:"size"`
}

// Filing is one SEC filing, denormalized from the parallel arrays.
type Filing struct {
	AccessionNumber string    `json:"accession_number"`
	FilingDate      time.Time `json:"filing_date"`
	ReportDate      time.Time `json:"report_date"`
	Form            string    `json:"form"`
	PrimaryDocument string    `json:"primary_document"`
	Description     string    `json:"description"`
	Size            int       `json:"size"`
	URL             string    `json:"url"`
}

// Submissions fetches the filing history for a zero-padded CIK.
func (c *Client) Submissions(ctx context.Context, paddedCIK string) (*Submissions, error) {
	url := fmt.Sprintf("%s/CIK%s.json", c.submissionsURL, paddedCIK)
	var subs Submissions
	if err := c.getJSON(ctx, url, &subs); err != nil {
		return nil, err
	}
	return &subs, nil
}

// RecentFilings flattens the submission history into Filing values,
// newest first (the API's order), optionally filtered by form type.
// limit caps the result; 0 means no cap.
func (c *Client) RecentFilings(subs *Submissions, form string, limit int) []Filing {
	recent := subs.Filings.Recent
	filings := make([]Filing, 0, len(recent.AccessionNumber))

	for i := range recent.AccessionNumber {
		if form != "" && !strings.EqualFold(field(recent.Form, i), form) {
			continue
		}

		filingDate, _ := time.Parse("2006-01-02", field(recent.FilingDate, i))
		reportDate, _ := time.Parse("2006-01-02", field(recent.ReportDate, i))

		accession := recent.AccessionNumber[i]
		doc := field(recent.PrimaryDocument, i)
		url := fmt.Sprintf("%s/%s/%s/%s",
			c.archivesURL,
			strings.TrimLeft(subs.CIK, "0"),
			strings.ReplaceAll(accession, "-", ""),
			doc,
		)

		var size int
		if i < len(recent.Size) {
			size = recent.Size[i]
		}

		filings = append(filings, Filing{
			AccessionNumber: accession,
			FilingDate:      filingDate,
			ReportDate:      reportDate,
			Form:            field(recent.Form, i),
			PrimaryDocument: doc,
			Description:     field(recent.PrimaryDocDesc, i),
			Size:            size,
			URL:             url,
		})

		if limit > 0 && len(filings) >= limit {
			break
		}
	}
	return filings
}

// field indexes a parallel array; the API occasionally ships arrays of
// unequal length.
func field(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}
