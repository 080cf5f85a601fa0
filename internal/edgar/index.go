package edgar

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// IndexEntry is one document listed on a filing's archive index page.
type IndexEntry struct {
	Name string `json:"name"` // file name as linked on the page
	URL  string `json:"url"`  // absolute download URL
	Type string `json:"type"` // document type column, when present
}

// FilingIndex fetches the archive index page for a filing and returns
// the documents it links. The page is plain HTML; the document table
// rows carry a link in one cell and the type in a sibling cell.
func (c *Client) FilingIndex(ctx context.Context, paddedCIK, accessionNumber string) ([]IndexEntry, error) {
	base := fmt.Sprintf("%s/%s/%s",
		c.archivesURL,
		strings.TrimLeft(paddedCIK, "0"),
		strings.ReplaceAll(accessionNumber, "-", ""),
	)

	body, err := c.get(ctx, base+"/", "")
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse index page: %w", err)
	}

	var entries []IndexEntry
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		link := row.Find("a").First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		name := strings.TrimSpace(link.Text())
		if name == "" || strings.HasSuffix(href, "/") {
			return
		}

		docURL := resolveHref(base, href)

		var docType string
		cells := row.Find("td")
		if cells.Length() >= 4 {
			docType = strings.TrimSpace(cells.Eq(3).Text())
		}

		entries = append(entries, IndexEntry{Name: name, URL: docURL, Type: docType})
	})

	if len(entries) == 0 {
		return nil, fmt.Errorf("no documents found in index for %s", accessionNumber)
	}
	return entries, nil
}

// resolveHref makes href absolute against the index page URL. Archive
// pages link documents both relatively and root-relative.
func resolveHref(base, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	b, err := url.Parse(base + "/")
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(ref).String()
}
