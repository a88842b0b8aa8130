// Package scrape composes a Fetcher and a Parser into a single-page
// Extractor and pairs it with a Sink for persistence.
package scrape

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/pagescrape"
)

// Ensure Extractor implements pagescrape.Extractor at compile time.
var _ pagescrape.Extractor = (*Extractor)(nil)

// Extractor fetches one URL and parses the response.
type Extractor struct {
	Fetcher pagescrape.Fetcher
	Parser  pagescrape.Parser
}

// Extract validates rawURL, fetches it once and parses the response.
// The returned record carries rawURL verbatim, even after redirects.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*pagescrape.ScrapeResult, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	doc, err := e.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	page, err := e.Parser.Parse(doc)
	if err != nil {
		return nil, err
	}

	features := make([]string, len(page.Features))
	copy(features, page.Features)

	return &pagescrape.ScrapeResult{
		URL:      rawURL,
		Title:    page.Title,
		Features: features,
	}, nil
}

// ValidateURL returns EINVALID unless rawURL is an absolute http or https
// URL with a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return pagescrape.Errorf(pagescrape.EINVALID, "URL required")
	}
	if strings.TrimSpace(rawURL) != rawURL {
		return pagescrape.Errorf(pagescrape.EINVALID, "URL %q has surrounding whitespace", rawURL)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return pagescrape.Errorf(pagescrape.EINVALID, "malformed URL %q: %v", rawURL, err)
	}
	if !u.IsAbs() {
		return pagescrape.Errorf(pagescrape.EINVALID, "URL %q is not absolute", rawURL)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return pagescrape.Errorf(pagescrape.EINVALID, "unsupported URL scheme %q", u.Scheme)
	}
	if u.Host == "" || u.Hostname() == "" {
		return pagescrape.Errorf(pagescrape.EINVALID, "URL %q has no host", rawURL)
	}
	return nil
}
