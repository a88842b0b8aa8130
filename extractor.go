package pagescrape

import "context"

// Extractor fetches and parses a single URL into a ScrapeResult.
type Extractor interface {
	// Extract validates url, fetches it once and parses the response.
	// Malformed URLs return EINVALID before any network attempt.
	// Nothing is retried.
	Extract(ctx context.Context, url string) (*ScrapeResult, error)
}
