package pagescrape

import "context"

// Document is a fetched page before parsing.
type Document struct {
	// URL is the final URL after redirects.
	URL string

	StatusCode int

	// ContentType is the raw Content-Type response header, possibly empty.
	ContentType string

	Body []byte
}

// Fetcher retrieves a single page.
type Fetcher interface {
	// Fetch issues one GET request for url and returns the response.
	// Transport failures are ENETWORK and non-2xx responses are EHTTP.
	// The context controls cancellation; implementations also apply
	// their own timeout.
	Fetch(ctx context.Context, url string) (*Document, error)
}
