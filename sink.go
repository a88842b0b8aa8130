package pagescrape

import "context"

// Sink stores an encoded ScrapeResult.
type Sink interface {
	// Store persists data, replacing anything previously stored.
	Store(ctx context.Context, data []byte) error
}
