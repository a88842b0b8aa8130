package mock

import (
	"context"

	"github.com/fwojciec/pagescrape"
)

var _ pagescrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagescrape.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, url string) (*pagescrape.ScrapeResult, error)
}

func (e *Extractor) Extract(ctx context.Context, url string) (*pagescrape.ScrapeResult, error) {
	return e.ExtractFn(ctx, url)
}
