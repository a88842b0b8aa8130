package scrape

import (
	"context"

	"github.com/fwojciec/pagescrape"
)

// Service extracts a page and stores the encoded record.
type Service struct {
	Extractor pagescrape.Extractor
	Sink      pagescrape.Sink
}

// Run extracts rawURL and stores the JSON-encoded result.
// The sink is only called once extraction and encoding have succeeded,
// so a failed run never writes partial output.
func (s *Service) Run(ctx context.Context, rawURL string) (*pagescrape.ScrapeResult, error) {
	result, err := s.Extractor.Extract(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	data, err := pagescrape.MarshalResult(result)
	if err != nil {
		return nil, err
	}

	if err := s.Sink.Store(ctx, data); err != nil {
		return nil, err
	}
	return result, nil
}
