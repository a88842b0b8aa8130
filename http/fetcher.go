// Package http provides an HTTP-based implementation of pagescrape.Fetcher.
// It does not execute JavaScript.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/pagescrape"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = pagescrape.DefaultTimeout

const acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

// Ensure Fetcher implements pagescrape.Fetcher at compile time.
var _ pagescrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page content with a single GET request.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	userAgent    string
	maxBodyBytes int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent request header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodyBytes caps how much of the response body is read.
func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodyBytes = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		userAgent:    pagescrape.DefaultUserAgent,
		maxBodyBytes: pagescrape.DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// NewFetcherFromConfig creates a Fetcher using the HTTP settings in cfg.
func NewFetcherFromConfig(cfg pagescrape.Config) *Fetcher {
	return NewFetcher(
		WithTimeout(cfg.Timeout),
		WithUserAgent(cfg.UserAgent),
		WithMaxBodyBytes(cfg.MaxBodyBytes),
	)
}

// Fetch retrieves the content at url. Transport failures are reported as
// ENETWORK, non-2xx responses as EHTTP carrying the status code.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*pagescrape.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "invalid request for %s: %v", url, err)
	}
	req.Header.Set("Accept", acceptHeader)
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, networkError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, pagescrape.HTTPErrorf(resp.StatusCode, "HTTP %d for %s", resp.StatusCode, url)
	}

	// Read one byte past the limit to detect oversized bodies.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes+1))
	if err != nil {
		return nil, networkError(url, err)
	}
	if int64(len(body)) > f.maxBodyBytes {
		return nil, pagescrape.Errorf(pagescrape.EPARSE, "document too large: more than %d bytes", f.maxBodyBytes)
	}

	return &pagescrape.Document{
		URL:         resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

func networkError(url string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return pagescrape.Errorf(pagescrape.ENETWORK, "timeout fetching %s", url)
	case errors.Is(err, context.Canceled):
		return pagescrape.Errorf(pagescrape.ENETWORK, "fetch of %s canceled", url)
	}
	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return pagescrape.Errorf(pagescrape.ENETWORK, "timeout fetching %s", url)
	}
	return pagescrape.Errorf(pagescrape.ENETWORK, "fetch %s: %v", url, err)
}
