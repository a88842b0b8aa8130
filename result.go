package pagescrape

import (
	"bytes"
	"encoding/json"
)

// ScrapeResult is the normalized record produced from one fetched page.
type ScrapeResult struct {
	// URL is the requested URL exactly as given, never normalized.
	URL string `json:"url"`

	// Title is the text of the page's title element, or "" if absent.
	Title string `json:"title"`

	// Features holds the text of each feature marker in document order.
	Features []string `json:"features"`
}

// MarshalResult encodes r as UTF-8 JSON with 2-space indentation and a
// trailing newline. HTML characters are written literally and an empty
// feature list encodes as [] rather than null.
func MarshalResult(r *ScrapeResult) ([]byte, error) {
	if r == nil {
		return nil, Errorf(EINVALID, "nil scrape result")
	}

	out := *r
	if out.Features == nil {
		out.Features = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&out); err != nil {
		return nil, Errorf(EINTERNAL, "encode scrape result: %v", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalResult decodes a record produced by MarshalResult.
// A missing or null features list decodes to an empty, non-nil slice.
func UnmarshalResult(data []byte) (*ScrapeResult, error) {
	var r ScrapeResult
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, Errorf(EINVALID, "decode scrape result: %v", err)
	}
	if r.Features == nil {
		r.Features = []string{}
	}
	return &r, nil
}
