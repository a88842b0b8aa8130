// Package goquery implements pagescrape.Parser using CSS selectors
// evaluated with goquery and cascadia.
package goquery

import (
	"bytes"
	"mime"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/pagescrape"
	"golang.org/x/net/html/charset"
)

// Ensure Parser implements pagescrape.Parser at compile time.
var _ pagescrape.Parser = (*Parser)(nil)

// Parser extracts the page title and feature markers from HTML.
type Parser struct {
	title    cascadia.Selector
	features cascadia.Selector

	// conv renders features as Markdown when set; plain text otherwise.
	conv pagescrape.Converter
}

// Option configures a Parser.
type Option func(*Parser)

// WithConverter renders each feature's inner HTML through conv instead of
// taking its text.
func WithConverter(conv pagescrape.Converter) Option {
	return func(p *Parser) {
		p.conv = conv
	}
}

// NewParser compiles the title and feature selectors.
// Returns EINVALID if either selector is not valid CSS.
func NewParser(titleSelector, featureSelector string, opts ...Option) (*Parser, error) {
	title, err := compile("title", titleSelector)
	if err != nil {
		return nil, err
	}
	features, err := compile("feature", featureSelector)
	if err != nil {
		return nil, err
	}

	p := &Parser{title: title, features: features}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func compile(name, selector string) (cascadia.Selector, error) {
	if strings.TrimSpace(selector) == "" {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "%s selector required", name)
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "invalid %s selector %q: %v", name, selector, err)
	}
	return sel, nil
}

// Parse decodes doc.Body to UTF-8 and extracts the title and features.
// Empty, binary or non-markup content returns EPARSE.
func (p *Parser) Parse(doc *pagescrape.Document) (*pagescrape.Page, error) {
	if doc == nil || len(bytes.TrimSpace(doc.Body)) == 0 {
		return nil, pagescrape.Errorf(pagescrape.EPARSE, "empty document")
	}
	if bytes.IndexByte(doc.Body, 0) >= 0 {
		return nil, pagescrape.Errorf(pagescrape.EPARSE, "binary content is not markup")
	}

	// A sniffed type only decides whether the body is markup. Its implied
	// utf-8 charset must not reach the decoder or <meta charset> is ignored.
	contentType := doc.ContentType
	if strings.TrimSpace(contentType) == "" {
		contentType = http.DetectContentType(doc.Body)
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, pagescrape.Errorf(pagescrape.EPARSE, "invalid content type %q: %v", contentType, err)
	}
	if !isMarkup(mediaType) {
		return nil, pagescrape.Errorf(pagescrape.EPARSE, "content type %s is not markup", mediaType)
	}
	if cs, ok := params["charset"]; ok && doc.ContentType != "" {
		if enc, _ := charset.Lookup(cs); enc == nil {
			return nil, pagescrape.Errorf(pagescrape.EPARSE, "unsupported charset %q", cs)
		}
	}

	r, err := charset.NewReader(bytes.NewReader(doc.Body), doc.ContentType)
	if err != nil {
		return nil, pagescrape.Errorf(pagescrape.EPARSE, "decode document: %v", err)
	}

	d, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, pagescrape.Errorf(pagescrape.EPARSE, "failed to parse HTML: %v", err)
	}

	features, err := p.extractFeatures(d)
	if err != nil {
		return nil, err
	}

	return &pagescrape.Page{
		Title:    collapseSpace(d.FindMatcher(p.title).First().Text()),
		Features: features,
	}, nil
}

func (p *Parser) extractFeatures(d *goquery.Document) ([]string, error) {
	features := []string{}
	var err error

	// cascadia walks the tree once, so an element matching several
	// alternatives of the group is still visited once, in document order.
	d.FindMatcher(p.features).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var feature string
		feature, err = p.render(sel)
		if err != nil {
			return false
		}
		if feature != "" {
			features = append(features, feature)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return features, nil
}

func (p *Parser) render(sel *goquery.Selection) (string, error) {
	if p.conv == nil {
		return collapseSpace(sel.Text()), nil
	}

	inner, err := sel.Html()
	if err != nil {
		return "", pagescrape.Errorf(pagescrape.EPARSE, "render feature: %v", err)
	}
	if strings.TrimSpace(inner) == "" {
		return "", nil
	}

	md, err := p.conv.Convert(inner)
	if err != nil {
		return "", pagescrape.Errorf(pagescrape.EPARSE, "convert feature: %s", pagescrape.ErrorMessage(err))
	}
	return strings.TrimSpace(md), nil
}

// isMarkup reports whether mediaType can be parsed as HTML or XML.
func isMarkup(mediaType string) bool {
	switch {
	case mediaType == "application/xhtml+xml", mediaType == "application/xml":
		return true
	case strings.HasPrefix(mediaType, "text/"):
		return true
	case strings.HasSuffix(mediaType, "+xml"):
		return true
	}
	return false
}

// collapseSpace trims s and replaces each run of whitespace with one space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
