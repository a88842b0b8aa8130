// Package htmltomarkdown renders feature fragments as Markdown using
// JohannesKaufmann/html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pagescrape"
)

// Ensure Converter implements pagescrape.Converter at compile time.
var _ pagescrape.Converter = (*Converter)(nil)

// Converter renders the inner HTML of one feature element as CommonMark so
// emphasis, links, inline code and nested lists survive in the stored
// feature string. Tables are rendered as GFM pipe tables.
type Converter struct {
	conv *converter.Converter
}

// NewConverter returns a Converter for --feature-format=markdown. It is safe
// for sequential reuse across every feature of a page.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert renders a feature fragment. The result has no leading or trailing
// blank lines, so a feature whose markup is only whitespace after conversion
// yields "" and is dropped by the parser.
// Returns EINVALID for a blank fragment and EPARSE if conversion fails.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pagescrape.Errorf(pagescrape.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", pagescrape.Errorf(pagescrape.EPARSE, "convert to markdown: %v", err)
	}
	return strings.TrimSpace(md), nil
}
