package mock

import "github.com/fwojciec/pagescrape"

var _ pagescrape.Parser = (*Parser)(nil)

// Parser is a mock implementation of pagescrape.Parser.
type Parser struct {
	ParseFn func(doc *pagescrape.Document) (*pagescrape.Page, error)
}

func (p *Parser) Parse(doc *pagescrape.Document) (*pagescrape.Page, error) {
	return p.ParseFn(doc)
}
