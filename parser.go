package pagescrape

// Page holds the content extracted from a Document.
type Page struct {
	Title    string
	Features []string
}

// Parser extracts the title and feature markers from fetched markup.
type Parser interface {
	// Parse decodes and parses doc.Body. Content that cannot be parsed as
	// markup returns EPARSE. A missing title is not an error.
	Parse(doc *Document) (*Page, error)
}
