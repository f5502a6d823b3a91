package pepper

// HeaderExtractor recovers the header block from a PEP detail page.
type HeaderExtractor interface {
	// ExtractHeader parses page and returns its normalized header.
	// Returns EMALFORMED if the title or Author field cannot be found.
	ExtractHeader(page string) (*Header, error)
}

// IndexExtractor recovers the numerical index from the PEP 0 page.
type IndexExtractor interface {
	// ExtractIndex returns the complete rows of the numerical index in
	// document order. Pages without an index yield an empty slice.
	ExtractIndex(page string) []*IndexEntry
}

// AbstractExtractor locates the Abstract section of a PEP detail page.
type AbstractExtractor interface {
	// ExtractAbstract returns the body of the Abstract section as HTML,
	// without its heading. Returns ENOTFOUND if the page has no abstract.
	ExtractAbstract(page string) (string, error)
}
