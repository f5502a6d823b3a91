package mock

import "github.com/kevinshome/pepper"

// Compile-time interface verification.
var (
	_ pepper.HeaderExtractor   = (*HeaderExtractor)(nil)
	_ pepper.IndexExtractor    = (*IndexExtractor)(nil)
	_ pepper.AbstractExtractor = (*AbstractExtractor)(nil)
)

// HeaderExtractor is a mock implementation of pepper.HeaderExtractor.
type HeaderExtractor struct {
	ExtractHeaderFn func(page string) (*pepper.Header, error)
}

func (e *HeaderExtractor) ExtractHeader(page string) (*pepper.Header, error) {
	return e.ExtractHeaderFn(page)
}

// IndexExtractor is a mock implementation of pepper.IndexExtractor.
type IndexExtractor struct {
	ExtractIndexFn func(page string) []*pepper.IndexEntry
}

func (e *IndexExtractor) ExtractIndex(page string) []*pepper.IndexEntry {
	return e.ExtractIndexFn(page)
}

// AbstractExtractor is a mock implementation of pepper.AbstractExtractor.
type AbstractExtractor struct {
	ExtractAbstractFn func(page string) (string, error)
}

func (e *AbstractExtractor) ExtractAbstract(page string) (string, error) {
	return e.ExtractAbstractFn(page)
}
